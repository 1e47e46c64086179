package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/speedgame/common"
)

// canvas draws editor primitives onto an ebiten image, shifted by offset.
type canvas struct {
	dst    *ebiten.Image
	offset common.Vec2
}

func (c *canvas) FillRect(pos, size common.Vec2, clr color.Color) {
	p := pos.Add(c.offset)
	vector.FillRect(c.dst, p.X, p.Y, size.X, size.Y, clr, false)
}

func (c *canvas) Text(s string, pos common.Vec2) {
	p := pos.Add(c.offset)
	ebitenutil.DebugPrintAt(c.dst, s, int(p.X), int(p.Y))
}
