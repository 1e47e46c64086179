package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/editor"
)

var mouseButtons = [...]ebiten.MouseButton{
	editor.MouseLeft:   ebiten.MouseButtonLeft,
	editor.MouseRight:  ebiten.MouseButtonRight,
	editor.MouseMiddle: ebiten.MouseButtonMiddle,
}

// snapshot polls ebiten for this frame's input.
func (g *Game) snapshot() editor.Input {
	x, y := ebiten.CursorPosition()
	screen := common.V(float32(x), float32(y))
	in := editor.Input{
		Screen: screen,
		Cursor: screen.Add(g.camera),
		Dt:     1 / float32(ebiten.TPS()),
		Ctrl:   ebiten.IsKeyPressed(ebiten.KeyControl),
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, err := editor.ParseKey(k.String()); err == nil {
			in.Keys = append(in.Keys, key)
		}
	}
	for i, b := range mouseButtons {
		in.MouseDown[i] = ebiten.IsMouseButtonPressed(b)
		in.MouseJustPressed[i] = inpututil.IsMouseButtonJustPressed(b)
		in.MouseJustReleased[i] = inpututil.IsMouseButtonJustReleased(b)
	}
	return in
}
