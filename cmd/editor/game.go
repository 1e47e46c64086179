package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/editor"
)

const cameraSmoothing = 0.35

// Game adapts the editor controller to ebiten.
type Game struct {
	ctrl    *editor.Controller
	watcher *config.Watcher
	hud     *hud

	// camera is the world position of the window's top-left corner.
	camera   common.Vec2
	target   common.Vec2
	panning  bool
	lastPanX int
	lastPanY int
}

func NewGame(ctrl *editor.Controller, watcher *config.Watcher) *Game {
	return &Game{ctrl: ctrl, watcher: watcher, hud: newHUD()}
}

func (g *Game) Update() error {
	g.reloadConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.ctrl.Dispatch(editor.Quit{})
	}

	g.updateCamera()
	g.ctrl.Tick(g.snapshot())
	g.hud.Update(g.ctrl)

	if g.ctrl.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("config reload failed, keeping previous: %v", err)
			return
		}
		if err := g.ctrl.SetConfig(cfg); err != nil {
			log.Printf("config reload failed, keeping previous: %v", err)
			return
		}
		log.Printf("config reloaded: %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("config watch: %v", err)
	default:
	}
}

// updateCamera pans with a middle-button drag and eases toward the target.
func (g *Game) updateCamera() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.panning = true
		g.lastPanX, g.lastPanY = ebiten.CursorPosition()
	}
	if g.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		g.target = g.target.Sub(common.V(float32(cx-g.lastPanX), float32(cy-g.lastPanY)))
		g.lastPanX, g.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.panning = false
	}
	g.camera = common.LerpVec(g.camera, g.target, cameraSmoothing)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ctrl.Palette().Background)
	world := &canvas{dst: screen, offset: g.camera.Scale(-1)}
	overlay := &canvas{dst: screen}
	g.ctrl.Draw(world, overlay)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
