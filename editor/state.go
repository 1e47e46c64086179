package editor

import (
	"fmt"
	"log"

	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/levels"
)

// State is one mode of the editor. The controller replaces its state value
// on every transition.
type State interface {
	fmt.Stringer
	Update(c *Controller, in Input) (Event, error)
	Draw(c *Controller, world, screen Canvas)
}

// Event is what a state's Update asks the controller to do next.
type Event interface {
	fmt.Stringer
	event()
}

// OpenLevel starts editing the given level. A nil level means a new, empty one.
type OpenLevel struct{ Level *levels.Level }
type BackToMenu struct{}
type Quit struct{}
type None struct{}

func (OpenLevel) event()  {}
func (BackToMenu) event() {}
func (Quit) event()       {}
func (None) event()       {}

func (OpenLevel) String() string  { return "OpenLevel" }
func (BackToMenu) String() string { return "BackToMenu" }
func (Quit) String() string       { return "Quit" }
func (None) String() string       { return "None" }

// Next is the transition table.
func Next(s State, e Event) State {
	switch e := e.(type) {
	case Quit:
		return Quitting{}
	case None:
		return s
	case OpenLevel:
		if _, ok := s.(*Menu); ok {
			return NewEditing(e.Level)
		}
	case BackToMenu:
		if _, ok := s.(Failure); ok {
			return NewMenu(config.Default().Menu)
		}
	}
	return Failure{Message: fmt.Sprintf("bad transition: %s + %s", s, e)}
}

// Button is a clickable screen region.
type Button struct {
	Label string
	Pos   common.Vec2
	Size  common.Vec2
}

func buttonFromRect(label string, r config.Rect) Button {
	return Button{Label: label, Pos: common.V(r.X, r.Y), Size: common.V(r.W, r.H)}
}

func (b Button) Contains(p common.Vec2) bool {
	return common.PointInRect(p, b.Pos, b.Size)
}

type Menu struct {
	Open Button
	Quit Button
}

func NewMenu(cfg config.MenuConfig) *Menu {
	m := &Menu{}
	m.Layout(cfg)
	return m
}

// Layout moves the buttons to the regions in cfg.
func (m *Menu) Layout(cfg config.MenuConfig) {
	m.Open = buttonFromRect("Open", cfg.Open)
	m.Quit = buttonFromRect("Quit", cfg.Quit)
}

func (m *Menu) String() string { return "Menu" }

func (m *Menu) Update(c *Controller, in Input) (Event, error) {
	if !in.Pressed(MouseLeft) {
		return None{}, nil
	}
	switch {
	case m.Quit.Contains(in.Screen):
		return Quit{}, nil
	case m.Open.Contains(in.Screen):
		return OpenLevel{Level: levels.New(nil, common.Vec2{})}, nil
	}
	return None{}, nil
}

func (m *Menu) Draw(c *Controller, world, screen Canvas) {
	for _, b := range []Button{m.Open, m.Quit} {
		screen.FillRect(b.Pos, b.Size, c.palette.Button)
		screen.Text(b.Label, b.Pos.Add(common.V(8, 8)))
	}
}

// Quitting is terminal.
type Quitting struct{}

func (Quitting) String() string { return "Quitting" }

func (Quitting) Update(c *Controller, in Input) (Event, error) { return None{}, nil }

func (Quitting) Draw(c *Controller, world, screen Canvas) {}

// Failure holds the diagnostic for an illegal transition. Its next update
// reports the message and returns to the menu.
type Failure struct {
	Message string
}

func (f Failure) String() string { return "Failure" }

func (f Failure) Update(c *Controller, in Input) (Event, error) {
	log.Printf("editor failure: %s", f.Message)
	c.setError(f.Message)
	return BackToMenu{}, nil
}

func (f Failure) Draw(c *Controller, world, screen Canvas) {
	screen.Text(f.Message, common.V(8, 8))
}
