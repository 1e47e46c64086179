// Package editor is the level editor core: the mode state machine, the tools
// that edit a level, and the controller that runs them one frame at a time.
// It draws through Canvas and reads a plain Input snapshot, so it has no
// dependency on the window or renderer.
package editor

import (
	"fmt"
	"log"

	"github.com/milk9111/speedgame/config"
)

// SaveRequest describes the save dialog to show.
type SaveRequest struct {
	Title       string
	Filter      string
	Ext         string
	StartDir    string
	DefaultFile string
}

// SaveDialog asks the user for a destination. ok is false when the dialog
// was dismissed.
type SaveDialog interface {
	SavePath(req SaveRequest) (path string, ok bool, err error)
}

// FixedPathDialog is implemented by dialogs that answer with a preset path
// instead of asking. Saves through them are reported as such.
type FixedPathDialog interface {
	FixedPath() bool
}

type Clipboard interface {
	ReadText() ([]byte, error)
	WriteText(data []byte) error
}

// Env is what the controller needs from the host program.
type Env struct {
	Dialog    SaveDialog
	Clipboard Clipboard
	WorkDir   string
}

// statusTTL is how long an informational banner stays up. Errors stay until
// replaced.
const statusTTL = 4

type Controller struct {
	state   State
	env     Env
	cfg     config.Config
	keys    Bindings
	palette config.Palette

	status    string
	statusErr bool
	statusAge float32
}

func NewController(cfg config.Config, env Env) (*Controller, error) {
	c := &Controller{env: env}
	if err := c.SetConfig(cfg); err != nil {
		return nil, err
	}
	c.state = NewMenu(cfg.Menu)
	return c, nil
}

// BindingsFromConfig parses the configured key names.
func BindingsFromConfig(k config.KeyConfig) (Bindings, error) {
	var b Bindings
	for _, f := range []struct {
		name string
		dst  *Key
	}{
		{k.Select, &b.Select},
		{k.Platform, &b.Platform},
		{k.Move, &b.Move},
		{k.Lint, &b.Lint},
	} {
		key, err := ParseKey(f.name)
		if err != nil {
			return Bindings{}, err
		}
		*f.dst = key
	}
	return b, nil
}

// SetConfig applies a new configuration. On error the previous one stays in
// effect.
func (c *Controller) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	keys, err := BindingsFromConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	pal, err := cfg.Colors.Palette()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.cfg = cfg
	c.keys = keys
	c.palette = pal
	if m, ok := c.state.(*Menu); ok {
		m.Layout(cfg.Menu)
	}
	return nil
}

func (c *Controller) Config() config.Config   { return c.cfg }
func (c *Controller) Palette() config.Palette { return c.palette }
func (c *Controller) State() State            { return c.state }

// Tick runs one frame: the active state's update, then the transition.
func (c *Controller) Tick(in Input) {
	c.statusAge += in.Dt
	if !c.statusErr && c.statusAge >= statusTTL {
		c.status = ""
	}

	ev, err := c.state.Update(c, in)
	if err != nil {
		log.Printf("save failed: %v", err)
		c.setError(err.Error())
	}
	c.Dispatch(ev)
}

// Dispatch applies an event to the current state.
func (c *Controller) Dispatch(ev Event) {
	next := Next(c.state, ev)
	if next == c.state {
		return
	}
	if m, ok := next.(*Menu); ok {
		m.Layout(c.cfg.Menu)
	}
	c.state = next
}

func (c *Controller) Draw(world, screen Canvas) {
	c.state.Draw(c, world, screen)
}

// Done reports whether the editor has quit.
func (c *Controller) Done() bool {
	_, ok := c.state.(Quitting)
	return ok
}

// Status returns the banner text and whether it reports an error.
func (c *Controller) Status() (string, bool) {
	return c.status, c.statusErr
}

// ToolName is the active tool, or "" outside the editing mode.
func (c *Controller) ToolName() string {
	if e, ok := c.state.(*Editing); ok {
		return e.tool.String()
	}
	return ""
}

func (c *Controller) setStatus(msg string) {
	c.status = msg
	c.statusErr = false
	c.statusAge = 0
}

func (c *Controller) setError(msg string) {
	c.status = msg
	c.statusErr = true
	c.statusAge = 0
}
