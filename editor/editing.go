package editor

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/speedgame/collision"
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/levels"
)

const playerStartSize = 8

// Editing is the main mode: a level, its selection, and the active tool.
type Editing struct {
	ctx  *Context
	tool Tool
}

func NewEditing(level *levels.Level) *Editing {
	return &Editing{ctx: NewContext(level), tool: NewTool(ToolSelector)}
}

func (e *Editing) String() string { return "Editing" }

func (e *Editing) Context() *Context { return e.ctx }

func (e *Editing) Tool() *Tool { return &e.tool }

// Update never changes the mode. Save failures are returned alongside None.
func (e *Editing) Update(c *Controller, in Input) (Event, error) {
	if e.tool.CanSwitch() && !in.Ctrl {
		switch {
		case in.KeyJustPressed(c.keys.Select):
			e.switchTool(ToolSelector)
		case in.KeyJustPressed(c.keys.Platform):
			e.switchTool(ToolPlatform)
		case in.KeyJustPressed(c.keys.Move):
			e.switchTool(ToolMove)
		}
	}

	if in.Pressed(MouseLeft) {
		e.tool.OnClick(in.Cursor, e.ctx)
	}
	e.tool.Update(in, e.ctx)
	if in.Released(MouseLeft) {
		e.tool.OnRelease(in.Cursor, e.ctx)
	}

	if in.Pressed(MouseRight) {
		e.ctx.SetPlayerStart(in.Cursor)
	}

	if in.Ctrl {
		switch {
		case in.KeyJustPressed(KeyS):
			return None{}, e.save(c)
		case in.KeyJustPressed(KeyC):
			e.copySelection(c)
		case in.KeyJustPressed(KeyV):
			e.paste(c)
		case in.KeyJustPressed(KeyN):
			e.newLevel(c)
		}
	} else if in.KeyJustPressed(c.keys.Lint) {
		e.lint(c)
	}
	return None{}, nil
}

func (e *Editing) switchTool(kind ToolKind) {
	e.tool = NewTool(kind)
	log.Printf("switched to %s tool", kind)
}

func (e *Editing) save(c *Controller) error {
	if c.env.Dialog == nil {
		return errors.New("save: no file dialog available")
	}
	path, ok, err := c.env.Dialog.SavePath(SaveRequest{
		Title:       "Save level",
		Filter:      c.cfg.Save.Filter,
		Ext:         strings.TrimPrefix(levels.FileExt, "."),
		StartDir:    c.env.WorkDir,
		DefaultFile: c.cfg.Save.DefaultFile,
	})
	if err != nil {
		return fmt.Errorf("save dialog: %w", err)
	}
	if !ok {
		return nil
	}
	if filepath.Ext(path) == "" {
		path += levels.FileExt
	}
	if err := e.ctx.Level().WriteFile(path); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	log.Printf("saved level: %s", path)
	if d, ok := c.env.Dialog.(FixedPathDialog); ok && d.FixedPath() {
		c.setStatus(fmt.Sprintf("saved to %s (no save dialog, every save overwrites it)", path))
		return nil
	}
	c.setStatus("saved " + path)
	return nil
}

// newLevel discards the level being edited. Like paste, it waits for the
// current gesture to finish.
func (e *Editing) newLevel(c *Controller) {
	if !e.tool.CanSwitch() {
		return
	}
	e.ctx.ReplaceLevel(levels.New(nil, common.Vec2{}))
	c.setStatus("new level")
}

func (e *Editing) copySelection(c *Controller) {
	if c.env.Clipboard == nil {
		c.setError("clipboard unavailable")
		return
	}
	selected := e.ctx.SelectedPlatforms()
	if len(selected) == 0 {
		c.setStatus("nothing selected")
		return
	}
	data, err := levels.MarshalPlatformsYAML(selected)
	if err != nil {
		c.setError(fmt.Sprintf("copy: %v", err))
		return
	}
	if err := c.env.Clipboard.WriteText(data); err != nil {
		c.setError(fmt.Sprintf("copy: %v", err))
		return
	}
	c.setStatus(fmt.Sprintf("copied %d platforms", len(selected)))
}

// paste appends the clipboard platforms and selects them. It is ignored while
// a gesture is in progress so the tool's view of the level stays consistent.
func (e *Editing) paste(c *Controller) {
	if !e.tool.CanSwitch() {
		return
	}
	if c.env.Clipboard == nil {
		c.setError("clipboard unavailable")
		return
	}
	data, err := c.env.Clipboard.ReadText()
	if err != nil {
		c.setError(fmt.Sprintf("paste: %v", err))
		return
	}
	ps, err := levels.UnmarshalPlatformsYAML(data)
	if err != nil {
		c.setError(fmt.Sprintf("paste: %v", err))
		return
	}
	e.ctx.SetSelection(e.ctx.Append(ps...))
	c.setStatus(fmt.Sprintf("pasted %d platforms", len(ps)))
}

func (e *Editing) lint(c *Controller) {
	problems := collision.Check(e.ctx.Level())
	for _, p := range problems {
		log.Printf("lint: %s", p)
	}
	if len(problems) == 0 {
		c.setStatus("lint: no problems")
		return
	}
	c.setError(fmt.Sprintf("lint: %d problems, first: %s", len(problems), problems[0]))
}

func (e *Editing) Draw(c *Controller, world, screen Canvas) {
	level := e.ctx.Level()
	for i := 0; i < level.Len(); i++ {
		p := level.Platform(i)
		clr := c.palette.Platform
		if e.ctx.IsSelected(i) {
			clr = c.palette.Selected
		}
		world.FillRect(p.Pos, p.Size, clr)
	}

	half := float32(playerStartSize) / 2
	start := level.PlayerStart()
	world.FillRect(start.Sub(common.V(half, half)), common.V(playerStartSize, playerStartSize), c.palette.PlayerStart)

	e.tool.Draw(world, e.ctx, c.palette)
}
