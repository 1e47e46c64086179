package editor

import (
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/levels"
)

// Context is the level being edited plus the current selection. Every
// selection index is kept below the platform count.
type Context struct {
	level     *levels.Level
	selection []int
}

func NewContext(level *levels.Level) *Context {
	if level == nil {
		level = levels.New(nil, common.Vec2{})
	}
	return &Context{level: level}
}

func (c *Context) Level() *levels.Level {
	return c.level
}

// ReplaceLevel swaps in a new level and clears the selection.
func (c *Context) ReplaceLevel(level *levels.Level) {
	if level == nil {
		level = levels.New(nil, common.Vec2{})
	}
	c.level = level
	c.selection = nil
}

func (c *Context) Selection() []int {
	out := make([]int, len(c.selection))
	copy(out, c.selection)
	return out
}

func (c *Context) IsSelected(idx int) bool {
	for _, s := range c.selection {
		if s == idx {
			return true
		}
	}
	return false
}

// SetSelection replaces the selection, dropping out-of-range and duplicate
// indices while keeping the given order.
func (c *Context) SetSelection(indices []int) {
	n := c.level.Len()
	sel := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}
		seen[idx] = true
		sel = append(sel, idx)
	}
	c.selection = sel
}

func (c *Context) TranslateSelection(delta common.Vec2) {
	if delta.IsZero() || len(c.selection) == 0 {
		return
	}
	c.level.TranslateSelected(c.selection, delta)
}

func (c *Context) SelectedPlatforms() []levels.Platform {
	out := make([]levels.Platform, 0, len(c.selection))
	for _, idx := range c.selection {
		out = append(out, c.level.Platform(idx))
	}
	return out
}

// Append adds platforms and returns their new indices.
func (c *Context) Append(ps ...levels.Platform) []int {
	indices := make([]int, 0, len(ps))
	for _, p := range ps {
		indices = append(indices, c.level.Len())
		c.level.Append(p)
	}
	return indices
}

func (c *Context) SetPlayerStart(p common.Vec2) {
	c.level.SetPlayerStart(p)
}
