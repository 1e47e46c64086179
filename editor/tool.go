package editor

import (
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/levels"
)

type ToolKind int

const (
	ToolSelector ToolKind = iota
	ToolPlatform
	ToolMove
)

func (k ToolKind) String() string {
	switch k {
	case ToolSelector:
		return "Selector"
	case ToolPlatform:
		return "Platform"
	case ToolMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Tool is the active editing tool. It holds only the state of the gesture in
// progress; switching tools always starts from a fresh value.
type Tool struct {
	kind     ToolKind
	selector selectorState
	platform platformState
	move     moveState
}

type selectorState struct {
	anchor   common.Vec2
	cursor   common.Vec2
	dragging bool
}

type platformState struct {
	anchor  common.Vec2
	held    bool
	preview *levels.Platform
}

type moveState struct {
	last     common.Vec2
	total    common.Vec2
	dragging bool
}

func NewTool(kind ToolKind) Tool {
	return Tool{kind: kind}
}

func (t *Tool) Kind() ToolKind {
	return t.kind
}

func (t *Tool) String() string {
	return t.kind.String()
}

// OnClick runs once when the left button goes down.
func (t *Tool) OnClick(pos common.Vec2, ctx *Context) {
	switch t.kind {
	case ToolSelector:
		t.selector = selectorState{anchor: pos, cursor: pos, dragging: true}
	case ToolPlatform:
		t.platform = platformState{anchor: pos, held: true}
	case ToolMove:
		t.move = moveState{last: pos, dragging: true}
	}
}

// OnRelease runs once when the left button comes up and commits the gesture.
// A release without a matching click does nothing.
func (t *Tool) OnRelease(pos common.Vec2, ctx *Context) {
	switch t.kind {
	case ToolSelector:
		s := &t.selector
		if !s.dragging {
			return
		}
		s.cursor = pos
		s.dragging = false
		ctx.SetSelection(overlapping(ctx.Level(), s.anchor, pos))
	case ToolPlatform:
		p := &t.platform
		p.held = false
		if p.preview == nil {
			return
		}
		platform := *p.preview
		p.preview = nil
		if platform.HasArea() {
			ctx.Append(platform)
		}
	case ToolMove:
		m := &t.move
		if !m.dragging {
			return
		}
		ctx.TranslateSelection(m.total)
		m.total = common.Vec2{}
		m.dragging = false
	}
}

func (t *Tool) Update(in Input, ctx *Context) {
	switch t.kind {
	case ToolSelector:
		if t.selector.dragging {
			t.selector.cursor = in.Cursor
		}
	case ToolPlatform:
		p := &t.platform
		if p.held {
			preview := levels.PlatformFromCorners(p.anchor, in.Cursor)
			p.preview = &preview
		}
	case ToolMove:
		m := &t.move
		if m.dragging {
			m.total = m.total.Add(in.Cursor.Sub(m.last))
			m.last = in.Cursor
		}
	}
}

// CanSwitch is false while a gesture would be lost by switching.
func (t *Tool) CanSwitch() bool {
	switch t.kind {
	case ToolPlatform:
		return !t.platform.held && t.platform.preview == nil
	case ToolMove:
		return !t.move.dragging
	default:
		return true
	}
}

func (t *Tool) Draw(c Canvas, ctx *Context, pal config.Palette) {
	switch t.kind {
	case ToolSelector:
		if t.selector.dragging {
			drawOutline(c, t.selector.anchor, t.selector.cursor, pal)
		}
	case ToolPlatform:
		if p := t.platform.preview; p != nil {
			c.FillRect(p.Pos, p.Size, pal.Preview)
		}
	case ToolMove:
		if !t.move.dragging {
			return
		}
		for _, p := range ctx.SelectedPlatforms() {
			c.FillRect(p.Pos.Add(t.move.total), p.Size, pal.Ghost)
		}
	}
}

// overlapping returns, in list order, every platform touching the rectangle
// spanned by the two corners.
func overlapping(level *levels.Level, c1, c2 common.Vec2) []int {
	pos, size := common.NormalizeRect(c1, c2)
	var hits []int
	for i := 0; i < level.Len(); i++ {
		if level.Platform(i).Overlaps(pos, size) {
			hits = append(hits, i)
		}
	}
	return hits
}

// drawOutline strokes a one unit border around the rectangle spanned by two
// corners given in any order.
func drawOutline(c Canvas, c1, c2 common.Vec2, pal config.Palette) {
	pos, size := common.NormalizeRect(c1, c2)
	const t = 1
	c.FillRect(pos, common.V(size.X+t, t), pal.Selection)
	c.FillRect(common.V(pos.X, pos.Y+size.Y), common.V(size.X+t, t), pal.Selection)
	c.FillRect(pos, common.V(t, size.Y+t), pal.Selection)
	c.FillRect(common.V(pos.X+size.X, pos.Y), common.V(t, size.Y+t), pal.Selection)
}
