package editor

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/levels"
)

type rect struct {
	pos, size common.Vec2
	clr       color.Color
}

type recordCanvas struct {
	rects []rect
	texts []string
}

func (c *recordCanvas) FillRect(pos, size common.Vec2, clr color.Color) {
	c.rects = append(c.rects, rect{pos: pos, size: size, clr: clr})
}

func (c *recordCanvas) Text(s string, pos common.Vec2) {
	c.texts = append(c.texts, s)
}

type fakeDialog struct {
	path   string
	ok     bool
	err    error
	called int
	last   SaveRequest
}

func (d *fakeDialog) SavePath(req SaveRequest) (string, bool, error) {
	d.called++
	d.last = req
	return d.path, d.ok, d.err
}

// presetDialog answers with a fixed path, like builds without native dialogs.
type presetDialog struct {
	fakeDialog
}

func (*presetDialog) FixedPath() bool { return true }

type fakeClipboard struct {
	data []byte
}

func (c *fakeClipboard) ReadText() ([]byte, error) {
	if c.data == nil {
		return nil, errors.New("empty clipboard")
	}
	return c.data, nil
}

func (c *fakeClipboard) WriteText(data []byte) error {
	c.data = append([]byte(nil), data...)
	return nil
}

func twoPlatformLevel() *levels.Level {
	return levels.New([]levels.Platform{
		levels.NewPlatform(common.V(0, 0), common.V(10, 10)),
		levels.NewPlatform(common.V(20, 20), common.V(10, 10)),
	}, common.V(100, 100))
}

func testPalette(t *testing.T) config.Palette {
	t.Helper()
	pal, err := config.Default().Colors.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	return pal
}

// newEditingController returns a controller already in the editing mode.
func newEditingController(t *testing.T, level *levels.Level, env Env) (*Controller, *Editing) {
	t.Helper()
	c, err := NewController(config.Default(), env)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	c.Dispatch(OpenLevel{Level: level})
	e, ok := c.State().(*Editing)
	if !ok {
		t.Fatalf("state = %s, want Editing", c.State())
	}
	return c, e
}

func keys(ks ...Key) Input {
	return Input{Keys: ks}
}

func ctrl(k Key) Input {
	return Input{Keys: []Key{k}, Ctrl: true}
}

func leftPress(at common.Vec2) Input {
	in := Input{Cursor: at, Screen: at}
	in.MouseJustPressed[MouseLeft] = true
	in.MouseDown[MouseLeft] = true
	return in
}

func leftHold(at common.Vec2) Input {
	in := Input{Cursor: at, Screen: at}
	in.MouseDown[MouseLeft] = true
	return in
}

func leftRelease(at common.Vec2) Input {
	in := Input{Cursor: at, Screen: at}
	in.MouseJustReleased[MouseLeft] = true
	return in
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
