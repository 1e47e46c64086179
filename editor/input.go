package editor

import (
	"image/color"

	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/config"
)

// Key is an upper-case letter key, 'A' through 'Z'.
type Key byte

const (
	KeyC Key = 'C'
	KeyN Key = 'N'
	KeyS Key = 'S'
	KeyV Key = 'V'
)

// ParseKey accepts a single letter in either case, the same rule the config
// validates bindings with.
func ParseKey(name string) (Key, error) {
	letter, err := config.KeyLetter(name)
	if err != nil {
		return 0, err
	}
	return Key(letter), nil
}

func (k Key) String() string {
	return string(rune(k))
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// Input is one frame of user input. Cursor is in world space, Screen in
// window pixels, Dt the frame time in seconds.
type Input struct {
	Cursor common.Vec2
	Screen common.Vec2
	Dt     float32
	Ctrl   bool

	// Keys holds the letter keys that went down this frame.
	Keys []Key

	MouseDown         [mouseButtonCount]bool
	MouseJustPressed  [mouseButtonCount]bool
	MouseJustReleased [mouseButtonCount]bool
}

func (in Input) KeyJustPressed(k Key) bool {
	for _, pressed := range in.Keys {
		if pressed == k {
			return true
		}
	}
	return false
}

func (in Input) Pressed(b MouseButton) bool  { return in.MouseJustPressed[b] }
func (in Input) Down(b MouseButton) bool     { return in.MouseDown[b] }
func (in Input) Released(b MouseButton) bool { return in.MouseJustReleased[b] }

// Canvas receives draw calls. The world canvas applies the camera; the
// screen canvas draws in window pixels.
type Canvas interface {
	FillRect(pos, size common.Vec2, clr color.Color)
	Text(s string, pos common.Vec2)
}

// Bindings maps tool and lint actions to keys.
type Bindings struct {
	Select   Key
	Platform Key
	Move     Key
	Lint     Key
}
