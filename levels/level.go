package levels

import "github.com/milk9111/speedgame/common"

// DefaultFriction is the friction given to platforms that don't specify one.
const DefaultFriction float32 = 1.0

// Platform is an axis-aligned rectangle the player can stand on.
type Platform struct {
	Pos      common.Vec2
	Size     common.Vec2
	Friction float32
}

func NewPlatform(pos, size common.Vec2) Platform {
	return Platform{Pos: pos, Size: size, Friction: DefaultFriction}
}

// PlatformFromCorners builds a platform spanning two opposite corners in any
// order.
func PlatformFromCorners(c1, c2 common.Vec2) Platform {
	pos, size := common.NormalizeRect(c1, c2)
	return NewPlatform(pos, size)
}

// HasArea reports whether both width and height are nonzero.
func (p Platform) HasArea() bool {
	return p.Size.X != 0 && p.Size.Y != 0
}

func (p Platform) Overlaps(pos, size common.Vec2) bool {
	return common.RectInRect(p.Pos, p.Size, pos, size)
}

// Level is an ordered set of platforms plus the player spawn point.
type Level struct {
	platforms   []Platform
	playerStart common.Vec2
}

func New(platforms []Platform, playerStart common.Vec2) *Level {
	ps := make([]Platform, len(platforms))
	copy(ps, platforms)
	return &Level{platforms: ps, playerStart: playerStart}
}

// Platforms returns a copy of the platform list in insertion order.
func (l *Level) Platforms() []Platform {
	out := make([]Platform, len(l.platforms))
	copy(out, l.platforms)
	return out
}

func (l *Level) Len() int {
	return len(l.platforms)
}

func (l *Level) Platform(i int) Platform {
	return l.platforms[i]
}

func (l *Level) Append(p Platform) {
	l.platforms = append(l.platforms, p)
}

// TranslateSelected moves every platform at the given indices by delta.
// Indices must be in range; the caller owns that guarantee.
func (l *Level) TranslateSelected(indices []int, delta common.Vec2) {
	for _, idx := range indices {
		l.platforms[idx].Pos = l.platforms[idx].Pos.Add(delta)
	}
}

func (l *Level) PlayerStart() common.Vec2 {
	return l.playerStart
}

func (l *Level) SetPlayerStart(p common.Vec2) {
	l.playerStart = p
}
