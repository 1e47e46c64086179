package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/speedgame/common"
	"github.com/milk9111/speedgame/levels"
)

const collisionTypeSolid cp.CollisionType = 1

// World is a static chipmunk space holding one box per platform of a level.
// It's rebuilt from scratch whenever the level needs to be queried.
type World struct {
	space  *cp.Space
	shapes []*cp.Shape // index matches the level's platform index; nil for degenerate platforms
}

func NewWorld(level *levels.Level) *World {
	space := cp.NewSpace()
	w := &World{space: space}
	w.buildStaticShapes(level)
	return w
}

func (w *World) buildStaticShapes(level *levels.Level) {
	if level == nil {
		return
	}
	platforms := level.Platforms()
	w.shapes = make([]*cp.Shape, len(platforms))
	for i, p := range platforms {
		if !p.HasArea() {
			continue
		}
		shape := cp.NewBox2(w.space.StaticBody, platformBB(p), 0)
		shape.SetFriction(float64(p.Friction))
		shape.SetCollisionType(collisionTypeSolid)
		shape.UserData = i
		w.space.AddShape(shape)
		w.shapes[i] = shape
	}
}

func platformBB(p levels.Platform) cp.BB {
	x0 := float64(p.Pos.X)
	y0 := float64(p.Pos.Y)
	return cp.BB{L: x0, B: y0, R: x0 + float64(p.Size.X), T: y0 + float64(p.Size.Y)}
}

// PlatformAt returns the index of a platform whose interior contains point.
func (w *World) PlatformAt(point common.Vec2) (int, bool) {
	if w == nil || w.space == nil {
		return -1, false
	}
	info := w.space.PointQueryNearest(cp.Vector{X: float64(point.X), Y: float64(point.Y)}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return -1, false
	}
	idx, ok := info.Shape.UserData.(int)
	return idx, ok
}

// Overlapping returns the indices of platforms whose area intersects the
// platform at idx. Platforms that only touch along an edge are not included.
func (w *World) Overlapping(idx int) []int {
	if w == nil || idx < 0 || idx >= len(w.shapes) || w.shapes[idx] == nil {
		return nil
	}
	self := w.shapes[idx]
	bb := self.BB()
	var out []int
	w.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, data interface{}) {
		if shape == self {
			return
		}
		other, ok := shape.UserData.(int)
		if !ok {
			return
		}
		if strictlyIntersects(bb, shape.BB()) {
			out = append(out, other)
		}
	}, nil)
	return out
}

func strictlyIntersects(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}
