package common

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float32
}

func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Abs returns the vector with both components made non-negative.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: Abs(v.X), Y: Abs(v.Y)}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpVec interpolates each axis independently.
func LerpVec(a, b Vec2, t float32) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
