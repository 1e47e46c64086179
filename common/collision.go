package common

// PointInRect reports whether point lies on or inside the rectangle at pos
// with the given size.
func PointInRect(point, pos, size Vec2) bool {
	return point.X >= pos.X && point.X <= pos.X+size.X &&
		point.Y >= pos.Y && point.Y <= pos.Y+size.Y
}

// RectInRect reports whether two axis-aligned rectangles overlap. Rectangles
// that only share an edge or a corner count as overlapping.
func RectInRect(aPos, aSize, bPos, bSize Vec2) bool {
	return aPos.X+aSize.X >= bPos.X &&
		aPos.X <= bPos.X+bSize.X &&
		aPos.Y+aSize.Y >= bPos.Y &&
		aPos.Y <= bPos.Y+bSize.Y
}

// NormalizeRect turns two opposite corners into a top-left position and a
// non-negative size.
func NormalizeRect(c1, c2 Vec2) (pos, size Vec2) {
	pos = Vec2{X: Min(c1.X, c2.X), Y: Min(c1.Y, c2.Y)}
	size = c1.Sub(c2).Abs()
	return pos, size
}
