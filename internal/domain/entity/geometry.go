// Package entity contains the dock layout domain: blocks, panel groups,
// the dock node tree and its serializable snapshot.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlapping area of r and o (zero Rect if none).
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Inset cuts top pixels off the top of the rectangle.
// Used to derive content rectangles below a header strip.
func (r Rect) Inset(top int) Rect {
	top = min(max(top, 0), max(r.H, 0))
	return Rect{X: r.X, Y: r.Y + top, W: r.W, H: r.H - top}
}
