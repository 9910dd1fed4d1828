// Package core provides presentation primitives for the snake game: a
// colored character buffer, semantic input actions and small geometry
// helpers. It has no external dependencies (especially no Bubble Tea) so
// drawing code stays pure and testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// CenterIn returns a w x h rectangle centered inside outer. When the
// rectangle is larger than outer it is pinned to outer's top-left corner.
func CenterIn(outer Rect, w, h int) Rect {
	x := outer.X + Clamp((outer.W-w)/2, 0, outer.W)
	y := outer.Y + Clamp((outer.H-h)/2, 0, outer.H)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
