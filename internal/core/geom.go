// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It has no external dependencies (in
// particular no Bubble Tea) so the round logic stays pure and testable.
package core

// Vec is a point in the logical play field. The field uses the same
// density-independent units the sprite bounds are expressed in, and the
// platform projects it onto terminal cells.
type Vec struct {
	X, Y float64
}

// Bounds is a half-open box [MinX,MaxX) x [MinY,MaxY) in field units.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether v lies inside the half-open box.
func (b Bounds) Contains(v Vec) bool {
	return v.X >= b.MinX && v.X < b.MaxX && v.Y >= b.MinY && v.Y < b.MaxY
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Lerp maps fractions fx, fy in [0,1) to a point inside the box.
func (b Bounds) Lerp(fx, fy float64) Vec {
	return Vec{
		X: b.MinX + fx*b.Width(),
		Y: b.MinY + fy*b.Height(),
	}
}

// Fraction is the inverse of Lerp: it returns where v sits inside the box,
// clamped to [0,1].
func (b Bounds) Fraction(v Vec) (float64, float64) {
	fx, fy := 0.0, 0.0
	if w := b.Width(); w > 0 {
		fx = ClampF((v.X-b.MinX)/w, 0, 1)
	}
	if h := b.Height(); h > 0 {
		fy = ClampF((v.Y-b.MinY)/h, 0, 1)
	}
	return fx, fy
}

// Rect is an axis-aligned cell rectangle used for hit testing on screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grow returns the rectangle expanded by n cells on every side.
func (r Rect) Grow(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
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

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
