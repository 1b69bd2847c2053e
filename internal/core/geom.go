// Package core provides the platform types shared by games and the terminal
// layer: the screen buffer, input frames and runtime configuration. It has
// no dependency on Bubble Tea so game logic stays pure and testable.
package core

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
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

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered inside r, clamped to r's
// top-left corner when it does not fit.
func (r Rect) Centered(w, h int) Rect {
	x := r.X + max((r.W-w)/2, 0)
	y := r.Y + max((r.H-h)/2, 0)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
