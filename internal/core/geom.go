// Package core provides the platform-neutral building blocks shared by the
// simulation and the front-ends: geometry, input sampling, timing and a
// character screen buffer. It has no external dependencies so game logic
// stays pure and testable.
package core

// Rect is an axis-aligned box in display pixels.
// X, Y is the top-left corner; Right and Bottom are exclusive-style edges
// computed as X+W and Y+H, matching how the handheld firmware measured them.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// TouchesX reports whether the horizontal spans of r and other overlap.
// Edges that meet exactly count as touching.
func (r Rect) TouchesX(other Rect) bool {
	return r.Right() >= other.X && other.Right() >= r.X
}

// OverlapsY reports whether the vertical spans of r and other strictly
// overlap. Edges that only meet do not count.
func (r Rect) OverlapsY(other Rect) bool {
	return r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
