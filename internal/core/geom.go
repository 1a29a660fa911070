// Package core holds the types shared by the game and its hosts: world geometry,
// input actions, per-tick output frames and the terminal cell buffer.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world space.
// World space has its origin at the bottom-left corner with Y growing upward.
type Rect struct {
	X, Y int // Bottom-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Within returns true if r lies entirely inside bounds.
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Right() <= bounds.Right() &&
		r.Y >= bounds.Y && r.Top() <= bounds.Top()
}

// ClampWithin moves r the minimum distance needed to lie inside bounds.
// The far edges are corrected first, so a rect larger than bounds ends up
// aligned to the bottom-left corner.
func (r Rect) ClampWithin(bounds Rect) Rect {
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Top() > bounds.Top() {
		r.Y = bounds.Top() - r.H
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
