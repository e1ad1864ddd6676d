// Package core provides fundamental types and utilities for the snake engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// GridSize is the number of cells along each side of the playfield.
// Placed coordinates are valid in [0, GridSize-1]; the bound is a game
// invariant, not enforced by Block itself.
const GridSize = 50

// Block is an integer cell coordinate on the grid, origin at the top-left.
type Block struct {
	X, Y int
}

// SamePosition reports whether two blocks occupy the same cell.
func SamePosition(a, b Block) bool {
	return a.X == b.X && a.Y == b.Y
}

// Rect represents an axis-aligned box in screen cells, used for layout and
// overlay drawing.
type Rect struct {
	X, Y int // Top-left corner position
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

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
