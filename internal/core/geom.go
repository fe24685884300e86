// Package core provides the fundamental types shared by the simulation and the
// terminal platform: grid coordinates, directions, player actions and the
// screen buffer. It has no Bubble Tea dependency so game logic stays pure and
// testable.
package core

import "fmt"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit vector on the grid.
type Direction struct {
	DX, DY int
}

// The four legal directions. Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Neg returns the inverse direction.
func (d Direction) Neg() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Opposite reports whether d is the exact inverse of other.
func (d Direction) Opposite(other Direction) bool {
	return d == other.Neg()
}

// IsUnit reports whether d is one of Up, Down, Left or Right.
func (d Direction) IsUnit() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Rect represents an axis-aligned rectangle in screen coordinates.
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
