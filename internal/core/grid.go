package core

import (
	"errors"
	"fmt"
)

// Smallest grid that can hold the centered three-segment starting snake.
const (
	MinCols = 8
	MinRows = 1
)

// ErrGridTooSmall is returned when a grid cannot hold a starting snake.
var ErrGridTooSmall = errors.New("grid too small")

// Grid is the discrete coordinate space of the board.
type Grid struct {
	Cols     int
	Rows     int
	CellSize int // Cell edge length in layout units
}

// NewGrid derives the board size from viewport dimensions and a fixed cell
// size: Cols = floor(width/cell), Rows = floor(height/cell). A non-positive
// cell size or viewport yields an empty grid.
func NewGrid(width, height, cellSize int) Grid {
	if cellSize <= 0 || width <= 0 || height <= 0 {
		return Grid{CellSize: cellSize}
	}
	return Grid{
		Cols:     width / cellSize,
		Rows:     height / cellSize,
		CellSize: cellSize,
	}
}

// Validate reports ErrGridTooSmall for grids that cannot host a game.
func (g Grid) Validate() error {
	if g.Cols < MinCols || g.Rows < MinRows {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrGridTooSmall, g.Cols, g.Rows, MinCols, MinRows)
	}
	return nil
}

// Contains reports whether c lies inside [0,Cols)×[0,Rows).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Cols * g.Rows
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}

// RowUnits is the height of one terminal row in layout units; a terminal
// column is one unit wide. Rows are roughly twice as tall as columns are wide,
// so a square cell of size 2 is drawn as two columns by one row.
const RowUnits = 2

// CellExtent returns how many terminal columns and rows one cell covers.
func CellExtent(cellSize int) (cols, rows int) {
	return max(cellSize, 1), max(cellSize/RowUnits, 1)
}
