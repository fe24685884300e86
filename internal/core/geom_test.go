package core

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name       string
		w, h, cell int
		cols, rows int
	}{
		{"exact fit", 600, 400, 20, 30, 20},
		{"floors partial cells", 619, 419, 20, 30, 20},
		{"one unit cells", 30, 30, 1, 30, 30},
		{"viewport smaller than a cell", 10, 10, 20, 0, 0},
		{"zero cell size", 100, 100, 0, 0, 0},
		{"negative viewport", -5, 100, 2, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.w, tc.h, tc.cell)
			if g.Cols != tc.cols || g.Rows != tc.rows {
				t.Errorf("NewGrid(%d, %d, %d) = %dx%d, expected %dx%d",
					tc.w, tc.h, tc.cell, g.Cols, g.Rows, tc.cols, tc.rows)
			}
		})
	}
}

func TestGridValidate(t *testing.T) {
	if err := NewGrid(30, 30, 1).Validate(); err != nil {
		t.Errorf("Validate() on 30x30 = %v, expected nil", err)
	}
	if err := (Grid{Cols: MinCols, Rows: MinRows}).Validate(); err != nil {
		t.Errorf("Validate() on minimum grid = %v, expected nil", err)
	}

	for _, g := range []Grid{{}, {Cols: MinCols - 1, Rows: 10}, {Cols: 10, Rows: 0}} {
		if err := g.Validate(); !errors.Is(err, ErrGridTooSmall) {
			t.Errorf("Validate() on %dx%d = %v, expected ErrGridTooSmall", g.Cols, g.Rows, err)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Cols: 10, Rows: 5}

	tests := []struct {
		name     string
		c        Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"far corner", Cell{9, 4}, true},
		{"right edge (exclusive)", Cell{10, 2}, false},
		{"bottom edge (exclusive)", Cell{3, 5}, false},
		{"negative x", Cell{-1, 0}, false},
		{"negative y", Cell{0, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	dirs := []Direction{Up, Down, Left, Right}
	for _, d := range dirs {
		for _, r := range dirs {
			expected := d.DX == -r.DX && d.DY == -r.DY
			if got := r.Opposite(d); got != expected {
				t.Errorf("%v.Opposite(%v) = %v, expected %v", r, d, got, expected)
			}
		}
		if !d.IsUnit() {
			t.Errorf("%v.IsUnit() = false, expected true", d)
		}
	}

	if (Direction{DX: 1, DY: 1}).IsUnit() {
		t.Error("diagonal should not be a unit direction")
	}
	if (Direction{}).IsUnit() {
		t.Error("zero vector should not be a unit direction")
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{X: 13, Y: 15}
	if got := c.Add(Right); got != (Cell{14, 15}) {
		t.Errorf("Add(Right) = %v, expected (14,15)", got)
	}
	if got := c.Add(Up); got != (Cell{13, 14}) {
		t.Errorf("Add(Up) = %v, expected (13,14)", got)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in       string
		expected Action
		ok       bool
	}{
		{"up", ActionUp, true},
		{"DOWN", ActionDown, true},
		{" left ", ActionLeft, true},
		{"right", ActionRight, true},
		{"pause", ActionPause, true},
		{"restart", ActionRestart, true},
		{"jump", ActionNone, false},
		{"", ActionNone, false},
	}

	for _, tc := range tests {
		got, ok := ParseAction(tc.in)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestActionDirection(t *testing.T) {
	if d, ok := ActionLeft.Direction(); !ok || d != Left {
		t.Errorf("ActionLeft.Direction() = (%v, %v), expected (left, true)", d, ok)
	}
	if _, ok := ActionPause.Direction(); ok {
		t.Error("ActionPause should not map to a direction")
	}
}
