package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// row builds a snake on row 0 from x=from (head) down to x=to (tail).
func row(from, to int) []core.Cell {
	cells := make([]core.Cell, 0, from-to+1)
	for x := from; x >= to; x-- {
		cells = append(cells, core.Cell{X: x, Y: 0})
	}
	return cells
}

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	g := newTestGame(t, 30, 30, 999)

	for i := 0; i < 500; i++ {
		if err := g.PlaceFood(); err != nil {
			t.Fatalf("PlaceFood() failed: %v", err)
		}
		if g.occupies(g.food) {
			t.Fatalf("food spawned on snake at %v", g.food)
		}
		if !g.grid.Contains(g.food) {
			t.Fatalf("food spawned out of bounds at %v", g.food)
		}
	}
}

func TestPlaceFoodCoversEveryFreeCell(t *testing.T) {
	g := newTestGame(t, 8, 1, 5)
	// Snake sits on x=0..2, leaving x=3..7 free.
	hits := make(map[core.Cell]int)

	for i := 0; i < 2000; i++ {
		if err := g.PlaceFood(); err != nil {
			t.Fatalf("PlaceFood() failed: %v", err)
		}
		hits[g.food]++
	}

	for x := 3; x < 8; x++ {
		if hits[core.Cell{X: x, Y: 0}] == 0 {
			t.Errorf("free cell (%d,0) never chosen: %v", x, hits)
		}
	}
	for x := 0; x < 3; x++ {
		if n := hits[core.Cell{X: x, Y: 0}]; n != 0 {
			t.Errorf("occupied cell (%d,0) chosen %d times", x, n)
		}
	}
}

func TestPlaceFoodSingleFreeCell(t *testing.T) {
	for _, threshold := range []float64{0, 0.5, 1} {
		g := newTestGame(t, 8, 1, 1)
		g.cfg.FoodScanThreshold = threshold
		g.snake = row(6, 0)

		if err := g.PlaceFood(); err != nil {
			t.Fatalf("threshold %.1f: PlaceFood() failed: %v", threshold, err)
		}
		if g.food != (core.Cell{X: 7, Y: 0}) {
			t.Errorf("threshold %.1f: food = %v, expected the only free cell (7,0)", threshold, g.food)
		}
	}
}

func TestPlaceFoodBoardFull(t *testing.T) {
	g := newTestGame(t, 8, 1, 1)
	g.snake = row(7, 0)

	if err := g.PlaceFood(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("PlaceFood() on a full board = %v, expected ErrBoardFull", err)
	}
	if g.hasFood {
		t.Error("food should be removed when the board is full")
	}
}

func TestFillingTheBoardWins(t *testing.T) {
	g := newTestGame(t, 8, 1, 1)
	g.snake = row(6, 0)
	g.food = core.Cell{X: 7, Y: 0}
	g.hasFood = true

	g.Update()

	if g.Outcome() != OutcomeWon || g.Status() != loop.StatusOver {
		t.Errorf("outcome=%v status=%v, expected won/over", g.Outcome(), g.Status())
	}
	if len(g.snake) != 8 || g.score != 1 {
		t.Errorf("length=%d score=%d, expected 8 and 1", len(g.snake), g.score)
	}
}
