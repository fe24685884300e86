package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by PlaceFood when the snake covers every cell.
var ErrBoardFull = errors.New("snake: no free cell for food")

// PlaceFood moves the food to a uniformly random cell not covered by the
// snake. While the snake covers at most FoodScanThreshold of the board it
// samples random cells until one is free; above that it enumerates the free
// cells and picks one, which always terminates. When no cell is free the food
// is removed and ErrBoardFull returned.
func (g *Game) PlaceFood() error {
	occupied := make(map[core.Cell]struct{}, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = struct{}{}
	}

	area := g.grid.Area()
	free := area - len(occupied)
	if free <= 0 {
		g.hasFood = false
		return ErrBoardFull
	}

	if float64(len(occupied))/float64(area) > g.cfg.FoodScanThreshold {
		g.food = g.pickFree(occupied, free)
	} else {
		g.food = g.sampleFree(occupied)
	}
	g.hasFood = true

	g.logger.Debug("food placed", "run", g.runID, "cell", g.food, "free", free)
	return nil
}

// sampleFree draws random cells until it finds one outside occupied.
func (g *Game) sampleFree(occupied map[core.Cell]struct{}) core.Cell {
	for {
		c := core.Cell{X: g.rng.Intn(g.grid.Cols), Y: g.rng.Intn(g.grid.Rows)}
		if _, taken := occupied[c]; !taken {
			return c
		}
	}
}

// pickFree collects the free cells in row-major order and picks one.
func (g *Game) pickFree(occupied map[core.Cell]struct{}, free int) core.Cell {
	cells := make([]core.Cell, 0, free)
	for y := 0; y < g.grid.Rows; y++ {
		for x := 0; x < g.grid.Cols; x++ {
			c := core.Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				cells = append(cells, c)
			}
		}
	}
	return cells[g.rng.Intn(len(cells))]
}
