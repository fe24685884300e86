package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Snapshot is a read-only copy of everything a renderer or a test needs.
// Its Snake slice is owned by the snapshot and never aliases game state.
type Snapshot struct {
	Tick     uint64
	Snake    []core.Cell // Head first
	Dir      core.Direction
	Food     core.Cell
	HasFood  bool
	Score    int
	Paused   bool
	GameOver bool
	Outcome  Outcome
	Status   loop.Status
	Cols     int
	Rows     int
	CellSize int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Snake:    slices.Clone(g.snake),
		Dir:      g.dir,
		Food:     g.food,
		HasFood:  g.hasFood,
		Score:    g.score,
		Paused:   g.paused,
		GameOver: g.over,
		Outcome:  g.outcome,
		Status:   g.Status(),
		Cols:     g.grid.Cols,
		Rows:     g.grid.Rows,
		CellSize: g.grid.CellSize,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() core.Cell {
	if len(s.Snake) == 0 {
		return core.Cell{X: -1, Y: -1}
	}
	return s.Snake[0]
}

// Equal reports whether two snapshots describe the same game state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		slices.Equal(s.Snake, o.Snake) &&
		s.Dir == o.Dir &&
		s.Food == o.Food &&
		s.HasFood == o.HasFood &&
		s.Score == o.Score &&
		s.Paused == o.Paused &&
		s.GameOver == o.GameOver &&
		s.Outcome == o.Outcome &&
		s.Status == o.Status &&
		s.Cols == o.Cols &&
		s.Rows == o.Rows &&
		s.CellSize == o.CellSize
}
