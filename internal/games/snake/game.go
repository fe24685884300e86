// Package snake implements the snake simulation: a single owned game state
// advanced one cell per fixed tick, with wall and self collision, growth on
// food and uniformly random food placement.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Outcome records why a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall         // Head left the board
	OutcomeSelf         // Head ran into the body
	OutcomeWon          // Snake filled the board
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// StartLength is the number of segments of a fresh snake.
const StartLength = 3

// Game is the complete state of one snake run.
// It is not safe for concurrent use; the host owns it on a single goroutine.
type Game struct {
	cfg    core.RuntimeConfig
	grid   core.Grid
	rng    *rand.Rand
	clock  *loop.Clock
	logger *log.Logger
	runID  string
	tick   uint64

	snake   []core.Cell // Head at index 0
	dir     core.Direction
	queued  core.Direction // Applied at the start of the next tick
	food    core.Cell
	hasFood bool
	score   int

	running bool
	paused  bool
	over    bool
	outcome Outcome
}

// New creates a game on the grid derived from cfg and starts it.
// A nil logger discards output.
func New(cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	grid := cfg.Grid()
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	clock, err := loop.NewClock(cfg.TickRate, cfg.MaxFrame)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	if logger == nil {
		logger = logging.Discard()
	}

	g := &Game{
		cfg:    cfg,
		grid:   grid,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		clock:  clock,
		logger: logger,
	}
	g.Init()
	return g, nil
}

// Init puts the game into its starting state: a three-segment snake centered
// on the board heading right, zero score, fresh food, running, and a clock
// with no banked time.
func (g *Game) Init() {
	center := g.grid.Center()
	head := core.Cell{X: center.X - 2, Y: center.Y}

	g.snake = g.snake[:0]
	for i := 0; i < StartLength; i++ {
		g.snake = append(g.snake, core.Cell{X: head.X - i, Y: head.Y})
	}
	g.dir = core.Right
	g.queued = core.Right
	g.score = 0
	g.tick = 0
	g.paused = false
	g.over = false
	g.outcome = OutcomeNone
	g.runID = uuid.NewString()

	placeErr := g.PlaceFood()
	g.running = true
	g.clock.Reset()

	g.logger.Info("game started", "run", g.runID, "cols", g.grid.Cols, "rows", g.grid.Rows, "food", g.food)

	if placeErr != nil {
		g.finish(OutcomeWon, head)
	}
}

// Restart discards the current run and starts a new one, whatever its state.
func (g *Game) Restart() {
	g.logger.Debug("restart", "run", g.runID, "score", g.score, "status", g.Status())
	g.Init()
}

// TogglePause flips the paused flag. It is a no-op once the game is over.
// When the game resumes the clock starts again from a zero baseline, so
// neither the time spent paused nor a partial step banked before the pause is
// replayed, and true is returned to tell the host to resume frame scheduling.
func (g *Game) TogglePause() bool {
	if g.over || !g.running {
		return false
	}

	g.paused = !g.paused
	g.logger.Debug("pause toggled", "run", g.runID, "paused", g.paused, "banked", g.clock.Accumulated())
	if g.paused {
		return false
	}

	g.clock.Reset()
	return true
}

// SetDirection queues a direction for the next tick. Requests for the exact
// inverse of the current direction, or for a non-unit vector, are rejected.
// Later requests before the next tick overwrite earlier ones.
func (g *Game) SetDirection(d core.Direction) bool {
	if !d.IsUnit() || d.Opposite(g.dir) {
		return false
	}
	g.queued = d
	return true
}

// Apply dispatches a player action. It reports whether the host needs to
// resume frame scheduling (after an unpause or a restart).
func (g *Game) Apply(a core.Action) bool {
	switch a {
	case core.ActionPause:
		return g.TogglePause()
	case core.ActionRestart:
		g.Restart()
		return true
	}

	if d, ok := a.Direction(); ok {
		g.SetDirection(d)
	}
	return false
}

// Status reports the scheduler-visible mode.
func (g *Game) Status() loop.Status {
	switch {
	case g.over:
		return loop.StatusOver
	case !g.running:
		return loop.StatusIdle
	case g.paused:
		return loop.StatusPaused
	default:
		return loop.StatusRunning
	}
}

// Update advances the game by one tick. It does nothing unless running.
//
// The queued direction is committed, the head moves one cell, and the new
// position is checked against the walls, then the body, then the food. A
// collision ends the run without touching the snake. Eating keeps the tail,
// so the snake grows by one; otherwise the tail is dropped.
func (g *Game) Update() {
	if g.Status() != loop.StatusRunning {
		return
	}
	g.tick++

	g.dir = g.queued
	head := g.snake[0].Add(g.dir)

	if !g.grid.Contains(head) {
		g.finish(OutcomeWall, head)
		return
	}
	if g.occupies(head) {
		g.finish(OutcomeSelf, head)
		return
	}

	g.snake = append(g.snake, core.Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if g.hasFood && head == g.food {
		g.score++
		if err := g.PlaceFood(); err != nil {
			g.finish(OutcomeWon, head)
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// Frame runs one host frame at monotonic time now through the fixed-timestep
// scheduler.
func (g *Game) Frame(now time.Duration) loop.Frame {
	return loop.Tick(g, g.clock, now)
}

// finish moves the game into its terminal state.
func (g *Game) finish(o Outcome, head core.Cell) {
	g.over = true
	g.running = false
	g.paused = false
	g.outcome = o

	g.logger.Info("game over",
		"run", g.runID,
		"cause", o,
		"head", head,
		"score", g.score,
		"length", len(g.snake),
		"tick", g.tick,
	)
}

// occupies reports whether any snake segment covers c.
func (g *Game) occupies(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Grid returns the board dimensions.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Outcome returns why the last run ended, or OutcomeNone while it is live.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// RunID identifies the current run in log output.
func (g *Game) RunID() string {
	return g.runID
}
