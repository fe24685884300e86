package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 30, 30, 444)
	g.food = core.Cell{X: 2, Y: 3}

	screen := core.NewScreen(40, 34)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected the score", screen.Row(0))
	}

	// Board box is 32 wide, centered in 40 columns, below the HUD.
	if screen.Get(4, 1) != '┌' {
		t.Errorf("board corner = %q, expected '┌'", screen.Get(4, 1))
	}

	head := screen.GetCell(5+13, 2+15)
	if head.Rune != glyphSnake || head.Color != core.ColorBrightGreen {
		t.Errorf("head glyph = %+v, expected bright green block", head)
	}
	tail := screen.GetCell(5+11, 2+15)
	if tail.Rune != glyphSnake || tail.Color != core.ColorGreen {
		t.Errorf("tail glyph = %+v, expected green block", tail)
	}
	if screen.Get(5+2, 2+3) != glyphFood {
		t.Errorf("food glyph = %q, expected %q", screen.Get(5+2, 2+3), glyphFood)
	}
}

func TestRenderWideCells(t *testing.T) {
	cfg := testConfig(40, 20, 1)
	cfg.CellSize = 2 // 20x10 grid, each cell two columns by one row
	g, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	screen := core.NewScreen(42, 13)
	g.Render(screen)

	// Head at (8,5) covers columns 1+16 and 1+17 on row 2+5.
	for _, x := range []int{17, 18} {
		if screen.Get(x, 7) != glyphSnake {
			t.Errorf("head column %d = %q, expected snake glyph", x, screen.Get(x, 7))
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		expected string
	}{
		{"paused", func(g *Game) { g.TogglePause() }, "Paused"},
		{"wall", func(g *Game) { g.finish(OutcomeWall, core.Cell{}) }, "hit the wall"},
		{"self", func(g *Game) { g.finish(OutcomeSelf, core.Cell{}) }, "bit yourself"},
		{"won", func(g *Game) { g.finish(OutcomeWon, core.Cell{}) }, "You Win!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 30, 30, 1)
			tc.setup(g)

			screen := core.NewScreen(60, 34)
			g.Render(screen)
			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("rendered screen does not contain %q", tc.expected)
			}
		})
	}
}

func TestRenderDoesNotMutateSnapshot(t *testing.T) {
	g := newTestGame(t, 30, 30, 1)
	snap := g.Snapshot()
	before := g.Snapshot()

	Render(core.NewScreen(40, 34), snap)

	if !snap.Equal(before) {
		t.Error("Render changed the snapshot")
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	g := newTestGame(t, 30, 30, 1)
	snap := g.Snapshot()
	snap.Snake[0] = core.Cell{X: -5, Y: -5}

	if g.snake[0] == snap.Snake[0] {
		t.Error("mutating a snapshot should not affect the game")
	}
}
