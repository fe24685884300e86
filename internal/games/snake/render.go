package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// HUDHeight is the number of screen rows above the board.
const HUDHeight = 1

// Glyphs used on the board.
const (
	glyphSnake = '█'
	glyphFood  = '●'
)

// Render draws a snapshot into dst. It only reads the snapshot.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	renderHUD(dst, s)

	cellW, cellH := core.CellExtent(s.CellSize)
	board := core.NewRect(0, HUDHeight, s.Cols*cellW+2, s.Rows*cellH+2)
	board.X = max((dst.Width()-board.W)/2, 0)
	dst.DrawBox(board, core.ColorGray)

	origin := core.Cell{X: board.X + 1, Y: board.Y + 1}
	cellRect := func(c core.Cell) core.Rect {
		return core.NewRect(origin.X+c.X*cellW, origin.Y+c.Y*cellH, cellW, cellH)
	}

	if s.HasFood {
		r := cellRect(s.Food)
		dst.SetColored(r.X, r.Y, glyphFood, core.ColorBrightRed)
	}

	// Body tail first, then the head on top.
	for i := len(s.Snake) - 1; i >= 1; i-- {
		dst.FillRect(cellRect(s.Snake[i]), glyphSnake, core.ColorGreen)
	}
	if len(s.Snake) > 0 {
		color := core.ColorBrightGreen
		if s.GameOver && s.Outcome != OutcomeWon {
			color = core.ColorRed
		}
		dst.FillRect(cellRect(s.Head()), glyphSnake, color)
	}

	switch {
	case s.Outcome == OutcomeWon:
		renderOverlay(dst, "You Win!", fmt.Sprintf("Final score: %d - Enter to play again", s.Score))
	case s.GameOver && s.Outcome == OutcomeSelf:
		renderOverlay(dst, "Game Over", "You bit yourself - Enter to restart")
	case s.GameOver:
		renderOverlay(dst, "Game Over", "You hit the wall - Enter to restart")
	case s.Paused:
		renderOverlay(dst, "Paused", "Space to continue")
	}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// renderHUD draws the top status line.
func renderHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d", s.Score, len(s.Snake))
	dst.DrawText(0, 0, hud, core.ColorDefault)

	status := fmt.Sprintf("%dx%d %s ", s.Cols, s.Rows, s.Status)
	if len(hud)+len(status) < dst.Width() {
		dst.DrawText(dst.Width()-len(status), 0, status, core.ColorGray)
	}
}

// RenderMessage clears dst and draws a centered two-line message box.
func RenderMessage(dst *core.Screen, line1, line2 string) {
	dst.Clear()
	renderOverlay(dst, line1, line2)
}

// renderOverlay draws a centered message box over the board.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
