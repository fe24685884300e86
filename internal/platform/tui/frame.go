// Package tui hosts the game in a Bubble Tea program: it supplies the frame
// clock, maps keys and mouse drags to actions, and paints snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one frame. It carries the time the frame
// fired, including its monotonic clock reading.
type FrameMsg time.Time

// frameCmd requests the next frame after interval. Each call schedules exactly
// one frame; the model decides whether to ask again.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
