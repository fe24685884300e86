package tui

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Swipe classifies a press/release pair as a directional swipe. A drag
// counts when its larger axis moves more than minDistance layout units and the
// release comes less than maxDuration after the press. Ties go vertical.
type Swipe struct {
	minDistance int
	maxDuration time.Duration

	active bool
	x, y   int
	at     time.Time
}

// NewSwipe creates a swipe classifier.
func NewSwipe(minDistance int, maxDuration time.Duration) *Swipe {
	return &Swipe{minDistance: minDistance, maxDuration: maxDuration}
}

// Begin records the start of a gesture.
func (s *Swipe) Begin(x, y int, at time.Time) {
	s.active = true
	s.x, s.y = x, y
	s.at = at
}

// End finishes the gesture and returns the swiped direction, if any.
func (s *Swipe) End(x, y int, at time.Time) (core.Action, bool) {
	if !s.active {
		return core.ActionNone, false
	}
	s.active = false

	if at.Sub(s.at) >= s.maxDuration {
		return core.ActionNone, false
	}

	dx, dy := x-s.x, y-s.y
	if core.Abs(dx) > core.Abs(dy) {
		if core.Abs(dx) <= s.minDistance {
			return core.ActionNone, false
		}
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}

	if core.Abs(dy) <= s.minDistance {
		return core.ActionNone, false
	}
	if dy > 0 {
		return core.ActionDown, true
	}
	return core.ActionUp, true
}
