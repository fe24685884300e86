package core

import "strings"

// Action represents a semantic player intent, abstracted from physical keys
// and gestures. The platform maps raw events to actions; the game consumes them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, swipe up
	ActionDown           // S, Down arrow, swipe down
	ActionLeft           // A, Left arrow, swipe left
	ActionRight          // D, Right arrow, swipe right
	ActionPause          // Space - pause/unpause
	ActionRestart        // Enter - start a fresh game
)

// String returns the canonical name of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParseAction maps an action name to an Action. Unknown names return
// (ActionNone, false) and are meant to be ignored by callers.
func ParseAction(name string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return ActionUp, true
	case "down":
		return ActionDown, true
	case "left":
		return ActionLeft, true
	case "right":
		return ActionRight, true
	case "pause":
		return ActionPause, true
	case "restart":
		return ActionRestart, true
	}
	return ActionNone, false
}

// Direction returns the movement vector for a direction action.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return Direction{}, false
}
