package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns arrows/WASD for movement, space to pause and enter
// to restart.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewKeyMap returns the default key map with the given bindings applied.
// Bindings map action names to keys; names that are not actions are skipped
// and returned sorted. Quit cannot be rebound.
func NewKeyMap(bindings map[string][]string) (KeyMap, []string) {
	k := DefaultKeyMap()
	var unknown []string

	for name, keys := range bindings {
		action, ok := core.ParseAction(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if b := k.binding(action); b != nil {
			*b = key.NewBinding(
				key.WithKeys(keys...),
				key.WithHelp(helpKeys(keys), action.String()),
			)
		}
	}

	slices.Sort(unknown)
	return k, unknown
}

func (k *KeyMap) binding(a core.Action) *key.Binding {
	switch a {
	case core.ActionUp:
		return &k.Up
	case core.ActionDown:
		return &k.Down
	case core.ActionLeft:
		return &k.Left
	case core.ActionRight:
		return &k.Right
	case core.ActionPause:
		return &k.Pause
	case core.ActionRestart:
		return &k.Restart
	}
	return nil
}

// helpKeys formats keys for the help line, naming the space bar once.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, s := range keys {
		if s == " " {
			s = "space"
		}
		if !slices.Contains(names, s) {
			names = append(names, s)
		}
	}
	return strings.Join(names, "/")
}

// Action translates a key to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
