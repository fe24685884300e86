package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// helpHeight is the number of rows under the board reserved for key help.
const helpHeight = 1

// Options configures a Model.
type Options struct {
	Config config.Config
	Seed   int64 // 0 picks a time-based seed
	Width  int   // Initial terminal size; 0 waits for the first resize
	Height int
	Logger *log.Logger
}

// Model is the Bubble Tea model that hosts one snake game.
type Model struct {
	cfg    config.Config
	seed   int64
	logger *log.Logger

	game   *snake.Game // nil while the terminal is too small for a board
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	swipe  *Swipe

	start   time.Time
	now     func() time.Time
	ticking bool // A frame is scheduled

	width, height int
	quitting      bool
}

// NewModel creates the model and, if the terminal size is known, the game.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	keys, unknown := NewKeyMap(opts.Config.Input.Keys)
	if len(unknown) > 0 {
		opts.Logger.Warn("ignoring key bindings for unknown actions", "actions", unknown)
	}

	m := Model{
		cfg:    opts.Config,
		seed:   opts.Seed,
		logger: opts.Logger,
		screen: core.NewScreen(max(opts.Width, 0), max(opts.Height-helpHeight, 0)),
		keys:   keys,
		help:   help.New(),
		swipe:  NewSwipe(opts.Config.Input.SwipeDistance, opts.Config.SwipeTime()),
		now:    time.Now,
		width:  opts.Width,
		height: opts.Height,
	}
	m.start = m.now()
	m.help.Width = opts.Width
	m.rebuild()
	m.ticking = m.game != nil
	return m
}

// viewport returns the board area in layout units for a terminal size.
// The border takes one column and one row on each side.
func viewport(width, height int) (int, int) {
	w := width - 2
	h := (height - snake.HUDHeight - helpHeight - 2) * core.RowUnits
	return w, h
}

// rebuild creates a new game when the board the terminal can hold differs
// from the current one.
func (m *Model) rebuild() {
	vw, vh := viewport(m.width, m.height)
	rc := m.cfg.Runtime(vw, vh, m.seed)
	if m.game != nil && m.game.Grid() == rc.Grid() {
		return
	}

	g, err := snake.New(rc, m.logger)
	if err != nil {
		m.logger.Warn("board does not fit", "width", m.width, "height", m.height, "error", err)
		m.game = nil
		return
	}
	m.game = g
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	if !m.ticking {
		return nil
	}
	return frameCmd(m.cfg.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		if m.game != nil {
			m.logger.Info("quit", "run", m.game.RunID(), "score", m.game.Score())
		}
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	return m.apply(m.keys.Action(msg))
}

// handleMouse turns a left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X, msg.Y*core.RowUnits

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.swipe.Begin(x, y, m.now())
		}
	case tea.MouseActionRelease:
		if a, ok := m.swipe.End(x, y, m.now()); ok {
			return m.apply(a)
		}
	}
	return m, nil
}

// apply forwards an action to the game and restarts the frame loop when the
// game asks for it.
func (m Model) apply(a core.Action) (tea.Model, tea.Cmd) {
	if m.game == nil || a == core.ActionNone {
		return m, nil
	}
	return m.resume(m.game.Apply(a))
}

func (m Model) resume(needed bool) (tea.Model, tea.Cmd) {
	if !needed || m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, frameCmd(m.cfg.FrameInterval())
}

// handleResize resizes the screen and rebuilds the game if the board changed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	m.rebuild()

	if m.game == nil {
		return m, nil
	}
	return m.resume(m.game.Status() == loop.StatusRunning)
}

// handleFrame runs the scheduler once and asks for another frame only while
// the game is running.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	if m.game == nil {
		m.ticking = false
		return m, nil
	}

	frame := m.game.Frame(t.Sub(m.start))
	if !frame.Reschedule {
		m.ticking = false
		return m, nil
	}
	return m, frameCmd(m.cfg.FrameInterval())
}

// saveScreenshot writes the current screen as plain text under ~/.snake.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	run := "none"
	if m.game != nil {
		run = m.game.RunID()
	}
	name := fmt.Sprintf("snake_%s_%s.txt", run, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	if m.game == nil {
		snake.RenderMessage(m.screen, "Terminal too small", "Enlarge the window to play")
		return
	}
	m.game.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
