package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// DefaultHold is how long one key press keeps a movement action held.
// Terminals only report presses, so holding a key is seen as a stream of
// presses; the window bridges the gaps between them.
const DefaultHold = 150 * time.Millisecond

// Options configure a game session.
type Options struct {
	Store  *storage.Store // Nil disables run time saving
	Logger *log.Logger
	Hold   time.Duration // 0 uses DefaultHold
	Keys   *KeyMap       // Nil uses DefaultKeyMap
}

// resizer is implemented by games that can change viewport without a reset.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for playing a level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	hold      time.Duration
	held      map[core.Action]time.Time // Movement action -> release time
	pressed   core.InputFrame           // One-shot actions for the next tick
	gameState core.GameState
	savedRun  bool   // Run time saved for the current completion
	best      string // Best time of the current level, formatted
	quitting  bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:   opts.Store,
		logger:  opts.Logger,
		config:  cfg,
		keys:    keys,
		help:    help.New(),
		hold:    opts.Hold,
		held:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
		now:     time.Now,
	}
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.loadBest()
	return m
}

// gameConfig is the runtime config minus the help line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-1, 1)
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("level started", "level", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "level", m.game.ID(), "elapsed", m.gameState.Elapsed)
		return m, tea.Quit
	case isMovement(action):
		m.held[action] = m.now().Add(m.hold)
		// Opposite directions cancel each other.
		switch action {
		case core.ActionLeft:
			delete(m.held, core.ActionRight)
		case core.ActionRight:
			delete(m.held, core.ActionLeft)
		}
	case action != core.ActionNone:
		m.pressed.Set(action)
	}
	return m, nil
}

// Frame returns the actions that will be applied on a tick at time t.
func (m Model) Frame(t time.Time) core.InputFrame {
	frame := m.pressed.Clone()
	for a, until := range m.held {
		if t.Before(until) {
			frame.Set(a)
		}
	}
	return frame
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cfg := m.gameConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(cfg.ScreenW, cfg.ScreenH)
	} else if !m.gameState.Over() {
		m.game.Reset(cfg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	id := m.game.ID()
	frame := m.Frame(t)
	for a, until := range m.held {
		if !t.Before(until) {
			delete(m.held, a)
		}
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	m.pressed.Clear()

	if m.game.ID() != id {
		m.logger.Info("level started", "level", m.game.ID())
		m.loadBest()
	}

	switch {
	case m.gameState.Complete && !m.savedRun:
		m.saveRun()
		m.savedRun = true
	case !m.gameState.Complete:
		m.savedRun = false
	}

	return m, tickCmd(m.config)
}

// saveRun records the completion time. Failures are logged, the game goes on.
func (m *Model) saveRun() {
	m.logger.Info("level complete", "level", m.game.ID(), "seconds", m.gameState.Elapsed)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Elapsed); err != nil {
		m.logger.Warn("cannot save run", "level", m.game.ID(), "err", err)
		return
	}
	m.loadBest()
}

func (m *Model) loadBest() {
	m.best = ""
	if m.store == nil {
		return
	}
	best, ok, err := m.store.BestTime(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot read best time", "level", m.game.ID(), "err", err)
		return
	}
	if ok {
		m.best = fmt.Sprintf("best %.2fs", best)
	}
}

// saveScreenshot saves the current screen to ~/.platformer/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.best != "" {
		footer += "  " + m.best
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given game.
// Returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return model.State(), nil
}
