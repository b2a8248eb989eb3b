package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-to-feature/internal/core"
	"github.com/vovakirdan/bug-to-feature/internal/registry"
	"github.com/vovakirdan/bug-to-feature/internal/storage"
)

// holdWindow is how long a movement key counts as held after a press.
// Terminals report presses and auto-repeats but never releases.
const holdWindow = 200 * time.Millisecond

// helpRows is the space reserved below the playfield for the key help.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// loggerSetter is implemented by games that accept a logger.
type loggerSetter interface {
	SetLogger(*log.Logger)
}

// Option configures a Model.
type Option func(*Model)

// WithSound plays the game's tones on p.
func WithSound(p core.TonePlayer) Option {
	return func(m *Model) { m.sound = p }
}

// WithLogger routes platform and game logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithPlayer records runs under the given player name.
func WithPlayer(name string) Option {
	return func(m *Model) { m.player = name }
}

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      core.TonePlayer
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	heldUntil  map[core.Action]time.Time
	lastTick   time.Time
	gameState  core.GameState
	best       int // Best recorded score, shown next to the help
	quitting   bool
	runSaved   bool // Whether the current finished run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpRows)),
		store:      store,
		sound:      core.Silent{},
		logger:     log.New(io.Discard),
		player:     "local",
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		heldUntil:  make(map[core.Action]time.Time),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if ls, ok := game.(loggerSetter); ok {
		ls.SetLogger(m.logger)
	}
	m.best = m.loadBest()
	m.help.Width = cfg.ScreenW
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	for _, a := range actions {
		m.inputFrame.Set(a)
		switch a {
		case core.ActionLeft:
			m.heldUntil[core.ActionLeft] = now.Add(holdWindow)
			delete(m.heldUntil, core.ActionRight)
		case core.ActionRight:
			m.heldUntil[core.ActionRight] = now.Add(holdWindow)
			delete(m.heldUntil, core.ActionLeft)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The game scales its world to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame with the measured wall-clock delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameInterval()
	if !m.lastTick.IsZero() {
		dt = core.ClampDelta(now.Sub(m.lastTick))
	}
	m.lastTick = now

	for a, until := range m.heldUntil {
		if now.Before(until) {
			m.inputFrame.Hold(a)
		} else {
			delete(m.heldUntil, a)
		}
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.sound.Play(result.Tones...)

	if !m.gameState.GameOver {
		m.runSaved = false
	} else if !m.runSaved {
		m.saveRun()
		m.runSaved = true
		m.best = max(m.best, m.gameState.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameInterval())
}

// saveRun stores the finished run. Failures are logged, play continues.
func (m Model) saveRun() {
	state := m.gameState
	if m.store == nil {
		m.logger.Info("run finished", "player", m.player, "score", state.Score, "victory", state.Victory)
		return
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    state.Score,
		Victory:  state.Victory,
		Launches: state.Launches,
		Level:    state.Level,
		Branch:   state.Branch,
		Duration: state.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved",
		"id", id,
		"player", m.player,
		"score", state.Score,
		"victory", state.Victory,
		"launches", state.Launches,
	)
}

// loadBest reads the best recorded score. Without a store it is 0.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".bugfeature", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	best := fmt.Sprintf("Best: %d  ", m.best)
	m.help.Width = max(1, m.config.ScreenW-lipgloss.Width(best))
	footer := best + m.help.View(m.keys.Keys())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
