// Package bugfeature implements Bug to Feature: shoot falling bugs to turn
// them into features, collect features, and launch production rockets at the
// mothership until the release ships or the bugs reach production.
package bugfeature

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
	"github.com/vovakirdan/bug-to-feature/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "bugfeature"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Game implements the Bug to Feature scene machine on top of a Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BugFeatureConfig
	pinned  bool // cfg was supplied by the caller, skip loading
	rng     *rand.Rand
	logger  *log.Logger

	scene     Scene
	cursor    int
	countdown time.Duration
	paused    bool
	session   *Session
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BugFeatureConfig) *Game {
	return &Game{cfg: cfg, pinned: true, logger: log.New(io.Discard)}
}

// SetLogger routes gameplay events to logger. A nil logger discards them.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
	if g.session != nil {
		g.session.logger = logger
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bug to Feature"
}

// Reset returns to branch selection with a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("falling back to default config", "err", err)
			cfg = config.DefaultBugFeatureConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.scene = SceneSelection
	g.cursor = 0
	g.countdown = 0
	g.paused = false
	g.session = g.newSession()
}

func (g *Game) newSession() *Session {
	return NewSession(g.cfg, Branches[g.cursor], g.rng, g.logger)
}

// Step advances the active scene by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	switch g.scene {
	case SceneSelection:
		g.stepSelection(in)
	case SceneCountdown:
		g.stepCountdown(dt)
	case SceneGameplay:
		g.stepGameplay(in, dt)
	case SceneGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State(), Tones: g.session.TakeTones()}
}

func (g *Game) stepSelection(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.cursor = max(0, g.cursor-1)
	}
	if in.Has(core.ActionRight) {
		g.cursor = min(len(Branches)-1, g.cursor+1)
	}
	if in.Has(core.ActionConfirm) {
		g.scene = SceneCountdown
		g.countdown = config.Millis(g.cfg.Session.CountdownMS)
		g.logger.Debug("branch selected", "branch", Branches[g.cursor])
	}
}

func (g *Game) stepCountdown(dt time.Duration) {
	g.countdown -= dt
	if g.countdown > 0 {
		return
	}
	g.countdown = 0
	g.session = g.newSession()
	g.scene = SceneGameplay
	g.logger.Info("run started", "branch", Branches[g.cursor], "level", g.session.Difficulty.Level().Name)
}

func (g *Game) stepGameplay(in core.InputFrame, dt time.Duration) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	if in.Has(core.ActionFire) {
		g.session.Shoot()
	}
	if in.Has(core.ActionLaunch) {
		g.session.LaunchProductionRocket()
	}

	g.session.Update(moveDir(in), dt)

	if g.session.GameOver {
		g.scene = SceneGameOver
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	if !in.Has(core.ActionRestart) {
		return
	}
	g.scene = SceneSelection
	g.paused = false
	g.session = g.newSession()
}

// moveDir converts held movement keys to a direction. Left wins a tie.
func moveDir(in core.InputFrame) float64 {
	switch {
	case in.IsHeld(core.ActionLeft) || in.Has(core.ActionLeft):
		return -1
	case in.IsHeld(core.ActionRight) || in.Has(core.ActionRight):
		return 1
	default:
		return 0
	}
}

// Scene returns the active scene.
func (g *Game) Scene() Scene {
	return g.scene
}

// Session returns the current run. Between runs it is a fresh, idle session.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the config in use.
func (g *Game) Config() config.BugFeatureConfig {
	return g.cfg
}

// SelectedBranch returns the branch under the selection cursor.
func (g *Game) SelectedBranch() Branch {
	return Branches[g.cursor]
}

// CountdownSeconds returns the digit shown during the countdown.
func (g *Game) CountdownSeconds() int {
	if g.scene != SceneCountdown {
		return 0
	}
	return int(math.Ceil(g.countdown.Seconds()))
}

// Paused reports whether gameplay is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score,
		GameOver: g.scene == SceneGameOver,
		Paused:   g.paused,
		Victory:  s.Victory,
		Scene:    g.scene.String(),
		Level:    s.Difficulty.Level().Name,
		Launches: s.ProductionLaunches,
		Branch:   Branches[g.cursor].String(),
		Elapsed:  s.Elapsed(),
	}
}

func init() {
	registry.Register(ID, "Bug to Feature", func() registry.Game {
		return New()
	})
}
