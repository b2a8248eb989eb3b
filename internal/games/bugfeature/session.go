package bugfeature

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// Audible cues for gameplay events.
var (
	toneShoot         = core.Tone{Freq: 800, Duration: 100 * time.Millisecond}
	toneBugHit        = core.Tone{Freq: 1200, Duration: 100 * time.Millisecond}
	toneCollect       = core.Tone{Freq: 1600, Duration: 100 * time.Millisecond}
	toneLaunch        = core.Tone{Freq: 200, Duration: 300 * time.Millisecond}
	toneMothershipHit = core.Tone{Freq: 300, Duration: 200 * time.Millisecond}
	toneLevelUp       = core.Tone{Freq: 1000, Duration: 200 * time.Millisecond}
	toneLifeLost      = core.Tone{Freq: 200, Duration: 500 * time.Millisecond}
)

// Hit feedback: six alternating 100ms phases.
const (
	blinkPhase    = 100 * time.Millisecond
	blinkDuration = 6 * blinkPhase
)

// Session is the state of one run, from the end of the countdown to game over.
// It is replaced, not mutated back, when the player restarts.
type Session struct {
	cfg    config.BugFeatureConfig
	logger *log.Logger

	Score              int
	Lives              int
	FeatureCount       int
	ProductionLaunches int
	GameOver           bool
	Victory            bool

	Player     Player
	Mothership Mothership

	Bugs     *Pool
	Features *Pool
	Bullets  *Pool
	Rockets  *Pool

	Weapon     *Overheat
	Difficulty *Difficulty

	bugSpawnTimer   time.Duration
	elapsed         time.Duration
	levelBanner     time.Duration
	playerBlink     time.Duration
	mothershipBlink time.Duration
	tones           []core.Tone
}

// NewSession creates a fresh run with initial lives, empty pools and level 0.
func NewSession(cfg config.BugFeatureConfig, branch Branch, rng *rand.Rand, logger *log.Logger) *Session {
	difficulty := NewDifficulty(cfg.Difficulty, config.Millis(cfg.Mothership.ErraticInterval), rng)

	return &Session{
		cfg:        cfg,
		logger:     logger,
		Lives:      cfg.Session.Lives,
		Player:     NewPlayer(cfg.Player, branch),
		Mothership: NewMothership(cfg.Mothership, difficulty.Level().Speed),
		Bugs:       NewPool(KindBug, cfg.Entities.Bug),
		Features:   NewPool(KindFeature, cfg.Entities.Feature),
		Bullets:    NewPool(KindBullet, cfg.Entities.Bullet),
		Rockets:    NewPool(KindRocket, cfg.Entities.Rocket),
		Weapon:     NewOverheat(cfg.Weapon),
		Difficulty: difficulty,
	}
}

// Shoot fires a bullet from the player unless the weapon is overheated or
// the run is over. Returns whether a bullet was spawned.
func (s *Session) Shoot() bool {
	if s.GameOver {
		return false
	}

	result := s.Weapon.Fire()
	if !result.Fired() {
		return false
	}

	x, y := s.Player.Muzzle()
	s.Bullets.Spawn(x, y)
	s.cue(toneShoot)

	if result == FireOverheated {
		s.logger.Debug("weapon overheated", "cooldown", config.Millis(s.cfg.Weapon.CooldownMS))
	}
	return true
}

// LaunchProductionRocket spends features on a rocket. It is a no-op unless
// enough features were collected.
func (s *Session) LaunchProductionRocket() bool {
	if s.GameOver || !s.ReadyToLaunch() {
		return false
	}

	x, y := s.Player.Muzzle()
	s.Rockets.Spawn(x, y)
	s.FeatureCount -= s.cfg.Session.FeaturesPerRocket
	s.cue(toneLaunch)
	return true
}

// ReadyToLaunch reports whether a production rocket can be launched.
func (s *Session) ReadyToLaunch() bool {
	return s.FeatureCount >= s.cfg.Session.FeaturesPerRocket
}

// Update runs one gameplay frame. dir is the horizontal input (-1, 0, +1).
// Once the run is over nothing moves until the session is replaced.
func (s *Session) Update(dir float64, dt time.Duration) {
	if s.GameOver {
		return
	}
	s.elapsed += dt

	s.Player.Move(dir, dt)

	if s.Difficulty.TickErratic(dt) {
		s.Mothership.Flip()
	}
	s.Mothership.Move(dt)

	s.Bugs.Advance(dt)
	s.Features.Advance(dt)
	s.Bullets.Advance(dt)
	s.Rockets.Advance(dt)

	s.bugSpawnTimer += dt
	if s.bugSpawnTimer >= config.Millis(s.cfg.Session.BugSpawnMS) {
		x, y := s.Mothership.Hatch()
		s.Bugs.Spawn(x, y)
		s.bugSpawnTimer = 0
	}

	s.sweep()
	if s.GameOver {
		return
	}

	if s.Weapon.Update(dt) {
		s.logger.Debug("weapon cooled down")
	}

	s.checkCollisions()
	s.tickNotices(dt)
}

// sweep removes entities that left the playfield.
// Bugs that reach the bottom cost a life; missed features cost nothing.
func (s *Session) sweep() {
	bottom := s.cfg.World.Height

	s.Bugs.Sweep(below(bottom), func(Entity) { s.loseLife() })
	s.Features.Sweep(below(bottom), nil)
	s.Bullets.Sweep(above(0), nil)
	s.Rockets.Sweep(above(0), nil)
}

func (s *Session) loseLife() {
	if s.Lives <= 0 {
		return
	}

	s.Lives--
	s.playerBlink = blinkDuration
	s.cue(toneLifeLost)
	s.logger.Debug("bug reached production", "lives", s.Lives)

	if s.Lives <= 0 {
		s.end(false)
	}
}

func (s *Session) end(victory bool) {
	s.GameOver = true
	s.Victory = victory
	s.logger.Info("run finished",
		"victory", victory,
		"score", s.Score,
		"launches", s.ProductionLaunches,
		"level", s.Difficulty.Level().Name,
		"elapsed", s.elapsed.Round(time.Millisecond),
	)
}

func (s *Session) tickNotices(dt time.Duration) {
	s.levelBanner = max(0, s.levelBanner-dt)
	s.playerBlink = max(0, s.playerBlink-dt)
	s.mothershipBlink = max(0, s.mothershipBlink-dt)
}

// LevelBanner returns the level-up message while it is showing.
func (s *Session) LevelBanner() (string, bool) {
	if s.levelBanner <= 0 {
		return "", false
	}
	return "LEVEL UP: " + s.Difficulty.Level().Name, true
}

// PlayerVisible is false during the dim phases of the hit blink.
func (s *Session) PlayerVisible() bool {
	return blinkVisible(s.playerBlink)
}

// MothershipVisible is false during the dim phases of the hit blink.
func (s *Session) MothershipVisible() bool {
	return blinkVisible(s.mothershipBlink)
}

func blinkVisible(remaining time.Duration) bool {
	if remaining <= 0 {
		return true
	}
	phase := int((blinkDuration - remaining) / blinkPhase)
	return phase%2 == 1
}

// Elapsed returns the gameplay time of this run.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Session) cue(t core.Tone) {
	s.tones = append(s.tones, t)
}

// TakeTones returns and clears the cues requested since the last call.
func (s *Session) TakeTones() []core.Tone {
	if len(s.tones) == 0 {
		return nil
	}
	out := s.tones
	s.tones = nil
	return out
}
