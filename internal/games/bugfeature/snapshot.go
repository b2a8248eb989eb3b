package bugfeature

import (
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// EntityView is one drawable pool entity in world units.
type EntityView struct {
	Kind   Kind
	Bounds core.Rect
}

// Snapshot is a read-only view of everything a frontend needs to draw a frame.
// Both the terminal renderer and the desktop window are built on it.
type Snapshot struct {
	Scene     Scene
	Paused    bool
	Countdown int
	Cursor    Branch

	WorldW, WorldH float64

	Player            core.Rect
	Branch            Branch
	PlayerVisible     bool
	Mothership        core.Rect
	MothershipVisible bool
	Entities          []EntityView

	Score             int
	Lives             int
	Features          int
	FeaturesPerRocket int
	Launches          int
	VictoryLaunches   int
	Level             string

	Heat          float64
	Overheated    bool
	CooldownLeft  time.Duration
	ReadyToLaunch bool
	Banner        string

	Victory bool
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Scene:     g.scene,
		Paused:    g.paused,
		Countdown: g.CountdownSeconds(),
		Cursor:    Branches[g.cursor],

		WorldW: g.cfg.World.Width,
		WorldH: g.cfg.World.Height,

		Player:            s.Player.Bounds(),
		Branch:            s.Player.Branch,
		PlayerVisible:     s.PlayerVisible(),
		Mothership:        s.Mothership.Bounds(),
		MothershipVisible: s.MothershipVisible(),

		Score:             s.Score,
		Lives:             s.Lives,
		Features:          s.FeatureCount,
		FeaturesPerRocket: g.cfg.Session.FeaturesPerRocket,
		Launches:          s.ProductionLaunches,
		VictoryLaunches:   g.cfg.Session.VictoryLaunches,
		Level:             s.Difficulty.Level().Name,

		Heat:          s.Weapon.Progress(),
		Overheated:    s.Weapon.Overheated(),
		CooldownLeft:  s.Weapon.CooldownRemaining(),
		ReadyToLaunch: s.ReadyToLaunch(),

		Victory: s.Victory,
	}
	if banner, ok := s.LevelBanner(); ok {
		snap.Banner = banner
	}

	for _, pool := range []*Pool{s.Bugs, s.Features, s.Bullets, s.Rockets} {
		for _, e := range pool.Items() {
			snap.Entities = append(snap.Entities, EntityView{Kind: e.Kind, Bounds: e.Bounds()})
		}
	}
	return snap
}

// HeatColor maps heat progress to the bar color: green, lime, yellow,
// orange, then red when fully overheated.
func HeatColor(progress float64) core.Color {
	switch {
	case progress < 0.25:
		return core.ColorGreen
	case progress < 0.5:
		return core.ColorLime
	case progress < 0.75:
		return core.ColorYellow
	case progress < 1:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// KindColor returns the color an entity kind is drawn with.
func KindColor(k Kind) core.Color {
	switch k {
	case KindBug:
		return core.ColorRed
	case KindFeature:
		return core.ColorGreen
	case KindBullet:
		return core.ColorYellow
	case KindRocket:
		return core.ColorCyan
	default:
		return core.ColorDefault
	}
}
