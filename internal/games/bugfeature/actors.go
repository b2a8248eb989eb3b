package bugfeature

import (
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// Branch is the player's chosen specialty. It only changes the icon.
type Branch int

const (
	BranchFrontend Branch = iota
	BranchMobile
	BranchBackend
)

// Branches lists the selectable branches in display order.
var Branches = []Branch{BranchFrontend, BranchMobile, BranchBackend}

// String returns the branch name.
func (b Branch) String() string {
	switch b {
	case BranchMobile:
		return "mobile"
	case BranchBackend:
		return "backend"
	default:
		return "frontend"
	}
}

// Icon returns the short glyph drawn for the branch.
func (b Branch) Icon() string {
	switch b {
	case BranchMobile:
		return "[▯]"
	case BranchBackend:
		return "{#}"
	default:
		return "</>"
	}
}

// Player is the sprite at the bottom of the screen.
type Player struct {
	X, Y   float64
	Branch Branch
	cfg    config.PlayerConfig
}

// NewPlayer places a player at the configured start position.
func NewPlayer(cfg config.PlayerConfig, branch Branch) Player {
	return Player{X: cfg.StartX, Y: cfg.Y, Branch: branch, cfg: cfg}
}

// Move shifts the player horizontally. dir is -1, 0 or +1.
func (p *Player) Move(dir float64, dt time.Duration) {
	if dir == 0 {
		return
	}
	p.X = core.ClampF(p.X+dir*p.cfg.Speed*dt.Seconds(), p.cfg.MinX, p.cfg.MaxX)
}

// Bounds returns the player's collision box.
func (p Player) Bounds() core.Rect {
	return core.RectAround(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// Muzzle returns where bullets and rockets leave the player.
func (p Player) Muzzle() (float64, float64) {
	return p.X, p.Y - 40
}

// Mothership is the target bouncing along the top of the screen.
type Mothership struct {
	X, Y  float64
	Dir   float64 // -1 or +1
	Speed float64
	cfg   config.MothershipConfig
}

// NewMothership places the mothership at its start position moving right.
func NewMothership(cfg config.MothershipConfig, speed float64) Mothership {
	return Mothership{X: cfg.StartX, Y: cfg.Y, Dir: 1, Speed: speed, cfg: cfg}
}

// Move advances the mothership and bounces it off the horizontal limits.
func (m *Mothership) Move(dt time.Duration) {
	m.X += m.Dir * m.Speed * dt.Seconds()
	if m.X <= m.cfg.MinX {
		m.X = m.cfg.MinX
		m.Dir = 1
	} else if m.X >= m.cfg.MaxX {
		m.X = m.cfg.MaxX
		m.Dir = -1
	}
}

// Flip reverses the direction of travel.
func (m *Mothership) Flip() {
	m.Dir = -m.Dir
}

// Bounds returns the mothership's collision box.
func (m Mothership) Bounds() core.Rect {
	return core.RectAround(m.X, m.Y, m.cfg.Width, m.cfg.Height)
}

// Hatch returns where bugs are dropped from.
func (m Mothership) Hatch() (float64, float64) {
	return m.X, m.Y + 20
}
