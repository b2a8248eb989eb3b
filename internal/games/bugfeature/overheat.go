package bugfeature

import (
	"math"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

// WeaponState is the state of the overheat machine.
type WeaponState int

const (
	WeaponReady WeaponState = iota
	WeaponOverheated
)

// String returns the name of the state.
func (s WeaponState) String() string {
	if s == WeaponOverheated {
		return "OVERHEATED"
	}
	return "READY"
}

// FireResult tells the caller what a fire request did.
type FireResult int

const (
	FireRejected   FireResult = iota // Weapon is overheated, nothing fired
	FireOK                           // Shot fired
	FireOverheated                   // Shot fired and it tripped the overheat
)

// Fired reports whether a bullet should be spawned.
func (r FireResult) Fired() bool {
	return r != FireRejected
}

// Overheat tracks consecutive shots and locks the weapon after too many.
//
// shotCount stays within [0, maxShots]: the shot that reaches maxShots
// switches to OVERHEATED and zeroes the count. After shotResetDelay without
// firing, the count decays at maxShots per shotResetDelay.
type Overheat struct {
	maxShots      int
	cooldown      time.Duration
	resetDelay    time.Duration
	shotCount     float64
	state         WeaponState
	cooldownTimer time.Duration
	sinceLastShot time.Duration
}

// NewOverheat creates a READY weapon from the config.
func NewOverheat(cfg config.WeaponConfig) *Overheat {
	return &Overheat{
		maxShots:   cfg.MaxShots,
		cooldown:   config.Millis(cfg.CooldownMS),
		resetDelay: config.Millis(cfg.ShotResetDelay),
	}
}

// Fire records a shot if the weapon is READY.
func (o *Overheat) Fire() FireResult {
	if o.state == WeaponOverheated {
		return FireRejected
	}

	o.shotCount++
	o.sinceLastShot = 0
	if o.shotCount >= float64(o.maxShots) {
		o.state = WeaponOverheated
		o.shotCount = 0
		o.cooldownTimer = 0
		return FireOverheated
	}
	return FireOK
}

// Update advances the timers by dt. Returns true when the weapon cooled
// down during this update.
func (o *Overheat) Update(dt time.Duration) bool {
	if o.state == WeaponOverheated {
		o.cooldownTimer += dt
		if o.cooldownTimer >= o.cooldown {
			o.state = WeaponReady
			o.cooldownTimer = 0
			o.shotCount = 0
			o.sinceLastShot = 0
			return true
		}
		return false
	}

	prev := o.sinceLastShot
	o.sinceLastShot += dt
	if o.shotCount == 0 || o.sinceLastShot <= o.resetDelay {
		return false
	}

	// Only the part of dt past the reset delay decays the count.
	idle := o.sinceLastShot - max(prev, o.resetDelay)
	decay := float64(o.maxShots) * float64(idle) / float64(o.resetDelay)
	o.shotCount = math.Max(0, o.shotCount-decay)
	return false
}

// State returns the current state.
func (o *Overheat) State() WeaponState {
	return o.state
}

// Overheated reports whether firing is locked.
func (o *Overheat) Overheated() bool {
	return o.state == WeaponOverheated
}

// ShotCount returns the current, possibly fractional, consecutive shot count.
func (o *Overheat) ShotCount() float64 {
	return o.shotCount
}

// MaxShots returns the shot count that trips the overheat.
func (o *Overheat) MaxShots() int {
	return o.maxShots
}

// Progress returns the heat level in [0, 1]; 1 while overheated.
func (o *Overheat) Progress() float64 {
	if o.state == WeaponOverheated {
		return 1
	}
	if o.maxShots <= 0 {
		return 0
	}
	return math.Min(1, o.shotCount/float64(o.maxShots))
}

// CooldownRemaining returns how long until the weapon is READY again.
func (o *Overheat) CooldownRemaining() time.Duration {
	if o.state != WeaponOverheated {
		return 0
	}
	return o.cooldown - o.cooldownTimer
}

// Reset returns the weapon to a fresh READY state.
func (o *Overheat) Reset() {
	o.shotCount = 0
	o.state = WeaponReady
	o.cooldownTimer = 0
	o.sinceLastShot = 0
}
