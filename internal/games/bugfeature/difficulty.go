package bugfeature

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

// LevelTable is the ordered difficulty table, lowest threshold first.
type LevelTable []config.LevelConfig

// LevelFor returns the highest index whose threshold is at most launches.
func (t LevelTable) LevelFor(launches int) int {
	for i := len(t) - 1; i >= 0; i-- {
		if launches >= t[i].Threshold {
			return i
		}
	}
	return 0
}

// Difficulty maps production launches to a level and drives the
// mothership's erratic direction changes.
type Difficulty struct {
	table        LevelTable
	enabled      bool
	current      int
	erraticBase  time.Duration
	erraticTimer time.Duration
	rng          *rand.Rand
}

// NewDifficulty creates a controller starting at level 0.
func NewDifficulty(cfg config.DifficultyConfig, erraticBase time.Duration, rng *rand.Rand) *Difficulty {
	return &Difficulty{
		table:       LevelTable(cfg.Levels),
		enabled:     cfg.Enabled,
		erraticBase: erraticBase,
		rng:         rng,
	}
}

// Current returns the index of the current level.
func (d *Difficulty) Current() int {
	return d.current
}

// Level returns the current level row.
func (d *Difficulty) Level() config.LevelConfig {
	return d.table[d.current]
}

// Evaluate re-reads the level for the given launch count.
// Levels never decrease. Returns true on a level increase.
func (d *Difficulty) Evaluate(launches int) bool {
	if !d.enabled {
		return false
	}
	next := d.table.LevelFor(launches)
	if next <= d.current {
		return false
	}
	d.current = next
	return true
}

// ErraticInterval returns how often the current level rolls for a
// direction flip. Higher erratic chance means more frequent rolls.
func (d *Difficulty) ErraticInterval() time.Duration {
	chance := d.Level().ErraticChance
	return time.Duration(float64(d.erraticBase) / (1 + chance*2))
}

// TickErratic advances the erratic timer and reports whether the mothership
// should flip direction this frame.
func (d *Difficulty) TickErratic(dt time.Duration) bool {
	d.erraticTimer += dt
	chance := d.Level().ErraticChance
	if chance <= 0 || d.erraticTimer < d.ErraticInterval() {
		return false
	}
	d.erraticTimer = 0
	return d.rng.Float64() < chance
}

// Reset returns to level 0 and clears the erratic timer.
func (d *Difficulty) Reset() {
	d.current = 0
	d.erraticTimer = 0
}
