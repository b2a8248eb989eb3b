package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BugFeatureConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Weapon.CooldownMS = 2000
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Weapon.CooldownMS = 4000
	}
}

// ErrNoLevels is returned when the level table is empty.
var ErrNoLevels = errors.New("config: difficulty table has no levels")

// Validate checks the values the game relies on.
func (c BugFeatureConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Player.MinX >= c.Player.MaxX {
		return fmt.Errorf("config: player min_x %v must be below max_x %v", c.Player.MinX, c.Player.MaxX)
	}
	if c.Mothership.MinX >= c.Mothership.MaxX {
		return fmt.Errorf("config: mothership min_x %v must be below max_x %v", c.Mothership.MinX, c.Mothership.MaxX)
	}
	if c.Mothership.ErraticInterval <= 0 {
		return fmt.Errorf("config: mothership erratic_interval_ms must be positive, got %d", c.Mothership.ErraticInterval)
	}
	if err := validateEntities(c.Entities); err != nil {
		return err
	}
	if c.Weapon.MaxShots <= 0 {
		return fmt.Errorf("config: weapon max_shots must be positive, got %d", c.Weapon.MaxShots)
	}
	if c.Weapon.CooldownMS <= 0 || c.Weapon.ShotResetDelay <= 0 {
		return errors.New("config: weapon timings must be positive")
	}
	if c.Session.Lives <= 0 {
		return fmt.Errorf("config: session lives must be positive, got %d", c.Session.Lives)
	}
	if c.Session.FeaturesPerRocket <= 0 {
		return fmt.Errorf("config: features_per_rocket must be positive, got %d", c.Session.FeaturesPerRocket)
	}
	if c.Session.BugSpawnMS <= 0 {
		return fmt.Errorf("config: bug_spawn_ms must be positive, got %d", c.Session.BugSpawnMS)
	}
	return validateLevels(c.Difficulty.Levels)
}

// validateEntities requires bugs and features to fall, bullets and rockets
// to rise, and every box to have an area.
func validateEntities(e EntitiesConfig) error {
	kinds := []struct {
		name    string
		cfg     EntityConfig
		falling bool
	}{
		{"bug", e.Bug, true},
		{"feature", e.Feature, true},
		{"bullet", e.Bullet, false},
		{"rocket", e.Rocket, false},
	}
	for _, k := range kinds {
		if k.falling && k.cfg.Velocity <= 0 {
			return fmt.Errorf("config: %s velocity must be positive (downward), got %v", k.name, k.cfg.Velocity)
		}
		if !k.falling && k.cfg.Velocity >= 0 {
			return fmt.Errorf("config: %s velocity must be negative (upward), got %v", k.name, k.cfg.Velocity)
		}
		if k.cfg.Width <= 0 || k.cfg.Height <= 0 {
			return fmt.Errorf("config: %s size must be positive, got %vx%v", k.name, k.cfg.Width, k.cfg.Height)
		}
	}
	return nil
}

// validateLevels requires a non-empty table starting at threshold 0 with
// strictly increasing thresholds and erratic chances in [0, 1).
func validateLevels(levels []LevelConfig) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	if levels[0].Threshold != 0 {
		return fmt.Errorf("config: first level %q must have threshold 0, got %d", levels[0].Name, levels[0].Threshold)
	}
	for i, l := range levels {
		if l.ErraticChance < 0 || l.ErraticChance >= 1 {
			return fmt.Errorf("config: level %q erratic_chance %v out of [0, 1)", l.Name, l.ErraticChance)
		}
		if l.Speed <= 0 {
			return fmt.Errorf("config: level %q speed must be positive", l.Name)
		}
		if i > 0 && l.Threshold <= levels[i-1].Threshold {
			return fmt.Errorf("config: level %q threshold %d not above previous %d", l.Name, l.Threshold, levels[i-1].Threshold)
		}
	}
	return nil
}
