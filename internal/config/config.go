// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import "time"

// BugFeatureConfig contains all configuration for the Bug to Feature game.
type BugFeatureConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Mothership MothershipConfig `yaml:"mothership"`
	Entities   EntitiesConfig   `yaml:"entities"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its movement.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"` // Units per second
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MothershipConfig defines the target at the top of the screen.
type MothershipConfig struct {
	StartX          float64 `yaml:"start_x"`
	Y               float64 `yaml:"y"`
	MinX            float64 `yaml:"min_x"`
	MaxX            float64 `yaml:"max_x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ErraticInterval int     `yaml:"erratic_interval_ms"`
}

// EntitiesConfig defines per-kind entity parameters.
type EntitiesConfig struct {
	Bug     EntityConfig `yaml:"bug"`
	Feature EntityConfig `yaml:"feature"`
	Bullet  EntityConfig `yaml:"bullet"`
	Rocket  EntityConfig `yaml:"rocket"`
}

// EntityConfig defines the vertical velocity and box of one entity kind.
// Positive velocity moves down, negative moves up.
type EntityConfig struct {
	Velocity float64 `yaml:"velocity"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// WeaponConfig defines the overheat behavior of the player's weapon.
type WeaponConfig struct {
	MaxShots       int `yaml:"max_shots"`
	CooldownMS     int `yaml:"cooldown_ms"`
	ShotResetDelay int `yaml:"shot_reset_delay_ms"`
}

// SessionConfig defines scoring, lives, and timers of one run.
type SessionConfig struct {
	Lives             int `yaml:"lives"`
	FeaturesPerRocket int `yaml:"features_per_rocket"`
	BugPoints         int `yaml:"bug_points"`
	RocketPoints      int `yaml:"rocket_points"`
	VictoryLaunches   int `yaml:"victory_launches"`
	BugSpawnMS        int `yaml:"bug_spawn_ms"`
	CountdownMS       int `yaml:"countdown_ms"`
	LevelBannerMS     int `yaml:"level_banner_ms"`
}

// DifficultyConfig defines the level progression table.
type DifficultyConfig struct {
	Enabled bool          `yaml:"enabled"`
	Levels  []LevelConfig `yaml:"levels"`
}

// LevelConfig is one row of the level table.
type LevelConfig struct {
	Name          string  `yaml:"name"`
	Threshold     int     `yaml:"threshold"` // Production launches needed to reach this level
	Speed         float64 `yaml:"speed"`     // Mothership speed in units per second
	ErraticChance float64 `yaml:"erratic_chance"`
}

// Millis converts a millisecond count from the config to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
