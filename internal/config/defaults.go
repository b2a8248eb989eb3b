package config

import (
	_ "embed"
)

//go:embed defaults/bugfeature.yaml
var defaultBugFeatureYAML []byte

// DefaultBugFeatureConfig returns the default Bug to Feature configuration.
// It mirrors defaults/bugfeature.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBugFeatureConfig() BugFeatureConfig {
	return BugFeatureConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX: 400,
			Y:      550,
			Speed:  200,
			MinX:   40,
			MaxX:   760,
			Width:  90,
			Height: 90,
		},
		Mothership: MothershipConfig{
			StartX:          400,
			Y:               50,
			MinX:            60,
			MaxX:            740,
			Width:           120,
			Height:          30,
			ErraticInterval: 2000,
		},
		Entities: EntitiesConfig{
			Bug:     EntityConfig{Velocity: 100, Width: 30, Height: 30},
			Feature: EntityConfig{Velocity: 180, Width: 30, Height: 30},
			Bullet:  EntityConfig{Velocity: -300, Width: 4, Height: 10},
			Rocket:  EntityConfig{Velocity: -400, Width: 36, Height: 36},
		},
		Weapon: WeaponConfig{
			MaxShots:       4,
			CooldownMS:     3000,
			ShotResetDelay: 2000,
		},
		Session: SessionConfig{
			Lives:             3,
			FeaturesPerRocket: 5,
			BugPoints:         10,
			RocketPoints:      100,
			VictoryLaunches:   15,
			BugSpawnMS:        2000,
			CountdownMS:       3000,
			LevelBannerMS:     2500,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Levels: []LevelConfig{
				{Name: "Intern", Threshold: 0, Speed: 50, ErraticChance: 0},
				{Name: "Junior Dev", Threshold: 3, Speed: 70, ErraticChance: 0.1},
				{Name: "Semi Senior", Threshold: 6, Speed: 90, ErraticChance: 0.25},
				{Name: "Senior Dev", Threshold: 9, Speed: 120, ErraticChance: 0.4},
				{Name: "10X Engineer", Threshold: 12, Speed: 150, ErraticChance: 0.6},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBugFeatureYAML
}
