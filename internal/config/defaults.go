package config

import (
	_ "embed"
)

//go:embed defaults/monsters.yaml
var defaultMonstersYAML []byte

// DefaultMonstersConfig returns the built-in Monster Hunt configuration.
// It matches defaults/monsters.yaml and is used if the embedded file
// cannot be parsed.
func DefaultMonstersConfig() MonstersConfig {
	return MonstersConfig{
		Field: FieldConfig{
			PlayerX:      0.1,
			PlayerY:      0.5,
			PlayerWidth:  2,
			PlayerHeight: 1,
			HUDRows:      1,
		},
		Monster: MonsterConfig{
			Width:         3,
			Height:        2,
			SpawnInterval: 1.0,
			MinDuration:   2.0,
			MaxDuration:   4.0,
		},
		Projectile: ProjectileConfig{
			Radius:   0.5,
			Duration: 2.0,
			Range:    160,
		},
		Rules: RulesConfig{
			WinKills:    30,
			ResultDelay: 3.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     1.0,
				SpawnRateMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "monsters", "monsters_endless":
		return defaultMonstersYAML
	default:
		return nil
	}
}
