// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// MonstersConfig contains all configuration for Monster Hunt.
type MonstersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Monster    MonsterConfig    `yaml:"monster"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig places the player on the play field.
type FieldConfig struct {
	PlayerX      float64 `yaml:"player_x"` // Fraction of field width
	PlayerY      float64 `yaml:"player_y"` // Fraction of field height
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	HUDRows      int     `yaml:"hud_rows"` // Screen rows reserved above the field
}

// MonsterConfig defines monster size and spawn pacing.
type MonsterConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds
	MinDuration   float64 `yaml:"min_duration"`   // Seconds to cross the field
	MaxDuration   float64 `yaml:"max_duration"`
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Radius   float64 `yaml:"radius"`
	Duration float64 `yaml:"duration"` // Seconds to travel Range
	Range    float64 `yaml:"range"`
}

// RulesConfig defines win conditions and scene timing.
type RulesConfig struct {
	WinKills    int     `yaml:"win_kills"`    // Kills to exceed for a win; 0 = endless
	ResultDelay float64 `yaml:"result_delay"` // Seconds the result scene stays up
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`      // Added monster speed at max difficulty
	SpawnRateMultiplier float64 `yaml:"spawn_rate_multiplier"` // Added spawn rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
