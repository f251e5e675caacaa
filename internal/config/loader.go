package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the per-user directory under $HOME holding configs,
// scores and logs.
const ConfigDirName = ".hunt"

// LoadMonsters loads Monster Hunt configuration.
// Search order: customPath -> ~/.hunt/configs/monsters.yaml -> ./configs/monsters.yaml -> embedded default
func LoadMonsters(customPath string) (MonstersConfig, error) {
	// Start from defaults so partial files only override what they set.
	cfg := DefaultMonstersConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("monsters.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "monsters.yaml")); ok {
		return loaded, nil
	}

	embedded := DefaultMonstersConfig()
	if err := yaml.Unmarshal(defaultMonstersYAML, &embedded); err != nil {
		return DefaultMonstersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (MonstersConfig, bool) {
	cfg := DefaultMonstersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, "configs", filename)
}

// ApplyMonstersPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyMonstersPreset(cfg *MonstersConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Monster.MinDuration = 3.0
		cfg.Monster.MaxDuration = 5.0
	case DifficultyHard:
		cfg.Projectile.Radius = 0.4
	}
}

// Validate reports configuration values that would break the game.
func (c MonstersConfig) Validate() error {
	switch {
	case c.Monster.Width <= 0 || c.Monster.Height <= 0:
		return fmt.Errorf("config: monster size must be positive")
	case c.Monster.MinDuration <= 0 || c.Monster.MaxDuration < c.Monster.MinDuration:
		return fmt.Errorf("config: monster durations must satisfy 0 < min_duration <= max_duration")
	case c.Monster.SpawnInterval <= 0:
		return fmt.Errorf("config: spawn_interval must be positive")
	case c.Projectile.Radius <= 0 || c.Projectile.Duration <= 0 || c.Projectile.Range <= 0:
		return fmt.Errorf("config: projectile radius, duration and range must be positive")
	case c.Field.PlayerX < 0 || c.Field.PlayerX > 1 || c.Field.PlayerY < 0 || c.Field.PlayerY > 1:
		return fmt.Errorf("config: player_x and player_y are fractions in [0, 1]")
	case c.Rules.WinKills < 0:
		return fmt.Errorf("config: win_kills must not be negative")
	}
	return nil
}
