package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg MonstersConfig
	if err := yaml.Unmarshal(GetDefaultYAML("monsters"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultMonstersConfig() {
		t.Errorf("embedded = %+v, want %+v", cfg, DefaultMonstersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadMonstersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  win_kills: 5\nmonster:\n  spawn_interval: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMonsters(path)
	if err != nil {
		t.Fatalf("LoadMonsters: %v", err)
	}
	if cfg.Rules.WinKills != 5 {
		t.Errorf("WinKills = %d, want 5", cfg.Rules.WinKills)
	}
	if cfg.Monster.SpawnInterval != 0.5 {
		t.Errorf("SpawnInterval = %v, want 0.5", cfg.Monster.SpawnInterval)
	}
	// Unset fields keep their defaults.
	if cfg.Projectile.Range != 160 {
		t.Errorf("Range = %v, want 160", cfg.Projectile.Range)
	}
}

func TestLoadMonstersMissingCustomPath(t *testing.T) {
	if _, err := LoadMonsters(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadMonstersUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ConfigDirName, "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "monsters.yaml"), []byte("rules:\n  win_kills: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMonsters("")
	if err != nil {
		t.Fatalf("LoadMonsters: %v", err)
	}
	if cfg.Rules.WinKills != 12 {
		t.Errorf("WinKills = %d, want 12", cfg.Rules.WinKills)
	}
}

func TestLoadMonstersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMonsters("")
	if err != nil {
		t.Fatalf("LoadMonsters: %v", err)
	}
	if cfg != DefaultMonstersConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestApplyMonstersPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"", false, 0.0},
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultMonstersConfig()
			ApplyMonstersPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q", got)
	}
	if got := ParsePreset("nightmare"); got != "" {
		t.Errorf("ParsePreset(nightmare) = %q, want empty", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MonstersConfig)
	}{
		{"zero width", func(c *MonstersConfig) { c.Monster.Width = 0 }},
		{"inverted durations", func(c *MonstersConfig) { c.Monster.MinDuration, c.Monster.MaxDuration = 4, 2 }},
		{"zero interval", func(c *MonstersConfig) { c.Monster.SpawnInterval = 0 }},
		{"zero radius", func(c *MonstersConfig) { c.Projectile.Radius = 0 }},
		{"player outside field", func(c *MonstersConfig) { c.Field.PlayerX = 1.5 }},
		{"negative win kills", func(c *MonstersConfig) { c.Rules.WinKills = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMonstersConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
