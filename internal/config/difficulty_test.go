package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDifficultyDisabledIsIdentity(t *testing.T) {
	dm := NewDifficultyManager(DefaultMonstersConfig().Difficulty)
	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := dm.Interval(1.0, 100, 1000); got != 1.0 {
		t.Errorf("Interval = %v, want 1.0", got)
	}
	if got := dm.Duration(3.0, 100, 1000); got != 3.0 {
		t.Errorf("Duration = %v, want 3.0", got)
	}
}

func TestDifficultyLevelByScore(t *testing.T) {
	cfg := DefaultMonstersConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.2
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{15, 0.6},
		{30, 1.0},
		{90, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); !approx(got, tt.want) {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyScalesPace(t *testing.T) {
	cfg := DefaultMonstersConfig().Difficulty
	cfg.Enabled = true
	dm := NewDifficultyManager(cfg)

	// At max level with multipliers of 1 everything runs twice as fast.
	if got := dm.Interval(1.0, 30, 0); !approx(got, 0.5) {
		t.Errorf("Interval = %v, want 0.5", got)
	}
	if got := dm.Duration(4.0, 30, 0); !approx(got, 2.0) {
		t.Errorf("Duration = %v, want 2.0", got)
	}

	cfg.Scaling.SpawnRateMultiplier = 100
	dm = NewDifficultyManager(cfg)
	if got := dm.Interval(1.0, 30, 0); !approx(got, 0.1) {
		t.Errorf("Interval floor = %v, want 0.1", got)
	}
}

func TestDifficultySetInitialLevelClamps(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{})
	dm.SetInitialLevel(3)
	if got := dm.Level(0, 0); got != 1.0 {
		t.Errorf("Level = %v, want 1.0", got)
	}
}
