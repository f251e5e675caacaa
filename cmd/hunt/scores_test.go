package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/monster-hunt/internal/storage"
)

func TestScoresClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveScore("monsters", 12)
	store.SaveScore("monsters_endless", 40)
	store.Close()

	oldDB, oldClear := flagDBPath, flagClear
	t.Cleanup(func() { flagDBPath, flagClear = oldDB, oldClear })
	flagDBPath, flagClear = dbPath, true

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	if err := runScores(scoresCmd, []string{"monsters"}); err != nil {
		t.Fatalf("runScores: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared high scores") {
		t.Errorf("output = %q", out.String())
	}

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if scores, _ := store.TopScores("monsters", 10); len(scores) != 0 {
		t.Errorf("monsters scores = %d, want 0", len(scores))
	}
	if scores, _ := store.TopScores("monsters_endless", 10); len(scores) != 1 {
		t.Errorf("endless scores = %d, want 1", len(scores))
	}
}

func TestScoresUnknownGame(t *testing.T) {
	if err := runScores(scoresCmd, []string{"nope"}); err == nil {
		t.Error("expected error for unknown game")
	}
}
