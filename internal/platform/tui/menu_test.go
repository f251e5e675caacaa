package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-hunt/internal/core"
)

func pressMenu(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuPreselectsLastChoice(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "scripted", "hard")

	if got := m.items[m.cursor].GameID; got != "scripted" {
		t.Errorf("cursor on %q, want scripted", got)
	}
	if m.Difficulty() != "hard" {
		t.Errorf("difficulty = %q, want hard", m.Difficulty())
	}
	if !strings.Contains(m.View(), "< hard >") {
		t.Error("view missing difficulty")
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "", "easy")

	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("left from easy = %q, want fixed", m.Difficulty())
	}
	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "normal" {
		t.Errorf("difficulty = %q, want normal", m.Difficulty())
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		check func(MenuResult) bool
	}{
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, func(r MenuResult) bool { return r.GameID == "scripted" && !r.Quit }},
		{"scoreboard", tea.KeyMsg{Type: tea.KeyTab}, func(r MenuResult) bool { return r.WantsScoreboard && r.GameID == "" }},
		{"quit", runeKey("q"), func(r MenuResult) bool { return r.Quit }},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, func(r MenuResult) bool { return r.Quit }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig(), "scripted", "normal")
			m, cmd := pressMenu(m, tt.key)
			if cmd == nil {
				t.Error("expected the menu to exit")
			}
			if r := m.Result(); !tt.check(r) {
				t.Errorf("Result() = %+v", r)
			}
		})
	}
}

func TestMenuBeforeSelectionHasNoGame(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "scripted", "normal")
	m, _ = pressMenu(m, tea.KeyMsg{Type: tea.KeyDown})

	if m.Selected() != nil || m.Result().GameID != "" {
		t.Error("moving the cursor must not select a game")
	}
}
