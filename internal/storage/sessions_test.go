package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSaveSessionAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(Session{
		GameID:       "monsters",
		Player:       "alice",
		Outcome:      OutcomeWon,
		Kills:        31,
		DurationSecs: 42.5,
		Seed:         12345,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session id %q is not a UUID: %v", id, err)
	}

	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got.Player != "alice" || got.Outcome != OutcomeWon || got.Kills != 31 ||
		got.DurationSecs != 42.5 || got.Seed != 12345 || got.GameID != "monsters" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestSaveSessionKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	want := NewSessionID()
	id, err := store.SaveSession(Session{ID: want, GameID: "monsters", Player: "bob", Outcome: OutcomeLost})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id != want {
		t.Errorf("id = %q, want %q", id, want)
	}

	if _, err := store.SaveSession(Session{ID: want, GameID: "monsters", Player: "bob", Outcome: OutcomeLost}); err == nil {
		t.Error("duplicate session id should fail")
	}
}

func TestSaveSessionRejectsBadID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(Session{ID: "not-a-uuid", GameID: "monsters"}); err == nil {
		t.Error("expected error for malformed session id")
	}
}

func TestSessionByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SessionByID(NewSessionID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		player := "alice"
		if i%2 == 1 {
			player = "bob"
		}
		id, err := store.SaveSession(Session{GameID: "monsters", Player: player, Outcome: OutcomeLost, Kills: i})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	// Newest first
	for i, want := range []string{ids[4], ids[3], ids[2]} {
		if recent[i].ID != want {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].ID, want)
		}
	}

	bob, err := store.PlayerSessions("bob", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() failed: %v", err)
	}
	if len(bob) != 2 {
		t.Errorf("bob has %d sessions, want 2", len(bob))
	}
}

func TestGameSessions(t *testing.T) {
	store := openTestStore(t)

	for _, game := range []string{"monsters", "monsters_endless", "monsters"} {
		if _, err := store.SaveSession(Session{GameID: game, Outcome: OutcomeAbandoned}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	tests := []struct {
		game string
		want int
	}{
		{"monsters", 2},
		{"monsters_endless", 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got, err := store.GameSessions(tt.game, 10)
		if err != nil {
			t.Fatalf("GameSessions(%q) failed: %v", tt.game, err)
		}
		if len(got) != tt.want {
			t.Errorf("GameSessions(%q) = %d sessions, want %d", tt.game, len(got), tt.want)
		}
		for _, s := range got {
			if s.GameID != tt.game {
				t.Errorf("GameSessions(%q) returned %q", tt.game, s.GameID)
			}
		}
	}
}
