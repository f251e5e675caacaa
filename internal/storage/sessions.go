package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session outcomes as stored in the sessions table.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned" // Player left before the hunt ended
)

// Session is one finished hunt.
type Session struct {
	ID           string    `json:"id"` // UUID
	GameID       string    `json:"game_id"`
	Player       string    `json:"player"`
	Outcome      string    `json:"outcome"`
	Kills        int       `json:"kills"`
	DurationSecs float64   `json:"duration_secs"`
	Seed         int64     `json:"seed"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// SaveSession records a finished session. An empty ID is replaced with a
// new one. Returns the stored session ID.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = NewSessionID()
	}
	if _, err := uuid.Parse(sess.ID); err != nil {
		return "", fmt.Errorf("storage: invalid session id %q: %w", sess.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, game_id, player, outcome, kills, duration_secs, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.GameID,
		sess.Player,
		sess.Outcome,
		sess.Kills,
		sess.DurationSecs,
		sess.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	return sess.ID, nil
}

const sessionColumns = `session_id, game_id, player, outcome, kills, duration_secs, seed, created_at`

// SessionByID retrieves a session by its ID.
// Returns ErrNotFound if no such session exists.
func (s *Store) SessionByID(id string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionColumns+` FROM sessions WHERE session_id = ?`,
		id,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return sess, nil
}

// RecentSessions retrieves the most recent sessions across all games.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return scanSessions(rows)
}

// GameSessions retrieves the most recent sessions of one game.
func (s *Store) GameSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game sessions: %w", err)
	}
	return scanSessions(rows)
}

// PlayerSessions retrieves session history for one player.
func (s *Store) PlayerSessions(player string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player sessions: %w", err)
	}
	return scanSessions(rows)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*Session, error) {
	var sess Session
	var createdAt any
	if err := r.Scan(
		&sess.ID,
		&sess.GameID,
		&sess.Player,
		&sess.Outcome,
		&sess.Kills,
		&sess.DurationSecs,
		&sess.Seed,
		&createdAt,
	); err != nil {
		return nil, err
	}
	sess.CreatedAt = parseTime(createdAt)
	return &sess, nil
}

func scanSessions(rows *sql.Rows) ([]Session, error) {
	defer rows.Close()

	var results []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
