// Package session keeps the client's local copy of the current login: the
// bearer token plus the user record it was issued for. It is convenience
// state only; the server re-verifies the token on every request.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNoSession = errors.New("no saved session")

type Session struct {
	Token   string
	User    json.RawMessage
	SavedAt time.Time
}

type Store struct {
	db *sql.DB
}

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL,
	user_json TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
)`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(ctx context.Context, token string, user any) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	token = excluded.token,
	user_json = excluded.user_json,
	saved_at = excluded.saved_at`,
		token, string(userJSON), time.Now().UTC(),
	)
	return err
}

func (s *Store) Load(ctx context.Context) (Session, error) {
	var (
		sess Session
		user string
	)
	row := s.db.QueryRowContext(ctx, `SELECT token, user_json, saved_at FROM session WHERE id = 1`)
	if err := row.Scan(&sess.Token, &user, &sess.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	sess.User = json.RawMessage(user)
	return sess, nil
}

// Clear discards the saved session. This is the whole of logout; the token
// itself stays valid server-side until it expires.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
	return err
}
