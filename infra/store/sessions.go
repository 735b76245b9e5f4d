// Package store persists viewing sessions in SQLite so recently read
// threads reopen with the sort and limit they were left at.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/infra/reddit"
)

const (
	sessionTTL  = 30 * time.Minute
	maxSessions = 15
)

// Sessions is a SQLite-backed app.SessionStore.
type Sessions struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (and initializes) the session database at path. Use
// ":memory:" for tests.
func Open(path string) (*Sessions, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	s := &Sessions{db: db, now: time.Now}
	if err := s.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sessions) init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS sessions (
  token TEXT PRIMARY KEY,
  url TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL DEFAULT '',
  sort TEXT NOT NULL,
  lim INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  last_accessed TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Sessions) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Touch returns the session for a permalink, creating one when absent,
// and refreshes its last-accessed time. Expired and over-cap sessions
// are pruned on every touch.
func (s *Sessions) Touch(ctx context.Context, permalink string) (app.Session, error) {
	url := reddit.NormalizePermalink(permalink)
	now := s.now().UTC()

	// Prune first so an expired session starts over instead of being
	// refreshed.
	if err := s.prune(ctx); err != nil {
		return app.Session{}, err
	}

	sess, err := s.lookup(ctx, url)
	if errors.Is(err, sql.ErrNoRows) {
		sess = app.Session{
			Token:     uuid.NewString(),
			URL:       url,
			Sort:      reddit.DefaultSort,
			Limit:     reddit.DefaultLimit,
			CreatedAt: now,
		}
		_, err = s.db.ExecContext(ctx, `
INSERT INTO sessions (token, url, title, sort, lim, created_at, last_accessed)
VALUES (?, ?, '', ?, ?, ?, ?)`,
			sess.Token, sess.URL, sess.Sort, sess.Limit,
			now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	}
	if err != nil {
		return app.Session{}, fmt.Errorf("touch session: %w", err)
	}

	sess.LastAccessed = now
	if _, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET last_accessed = ? WHERE url = ?`,
		now.Format(time.RFC3339Nano), url); err != nil {
		return app.Session{}, fmt.Errorf("touch session: %w", err)
	}
	return sess, nil
}

// Update stores the title, sort, and limit a thread was last read with.
func (s *Sessions) Update(ctx context.Context, permalink, title, sort string, limit int) error {
	url := reddit.NormalizePermalink(permalink)
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET title = ?, sort = ?, lim = ? WHERE url = ?`,
		title, sort, limit, url)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Recent lists live sessions, most recently accessed first.
func (s *Sessions) Recent(ctx context.Context) ([]app.Session, error) {
	if err := s.prune(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT token, url, title, sort, lim, created_at, last_accessed
FROM sessions ORDER BY last_accessed DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []app.Session
	for rows.Next() {
		var sess app.Session
		var created, accessed string
		if err := rows.Scan(&sess.Token, &sess.URL, &sess.Title, &sess.Sort, &sess.Limit, &created, &accessed); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		sess.LastAccessed, _ = time.Parse(time.RFC3339Nano, accessed)
		out = append(out, sess)
	}
	return out, rows.Err()
}

func (s *Sessions) lookup(ctx context.Context, url string) (app.Session, error) {
	var sess app.Session
	var created, accessed string
	err := s.db.QueryRowContext(ctx, `
SELECT token, url, title, sort, lim, created_at, last_accessed
FROM sessions WHERE url = ?`, url).
		Scan(&sess.Token, &sess.URL, &sess.Title, &sess.Sort, &sess.Limit, &created, &accessed)
	if err != nil {
		return app.Session{}, err
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	sess.LastAccessed, _ = time.Parse(time.RFC3339Nano, accessed)
	return sess, nil
}

// prune drops sessions idle past the TTL, then the oldest-by-last-access
// past the cap.
func (s *Sessions) prune(ctx context.Context) error {
	cutoff := s.now().UTC().Add(-sessionTTL).Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE last_accessed < ?`, cutoff); err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
DELETE FROM sessions WHERE token NOT IN (
  SELECT token FROM sessions ORDER BY last_accessed DESC LIMIT ?
)`, maxSessions)
	if err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	return nil
}
