package app

import (
	"context"
	"time"
)

// Session records one recently viewed thread and the settings it was
// last read with.
type Session struct {
	Token        string
	URL          string // Thread permalink path
	Title        string
	Sort         string
	Limit        int
	CreatedAt    time.Time
	LastAccessed time.Time
}

// SessionStore persists recently viewed threads. Implementations apply
// TTL expiry and oldest-by-last-access eviction on every touch; storage
// failures are soft and must not block thread loading.
type SessionStore interface {
	// Touch returns the session for a permalink, creating it if absent,
	// and refreshes its last-accessed time.
	Touch(ctx context.Context, permalink string) (Session, error)

	// Update stores the title and settings a thread was last read with.
	Update(ctx context.Context, permalink, title, sort string, limit int) error

	// Recent lists live sessions, most recently accessed first.
	Recent(ctx context.Context) ([]Session, error)

	Close() error
}
