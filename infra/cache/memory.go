// Package cache provides the in-memory response cache behind the
// app.CacheService boundary: TTL expiry on read, oldest-by-last-use
// eviction past a fixed entry cap, and a byte ceiling on what may be
// cached at all.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/arjenvk/threadbare/app"
)

const (
	// DefaultTTL is how long a cached listing stays servable.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxEntries caps how many listings are kept.
	DefaultMaxEntries = 10

	// DefaultMaxEntryBytes rejects oversized listings outright rather
	// than letting one thread evict everything else.
	DefaultMaxEntryBytes = 1 << 20
)

type entry struct {
	value    app.Listing
	expires  time.Time
	lastUsed time.Time
}

// Memory is a bounded in-memory CacheService. Safe for concurrent use;
// fetch commands run on their own goroutines.
type Memory struct {
	mu            sync.Mutex
	entries       map[string]*entry
	ttl           time.Duration
	maxEntries    int
	maxEntryBytes int
	now           func() time.Time
}

// NewMemory creates a cache with the repository defaults.
func NewMemory() *Memory {
	return &Memory{
		entries:       make(map[string]*entry),
		ttl:           DefaultTTL,
		maxEntries:    DefaultMaxEntries,
		maxEntryBytes: DefaultMaxEntryBytes,
		now:           time.Now,
	}
}

// Get returns the listing cached under key, expiring it first when its
// TTL has lapsed.
func (m *Memory) Get(_ context.Context, key string) (app.Listing, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return app.Listing{}, false
	}
	now := m.now()
	if now.After(e.expires) {
		delete(m.entries, key)
		return app.Listing{}, false
	}
	e.lastUsed = now
	return e.value, true
}

// Set stores a listing under key. Oversized or non-serializable values
// are rejected with a structured reason; the caller proceeds uncached.
func (m *Memory) Set(_ context.Context, key string, value app.Listing) app.SetResult {
	raw, err := json.Marshal(value)
	if err != nil {
		return app.SetResult{Reason: app.SetReasonNotSerialized}
	}
	if len(raw) > m.maxEntryBytes {
		return app.SetResult{Reason: app.SetReasonTooLarge, Bytes: len(raw)}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.entries[key] = &entry{
		value:    value,
		expires:  now.Add(m.ttl),
		lastUsed: now,
	}
	m.evictLocked()
	return app.SetResult{OK: true, Bytes: len(raw)}
}

// evictLocked drops expired entries, then the least recently used ones
// until the entry cap holds.
func (m *Memory) evictLocked() {
	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}
	for len(m.entries) > m.maxEntries {
		oldestKey := ""
		var oldest time.Time
		for k, e := range m.entries {
			if oldestKey == "" || e.lastUsed.Before(oldest) {
				oldestKey = k
				oldest = e.lastUsed
			}
		}
		delete(m.entries, oldestKey)
	}
}
