package app

import "context"

// Cache-set rejection reasons.
const (
	SetReasonTooLarge      = "too_large"
	SetReasonNotSerialized = "not_serializable"
)

// SetResult reports the outcome of a cache write. Rejections are soft:
// the caller logs the reason and proceeds with the uncached response.
type SetResult struct {
	OK     bool
	Reason string // Populated when OK is false
	Bytes  int    // Serialized size, when known
}

// CacheService is the response cache boundary. Keys are normalized
// (thread, sort, limit) tuples; values are whole listing snapshots.
type CacheService interface {
	Get(ctx context.Context, key string) (Listing, bool)
	Set(ctx context.Context, key string, value Listing) SetResult
}
