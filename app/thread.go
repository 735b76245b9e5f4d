package app

import (
	"context"

	"github.com/arjenvk/threadbare/domain"
)

// Listing is one fetched snapshot of a thread: the post plus as much of
// the comment forest as the requested limit allowed.
type Listing struct {
	Post        domain.Post
	Comments    []domain.Comment
	LoadedCount int  // Nodes materialized across the forest
	HasMore     bool // Server reported truncated replies
	TotalCount  int  // Server-side comment total; 0 when unknown
}

// ThreadService fetches a discussion thread from its origin site.
type ThreadService interface {
	// FetchThread returns the post and comment tree at a permalink,
	// parameterized by sort order and the (already snapped) result limit.
	FetchThread(ctx context.Context, permalink, sort string, limit int) (Listing, error)
}
