package domain

import "errors"

var (
	// ErrNoPermalink indicates the thread has no permalink and its comments
	// are not fetchable. Informational, not a transport failure.
	ErrNoPermalink = errors.New("thread has no permalink")

	// ErrNotFound indicates the origin site reported the thread missing.
	ErrNotFound = errors.New("thread not found")
)
