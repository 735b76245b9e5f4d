package reddit

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/domain"
)

// threadService implements app.ThreadService against the public JSON
// listing endpoint.
type threadService struct {
	client *Client
	group  singleflight.Group
}

// NewThreadService creates a ThreadService backed by the listing client.
// Identical concurrent fetches (same thread, sort, limit) are coalesced
// into one network request.
func NewThreadService(client *Client) *threadService {
	return &threadService{client: client}
}

func (s *threadService) FetchThread(ctx context.Context, permalink, sort string, limit int) (app.Listing, error) {
	if strings.TrimSpace(permalink) == "" {
		return app.Listing{}, domain.ErrNoPermalink
	}

	// The shared request runs detached from any one caller. Coalesced
	// callers would otherwise inherit the first caller's cancellation:
	// a superseded fetch dying must not take a live successor with it.
	// Each caller observes only its own context, via the select below.
	key := CacheKey(permalink, sort, limit)
	ch := s.group.DoChan(key, func() (any, error) {
		data, err := s.client.Get(context.WithoutCancel(ctx), ListingPath(permalink, sort, limit))
		if err != nil {
			return app.Listing{}, fmt.Errorf("fetching listing: %w", err)
		}
		return ParseThreadResponse(data)
	})

	select {
	case <-ctx.Done():
		return app.Listing{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return app.Listing{}, res.Err
		}
		return res.Val.(app.Listing), nil
	}
}
