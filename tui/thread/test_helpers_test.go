package thread

import (
	"context"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/domain"
	"github.com/arjenvk/threadbare/infra/reddit"
)

type stubThreads struct {
	listing app.Listing
	err     error
	calls   int
}

func (s *stubThreads) FetchThread(context.Context, string, string, int) (app.Listing, error) {
	s.calls++
	return s.listing, s.err
}

type stubCache struct {
	entries map[string]app.Listing
	sets    []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]app.Listing)}
}

func (c *stubCache) Get(_ context.Context, key string) (app.Listing, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *stubCache) Set(_ context.Context, key string, value app.Listing) app.SetResult {
	c.entries[key] = value
	c.sets = append(c.sets, key)
	return app.SetResult{OK: true}
}

type stubSessions struct {
	touched []string
	updated []string
}

func (s *stubSessions) Touch(_ context.Context, permalink string) (app.Session, error) {
	s.touched = append(s.touched, permalink)
	return app.Session{URL: permalink}, nil
}

func (s *stubSessions) Update(_ context.Context, permalink, _, _ string, _ int) error {
	s.updated = append(s.updated, permalink)
	return nil
}

func (s *stubSessions) Recent(context.Context) ([]app.Session, error) { return nil, nil }
func (s *stubSessions) Close() error                                  { return nil }

func score(n int) *int { return &n }

func makeComment(id string, s int, replies ...domain.Comment) domain.Comment {
	return domain.Comment{
		ID:           id,
		Author:       "user-" + id,
		BodyMarkdown: "body " + id,
		BodyHTML:     "<p>body " + id + "</p>",
		Score:        score(s),
		Replies:      replies,
	}
}

func makeListing(roots ...domain.Comment) app.Listing {
	total := 0
	for i := range roots {
		total += roots[i].CountNodes()
	}
	return app.Listing{
		Post:        domain.Post{ID: "p1", Title: "A thread", Author: "op", Subreddit: "golang"},
		Comments:    roots,
		LoadedCount: total,
		TotalCount:  total,
	}
}

const testPermalink = "/r/golang/comments/abc/title"

func newTestModel(threads app.ThreadService) Model {
	m := New(Deps{
		Threads:  threads,
		Cache:    newStubCache(),
		Sessions: &stubSessions{},
		Origin:   "https://www.reddit.com",
	}, testPermalink, "best", 100, comments.Settings{DepthLimit: 2, HideLowScore: true}, true)
	m.width = 100
	m.height = 40
	return m
}

// loadedTestModel returns a model that already holds the given listing,
// as if an initial fetch had committed it.
func loadedTestModel(listing app.Listing) Model {
	m := newTestModel(&stubThreads{listing: listing})
	m, _ = m.startLoad(false)
	m, _ = m.handleLoadingMsg(CommentsLoadedMsg{
		Listing: listing,
		Key:     currentKey(m),
		ReqSeq:  m.reqSeq,
	})
	return m
}

func currentKey(m Model) string {
	return reddit.CacheKey(m.permalink, m.sort, m.limit)
}
