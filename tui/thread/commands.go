package thread

import (
	"context"
	"errors"
	"net/url"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/infra/reddit"
)

// startLoad begins a fetch for the model's current permalink, sort, and
// limit. It cancels any in-flight fetch, bumps the sequence counter so
// stale resolutions are discarded, and clears the per-node UI state.
// The clear happens on fetch start, not on success.
func (m Model) startLoad(preserve bool) (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.reqSeq++
	m.nodes.Reset()
	m.err = nil
	m.status = ""
	m.cacheNote = ""
	if preserve {
		m.loadingMore = true
	} else {
		m.loading = true
		m.comments = nil
		m.loadedCount = 0
		m.hasMore = false
		m.cursor = 0
		m.scrollLine = 0
	}

	return m, m.fetchComments(ctx, m.reqSeq, preserve)
}

// fetchComments is the listing fetch command. The cache is consulted
// before the network; a cache-set rejection is carried as a note, never
// as a failure. A cancelled fetch produces no message at all.
func (m Model) fetchComments(ctx context.Context, reqSeq int, preserve bool) tea.Cmd {
	threads := m.threads
	cache := m.cache
	permalink := m.permalink
	sort := m.sort
	limit := m.limit
	key := reddit.CacheKey(permalink, sort, limit)

	return func() tea.Msg {
		if cached, ok := cache.Get(ctx, key); ok {
			return CommentsLoadedMsg{
				Listing:   cached,
				Key:       key,
				ReqSeq:    reqSeq,
				FromCache: true,
				Preserve:  preserve,
			}
		}

		listing, err := threads.FetchThread(ctx, permalink, sort, limit)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return CommentsErrorMsg{Err: err, Key: key, ReqSeq: reqSeq, Preserve: preserve}
		}

		note := ""
		if res := cache.Set(ctx, key, listing); !res.OK {
			note = res.Reason
		}
		return CommentsLoadedMsg{
			Listing:   listing,
			Key:       key,
			ReqSeq:    reqSeq,
			Preserve:  preserve,
			CacheNote: note,
		}
	}
}

// saveSession records the thread and its current settings in the
// session store. Storage failures are soft.
func (m Model) saveSession() tea.Cmd {
	if m.sessions == nil {
		return nil
	}
	sessions := m.sessions
	permalink := m.permalink
	title := m.post.Title
	sort := m.sort
	limit := m.limit
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := sessions.Touch(ctx, permalink); err != nil {
			return SessionSavedMsg{Err: err}
		}
		return SessionSavedMsg{Err: sessions.Update(ctx, permalink, title, sort, limit)}
	}
}

// savePrefs persists the display settings.
func (m Model) savePrefs() tea.Cmd {
	save := m.prefs
	settings := m.settings
	exportComments := m.exportComments
	return func() tea.Msg {
		return PrefsSavedMsg{Err: save(settings, exportComments)}
	}
}

// copyMarkdown exports the post and visible comment tree as markdown
// and places it on the clipboard.
func (m Model) copyMarkdown() tea.Cmd {
	md := comments.Markdown(m.post, m.comments, m.settings, m.nodes, m.exportComments)
	return func() tea.Msg {
		return MarkdownCopiedMsg{Err: clipboard.WriteAll(md)}
	}
}

// threadURL is the thread's address on the origin site.
func (m Model) threadURL() string {
	return m.origin + reddit.NormalizePermalink(m.permalink)
}

func openURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !isSafeExternalURL(rawURL) {
			return nil
		}
		_ = exec.Command("open", rawURL).Start()
		return nil
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
