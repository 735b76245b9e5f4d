package thread

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjenvk/threadbare/infra/reddit"
)

func (m Model) handleLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		// Only the most recently initiated fetch may commit its result.
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		if msg.Key != reddit.CacheKey(m.permalink, m.sort, m.limit) {
			return m, nil
		}

		if msg.Preserve {
			m.captureTopAnchor()
		}

		m.post = msg.Listing.Post
		m.comments = msg.Listing.Comments
		m.loadedCount = msg.Listing.LoadedCount
		m.totalCount = msg.Listing.TotalCount
		m.hasMore = msg.Listing.HasMore
		m.fromCache = msg.FromCache
		m.cacheNote = msg.CacheNote
		m.loading = false
		m.loadingMore = false
		m.err = nil

		if msg.Preserve {
			m.restoreTopAnchor()
		} else {
			m.cursor = 0
			m.scrollLine = 0
		}
		m.ensureCursorVisible()
		return m, m.saveSession()

	case CommentsErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		if msg.Key != reddit.CacheKey(m.permalink, m.sort, m.limit) {
			return m, nil
		}
		m.loading = false
		m.loadingMore = false
		m.err = msg.Err
		if !msg.Preserve {
			// A failed initial load leaves nothing to show; a failed
			// continuation keeps the comments already on screen.
			m.comments = nil
			m.loadedCount = 0
			m.hasMore = false
			m.cursor = 0
			m.scrollLine = 0
		}
		return m, nil
	}

	return m, nil
}
