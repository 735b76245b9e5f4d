package thread

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjenvk/threadbare/infra/reddit"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, keys.Refresh):
		// Retry after an error, or re-fetch fresh data.
		return m.startLoad(false)

	case key.Matches(msg, keys.LoadMore):
		if !m.canLoadMore() {
			return m, nil
		}
		m.limit = reddit.NextLimit(m.limit)
		return m.startLoad(true)

	case key.Matches(msg, keys.Collapse):
		if r, ok := m.selectedRow(); ok {
			toggle(m.nodes.Collapsed, r.comment.ID)
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, keys.ExpandMore):
		if r, ok := m.selectedRow(); ok {
			if r.sel.HiddenDepth > 0 || m.nodes.ExpandedMore[r.comment.ID] {
				toggle(m.nodes.ExpandedMore, r.comment.ID)
				m.ensureCursorVisible()
			}
		}
		return m, nil

	case key.Matches(msg, keys.ExpandLow):
		if r, ok := m.selectedRow(); ok {
			if r.sel.HiddenLowScore > 0 || m.nodes.ExpandedLowScore[r.comment.ID] {
				toggle(m.nodes.ExpandedLowScore, r.comment.ID)
				m.ensureCursorVisible()
			}
		}
		return m, nil

	case key.Matches(msg, keys.DepthUp):
		m.settings.DepthLimit++
		m.ensureCursorVisible()
		return m, m.savePrefs()

	case key.Matches(msg, keys.DepthDown):
		if m.settings.DepthLimit > 0 {
			m.settings.DepthLimit--
		}
		m.ensureCursorVisible()
		return m, m.savePrefs()

	case key.Matches(msg, keys.ToggleLow):
		m.settings.HideLowScore = !m.settings.HideLowScore
		m.ensureCursorVisible()
		return m, m.savePrefs()

	case key.Matches(msg, keys.ToggleAuto):
		m.settings.AutoDepth = !m.settings.AutoDepth
		m.ensureCursorVisible()
		return m, m.savePrefs()

	case key.Matches(msg, keys.CycleSort):
		// Sort changes the fetched data, never just the rendering.
		m.sort = nextSort(m.sort)
		return m.startLoad(false)

	case key.Matches(msg, keys.CopyMarkdown):
		if len(m.comments) == 0 && m.post.Title == "" {
			return m, nil
		}
		return m, m.copyMarkdown()

	case key.Matches(msg, keys.OpenInBrowser):
		return m, openURL(m.threadURL())
	}

	return m, nil
}

// canLoadMore reports whether the footer offers the "load more" action:
// comments present, the server holds more than we show, and the limit
// has further allowed steps.
func (m Model) canLoadMore() bool {
	if m.loading || m.loadingMore || len(m.comments) == 0 {
		return false
	}
	if m.limit >= reddit.MaxLimit() {
		return false
	}
	return m.moreAvailable()
}

// moreAvailable reports whether the server holds comments beyond the
// loaded set.
func (m Model) moreAvailable() bool {
	return m.hasMore || (m.totalCount > 0 && m.totalCount > m.loadedCount)
}

// atTerminalLimit reports the display-only terminal state: the limit is
// maxed out and the remainder is only viewable on the origin site.
func (m Model) atTerminalLimit() bool {
	return len(m.comments) > 0 && m.limit >= reddit.MaxLimit() && m.moreAvailable()
}

func nextSort(cur string) string {
	for i, s := range SortOrders {
		if s == cur {
			return SortOrders[(i+1)%len(SortOrders)]
		}
	}
	return SortOrders[0]
}

func toggle(set map[string]bool, id string) {
	if set[id] {
		delete(set, id)
	} else {
		set[id] = true
	}
}
