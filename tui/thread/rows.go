package thread

import (
	"strings"

	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/domain"
)

// row is one flattened visible comment, in walk order. Affordance hints
// ("show N more replies") render inside the row's card rather than as
// separate rows.
type row struct {
	comment   *domain.Comment
	depth     int
	sel       comments.Selection
	collapsed bool
	unlimited bool
}

// rows flattens the visible node set. Both the view and the cursor
// logic derive from this; the markdown export walks the same set via
// comments.Walk, so the two cannot diverge.
func (m Model) rows() []row {
	var out []row
	comments.Walk(m.comments, m.settings, m.nodes, func(c *domain.Comment, depth int, sel comments.Selection, collapsed, unlimited bool) {
		out = append(out, row{
			comment:   c,
			depth:     depth,
			sel:       sel,
			collapsed: collapsed,
			unlimited: unlimited,
		})
	})
	return out
}

func (m Model) selectedRow() (row, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// rowSpan records where a row's rendered card sits in the scrollable
// line space.
type rowSpan struct {
	idx    int
	top    int
	bottom int
}

func (m Model) rowSpans(rows []row) []rowSpan {
	spans := make([]rowSpan, 0, len(rows))
	line := 0
	for i := range rows {
		lines := m.rowRenderedLines(rows[i])
		spans = append(spans, rowSpan{idx: i, top: line, bottom: line + lines - 1})
		line += lines + 1 // spacer between cards
	}
	return spans
}

func (m Model) rowRenderedLines(r row) int {
	rendered := m.renderRow(r, false)
	return strings.Count(rendered, "\n") + 1
}

// ensureCursorVisible clamps the cursor into the current row set and
// scrolls the viewport so its card is fully on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.rows()
	if len(rows) == 0 {
		m.cursor = 0
		m.scrollLine = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}

	spans := m.rowSpans(rows)
	viewHeight := m.commentViewportHeight()
	span := spans[m.cursor]
	if span.top < m.scrollLine {
		m.scrollLine = span.top
	}
	if span.bottom >= m.scrollLine+viewHeight {
		m.scrollLine = span.bottom - viewHeight + 1
	}
	maxScroll := spans[len(spans)-1].bottom - viewHeight + 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollLine > maxScroll {
		m.scrollLine = maxScroll
	}
	if m.scrollLine < 0 {
		m.scrollLine = 0
	}
}

// captureTopAnchor records the first comment still on screen and its
// offset from the viewport top, so a load-more re-render can put the
// reader back where they were.
func (m *Model) captureTopAnchor() {
	m.hasAnchor = false
	rows := m.rows()
	if len(rows) == 0 {
		return
	}
	spans := m.rowSpans(rows)
	for _, s := range spans {
		if s.bottom >= m.scrollLine {
			m.anchorID = rows[s.idx].comment.ID
			m.anchorOffset = s.top - m.scrollLine
			m.hasAnchor = true
			return
		}
	}
}

// restoreTopAnchor scrolls so the anchored comment sits at its old
// viewport offset. A vanished anchor is tolerated as a no-op.
func (m *Model) restoreTopAnchor() {
	if !m.hasAnchor {
		return
	}
	m.hasAnchor = false
	rows := m.rows()
	spans := m.rowSpans(rows)
	for _, s := range spans {
		if rows[s.idx].comment.ID == m.anchorID {
			m.scrollLine = s.top - m.anchorOffset
			if m.scrollLine < 0 {
				m.scrollLine = 0
			}
			m.cursor = s.idx
			return
		}
	}
}
