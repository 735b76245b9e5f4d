package thread

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/domain"
	"github.com/arjenvk/threadbare/infra/reddit"
	"github.com/arjenvk/threadbare/tui/common"
)

const maxContentWidth = 100

// View renders the thread: post header, status region, the visible
// comment cards, and the footer.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("threadbare")
	tagline := common.TaglineStyle.Render("<one thread at a time>")
	b.WriteString(title + tagline + "\n\n")

	b.WriteString(m.renderPost() + "\n")
	b.WriteString(m.renderStatus() + "\n")

	rows := m.rows()
	if len(rows) > 0 {
		viewport := m.renderCommentViewport(rows)
		b.WriteString(viewport + "\n")
	}

	if footer := m.renderFooter(); footer != "" {
		b.WriteString(footer + "\n")
	}
	b.WriteString(m.helpView())

	return b.String()
}

// renderStatus produces the single status region: loading, a success
// count summary, an informational note, or a retryable error.
func (m Model) renderStatus() string {
	switch {
	case m.loading:
		return m.spinner.View() + " Loading comments..."
	case errors.Is(m.err, domain.ErrNoPermalink):
		// Not a failure: there is nothing to fetch, so no retry hint.
		return common.MetadataStyle.Render("No comments section for this content.")
	case errors.Is(m.err, domain.ErrNotFound):
		return common.ErrorStyle.Render("Thread not found on " + m.origin + ".")
	case m.err != nil:
		return common.ErrorStyle.Render("Could not load comments: "+m.err.Error()) +
			common.MetadataStyle.Render("  (r to retry)")
	case len(m.comments) == 0:
		return common.MetadataStyle.Render("No comments yet.")
	}

	var s string
	if m.totalCount > 0 {
		s = fmt.Sprintf("Showing %d of %d comments", m.loadedCount, m.totalCount)
	} else {
		s = fmt.Sprintf("Showing %d comments", m.loadedCount)
	}
	if m.fromCache {
		s += " (cached)"
	}
	out := common.SuccessStyle.Render(s)
	if m.cacheNote != "" {
		out += common.MetadataStyle.Render("  [not cached: " + m.cacheNote + "]")
	}
	if m.status != "" {
		out += "\n" + common.MetadataStyle.Render(m.status)
	}
	return out
}

func (m Model) renderCommentViewport(rows []row) string {
	var lines []string
	for i, r := range rows {
		rendered := m.renderRow(r, i == m.cursor)
		lines = append(lines, strings.Split(rendered, "\n")...)
		lines = append(lines, "")
	}

	top := m.scrollLine
	if top < 0 {
		top = 0
	}
	if top >= len(lines) {
		top = 0
	}
	bottom := top + m.commentViewportHeight()
	if bottom > len(lines) {
		bottom = len(lines)
	}
	return strings.Join(m.clipLines(lines[top:bottom]), "\n")
}

// clipLines hard-clips styled lines to the terminal width. Styled text
// that wraps would break the scroll line math.
func (m Model) clipLines(lines []string) []string {
	if m.width <= 0 {
		return lines
	}
	for i, ln := range lines {
		if ansi.StringWidth(ln) > m.width {
			lines[i] = ansi.Cut(ln, 0, m.width)
		}
	}
	return lines
}

// renderRow renders one comment card. Selection only changes colors,
// never the line count, so scroll math can reuse the unselected form.
func (m Model) renderRow(r row, selected bool) string {
	c := r.comment
	indent := r.depth * 2
	width := m.contentWidth() - indent
	if width < 30 {
		width = 30
	}

	marker := "▾"
	if r.collapsed {
		marker = "▸"
	}
	author := common.AuthorStyle.Render("u/" + c.Author)
	if selected {
		marker = common.SelectedStyle.Render(marker)
		author = common.SelectedStyle.Render("u/" + c.Author)
	}

	meta := ""
	if c.Score != nil {
		meta += common.ScoreStyle.Render(fmt.Sprintf("%+d", *c.Score)) + " "
	}
	if c.CreatedUTC > 0 {
		t := time.Unix(int64(c.CreatedUTC), 0).UTC()
		meta += common.TimestampStyle.Render(t.Format("Jan 02 15:04"))
	}

	var body string
	if r.collapsed {
		body = common.CollapsedStyle.Render(comments.Snippet(c))
	} else {
		text := c.BodyMarkdown
		if strings.TrimSpace(text) == "" {
			text = comments.StripHTML(c.BodyHTML)
		}
		body = common.ContentStyle.Width(width).Render(strings.TrimSpace(text))
	}

	card := marker + " " + author + "  " + meta + "\n" + body

	if hints := m.rowHints(r); hints != "" && !r.collapsed {
		card += "\n" + hints
	}

	return lipgloss.NewStyle().MarginLeft(indent).Render(card)
}

// rowHints renders the zero, one, or two expansion affordances under a
// card whose children are partially hidden.
func (m Model) rowHints(r row) string {
	var parts []string
	if m.nodes.ExpandedMore[r.comment.ID] {
		parts = append(parts, common.AffordanceStyle.Render("↩ hide deeper replies (x)"))
	} else if r.sel.HiddenDepth > 0 && !r.unlimited {
		parts = append(parts, common.AffordanceStyle.Render(
			fmt.Sprintf("↪ show %d more replies (x)", r.sel.HiddenDepth)))
	}
	if r.sel.HiddenLowScore > 0 {
		parts = append(parts, common.AffordanceStyle.Render(
			fmt.Sprintf("↓ show %d low-score replies (z)", r.sel.HiddenLowScore)))
	} else if m.nodes.ExpandedLowScore[r.comment.ID] {
		parts = append(parts, common.AffordanceStyle.Render("↓ hide low-score replies (z)"))
	}
	return strings.Join(parts, "   ")
}

// renderFooter shows the incremental-loading control: hidden, enabled,
// loading, or the terminal outbound link once the limit is maxed out.
func (m Model) renderFooter() string {
	switch {
	case m.loadingMore:
		return m.spinner.View() + common.MetadataStyle.Render(" Loading more comments...")
	case m.atTerminalLimit():
		return common.LinkStyle.Render("See the rest on "+m.origin) +
			common.MetadataStyle.Render("  (o to open)")
	case m.canLoadMore():
		return common.AffordanceStyle.Render(
			fmt.Sprintf("Load more comments (m, next limit %d)", reddit.NextLimit(m.limit)))
	}
	return ""
}

func (m Model) helpView() string {
	settings := fmt.Sprintf("depth %d · hide-low %s · auto-depth %s · sort %s · limit %d",
		m.settings.DepthLimit, onOff(m.settings.HideLowScore), onOff(m.settings.AutoDepth), m.sort, m.limit)
	keys := "↑/↓ move · space collapse · x/z expand · +/- depth · s/a toggles · S sort · m more · y copy · o open · r refresh · esc back · q quit"
	return common.StatusBarStyle.Render(settings + "\n" + keys)
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

func (m Model) commentViewportHeight() int {
	// Title, post card, status, footer, and help all live outside the
	// comment viewport.
	h := m.height - m.postCardLines() - 12
	if h < 6 {
		h = 6
	}
	return h
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
