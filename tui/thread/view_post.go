package thread

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/tui/common"
)

// renderPost renders the post card above the comment list. The selftext
// goes through glamour.
func (m Model) renderPost() string {
	if m.post.Title == "" {
		if m.loading {
			return common.MetadataStyle.Render("  Loading thread...")
		}
		return common.MetadataStyle.Render("  " + m.permalink)
	}

	width := m.contentWidth()
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Width(width).Render(m.post.Title) + "\n")

	meta := common.AuthorStyle.Render("u/"+m.post.Author) + "  " +
		common.ScoreStyle.Render(fmt.Sprintf("%+d", m.post.Score))
	if m.post.Subreddit != "" {
		meta += "  " + common.MetadataStyle.Render("r/"+m.post.Subreddit)
	}
	if m.post.CreatedUTC > 0 {
		t := time.Unix(int64(m.post.CreatedUTC), 0).UTC()
		meta += "  " + common.TimestampStyle.Render(t.Format("Jan 02, 2006 15:04"))
	}
	b.WriteString(meta + "\n")

	if m.post.URL != "" && !strings.Contains(m.post.URL, m.post.Permalink) {
		b.WriteString(common.LinkStyle.Render(m.post.URL) + "\n")
	}

	if body := m.renderedSelftext(width); body != "" {
		b.WriteString(body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF8700")).
		Padding(0, 1).
		Width(width + 2).
		Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderedSelftext(width int) string {
	md := strings.TrimSpace(m.post.SelftextMD)
	if md == "" {
		if html := strings.TrimSpace(m.post.SelftextHTML); html != "" {
			return common.ContentStyle.Width(width).Render(comments.StripHTML(html))
		}
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return common.ContentStyle.Width(width).Render(md)
	}
	out, err := r.Render(md)
	if err != nil {
		return common.ContentStyle.Width(width).Render(md)
	}
	return compressBlankLines(out)
}

// compressBlankLines trims the excess vertical whitespace glamour adds.
func compressBlankLines(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var out []string
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m Model) postCardLines() int {
	return strings.Count(m.renderPost(), "\n") + 1
}
