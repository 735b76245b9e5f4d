package comments

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arjenvk/threadbare/domain"
)

// SnippetWidth is the display-cell budget for a collapsed comment's
// one-line preview.
const SnippetWidth = 90

var gifMarkdownRe = regexp.MustCompile(`!\[gif\]\([^)]*\)`)

// Snippet builds the one-line preview a collapsed comment shows in place
// of its body: HTML stripped, GIF markdown replaced with a literal tag,
// whitespace collapsed, truncated to SnippetWidth cells with an ellipsis.
func Snippet(c *domain.Comment) string {
	text := c.BodyMarkdown
	if strings.TrimSpace(text) == "" {
		text = StripHTML(c.BodyHTML)
	}
	text = gifMarkdownRe.ReplaceAllString(text, "[gif]")
	text = strings.Join(strings.Fields(text), " ")
	if runewidth.StringWidth(text) <= SnippetWidth {
		return text
	}
	return runewidth.Truncate(text, SnippetWidth, "…")
}
