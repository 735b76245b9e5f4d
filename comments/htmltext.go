package comments

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces untrusted markup to its text content. Block-level
// closings become newlines so paragraphs stay separated in the terminal.
// Good enough for display; not a security boundary.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	tok := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(tok.Text())
		case html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			switch string(name) {
			case "p", "br", "li", "div", "blockquote", "pre":
				b.WriteByte('\n')
			}
		}
	}
}
