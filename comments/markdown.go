package comments

import (
	"fmt"
	"strings"

	"github.com/arjenvk/threadbare/domain"
)

// Markdown renders the post and, when includeComments is set, the visible
// comment tree as a plain markdown document. The comment traversal routes
// through Walk, so the exported node set is exactly the rendered one.
func Markdown(post domain.Post, roots []domain.Comment, s Settings, st NodeState, includeComments bool) string {
	var b strings.Builder

	b.WriteString("# " + strings.TrimSpace(post.Title) + "\n\n")
	author := post.Author
	if author == "" {
		author = domain.UnknownAuthor
	}
	fmt.Fprintf(&b, "**u/%s**", author)
	if post.Subreddit != "" {
		fmt.Fprintf(&b, " in r/%s", post.Subreddit)
	}
	b.WriteString("\n\n")
	if post.URL != "" {
		b.WriteString(post.URL + "\n\n")
	}
	if body := postBody(post); body != "" {
		b.WriteString(body + "\n\n")
	}

	if !includeComments {
		return b.String()
	}

	b.WriteString("## Comments\n\n")
	Walk(roots, s, st, func(c *domain.Comment, depth int, _ Selection, collapsed, _ bool) {
		indent := strings.Repeat("  ", depth)
		author := c.Author
		if author == "" {
			author = domain.UnknownAuthor
		}
		var body string
		if collapsed {
			body = Snippet(c)
		} else {
			body = commentBody(c)
		}
		// Keep multi-line bodies inside one list item.
		body = strings.ReplaceAll(body, "\n", "\n"+indent+"  ")
		fmt.Fprintf(&b, "%s- **u/%s**: %s\n", indent, author, body)
	})
	return b.String()
}

func postBody(p domain.Post) string {
	if strings.TrimSpace(p.SelftextMD) != "" {
		return strings.TrimSpace(p.SelftextMD)
	}
	return strings.TrimSpace(StripHTML(p.SelftextHTML))
}

func commentBody(c *domain.Comment) string {
	if strings.TrimSpace(c.BodyMarkdown) != "" {
		return strings.TrimSpace(c.BodyMarkdown)
	}
	return strings.TrimSpace(StripHTML(c.BodyHTML))
}
