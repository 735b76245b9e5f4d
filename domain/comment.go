package domain

// UnknownAuthor is shown when the source omits a comment's author.
const UnknownAuthor = "[unknown]"

// Comment represents one comment and its reply subtree.
type Comment struct {
	ID           string
	Author       string
	BodyMarkdown string // Raw markdown form, may be empty
	BodyHTML     string // Markup form; derived from markdown when absent upstream
	Score        *int   // nil when the source hides or omits it
	CreatedUTC   float64
	Replies      []Comment // API order; empty for leaves
}

// ScoreOrZero returns the comment's score, treating a hidden score as 0.
func (c Comment) ScoreOrZero() int {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

// CountNodes returns the number of materialized nodes in the subtree,
// including the comment itself.
func (c Comment) CountNodes() int {
	n := 1
	for i := range c.Replies {
		n += c.Replies[i].CountNodes()
	}
	return n
}
