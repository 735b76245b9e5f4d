package domain

// Post represents the submission a comment thread hangs off.
type Post struct {
	ID           string
	Title        string
	Author       string
	Permalink    string // Path form, e.g. /r/golang/comments/abc123/title/
	URL          string // Outbound link for link posts; empty for self posts
	SelftextMD   string
	SelftextHTML string
	Score        int
	CommentCount int // Server-reported total, may exceed what a fetch returns
	CreatedUTC   float64
	Subreddit    string
}
