package reddit

import (
	"fmt"
	"html"

	"github.com/goccy/go-json"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/domain"
)

// Listing wrapper kinds. "t1" carries a comment, "t3" a post, "more" is
// a placeholder marking unfetched replies at that position.
const (
	kindComment     = "t1"
	kindPost        = "t3"
	kindPlaceholder = "more"
)

type wrapper struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listingData struct {
	Children []wrapper `json:"children"`
}

type commentData struct {
	ID          string          `json:"id"`
	Author      string          `json:"author"`
	Body        string          `json:"body"`
	BodyHTML    string          `json:"body_html"`
	Score       *int            `json:"score"`
	ScoreHidden bool            `json:"score_hidden"`
	CreatedUTC  float64         `json:"created_utc"`
	Replies     json.RawMessage `json:"replies"` // Listing object, or "" when empty
}

type postData struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	Permalink    string  `json:"permalink"`
	URL          string  `json:"url"`
	Selftext     string  `json:"selftext"`
	SelftextHTML string  `json:"selftext_html"`
	Score        int     `json:"score"`
	NumComments  int     `json:"num_comments"`
	CreatedUTC   float64 `json:"created_utc"`
	Subreddit    string  `json:"subreddit"`
}

// ParseThreadResponse decodes the two-element thread response: element 0
// is a listing whose first child is the post, element 1 a listing whose
// children are comment and placeholder wrappers.
func ParseThreadResponse(data []byte) (app.Listing, error) {
	var elems []struct {
		Data listingData `json:"data"`
	}
	if err := json.Unmarshal(data, &elems); err != nil {
		return app.Listing{}, fmt.Errorf("parsing thread response: %w", err)
	}
	if len(elems) < 2 {
		return app.Listing{}, fmt.Errorf("parsing thread response: expected 2 listings, got %d", len(elems))
	}

	var out app.Listing
	if len(elems[0].Data.Children) > 0 {
		post, err := parsePost(elems[0].Data.Children[0])
		if err != nil {
			return app.Listing{}, err
		}
		out.Post = post
		out.TotalCount = post.CommentCount
	}

	out.Comments, out.LoadedCount, out.HasMore = parseListing(elems[1].Data.Children)
	return out, nil
}

func parsePost(w wrapper) (domain.Post, error) {
	if w.Kind != kindPost || len(w.Data) == 0 {
		return domain.Post{}, fmt.Errorf("parsing post: unexpected kind %q", w.Kind)
	}
	var d postData
	if err := json.Unmarshal(w.Data, &d); err != nil {
		return domain.Post{}, fmt.Errorf("parsing post: %w", err)
	}
	author := d.Author
	if author == "" {
		author = domain.UnknownAuthor
	}
	return domain.Post{
		ID:           d.ID,
		Title:        d.Title,
		Author:       author,
		Permalink:    d.Permalink,
		URL:          d.URL,
		SelftextMD:   d.Selftext,
		SelftextHTML: d.SelftextHTML,
		Score:        d.Score,
		CommentCount: d.NumComments,
		CreatedUTC:   d.CreatedUTC,
		Subreddit:    d.Subreddit,
	}, nil
}

// parseListing turns an ordered sequence of wrapper records into a
// comment forest. Placeholder entries set hasMore and contribute no
// nodes, at any nesting depth; malformed or unrecognized entries are
// skipped. loadedCount is the number of nodes materialized across the
// forest, computed by a full traversal after parsing. Pure function
// over the input.
func parseListing(children []wrapper) (out []domain.Comment, loadedCount int, hasMore bool) {
	for _, w := range children {
		switch w.Kind {
		case kindPlaceholder:
			hasMore = true
		case kindComment:
			c, more := parseNode(w, FetchDepth)
			if c != nil {
				out = append(out, *c)
			}
			hasMore = hasMore || more
		}
	}
	for i := range out {
		loadedCount += out[i].CountNodes()
	}
	return out, loadedCount, hasMore
}

// parseNode parses one comment wrapper, recursing into replies until
// remainingDepth runs out. Returns a nil node only when the wrapper
// carries no data payload at all; missing fields degrade to sentinel
// defaults. hasMore reports a placeholder anywhere in the subtree.
func parseNode(w wrapper, remainingDepth int) (*domain.Comment, bool) {
	if len(w.Data) == 0 || string(w.Data) == "null" {
		return nil, false
	}
	var d commentData
	if err := json.Unmarshal(w.Data, &d); err != nil {
		return nil, false
	}

	c := &domain.Comment{
		ID:           d.ID,
		Author:       d.Author,
		BodyMarkdown: d.Body,
		BodyHTML:     d.BodyHTML,
		CreatedUTC:   d.CreatedUTC,
	}
	if c.Author == "" {
		c.Author = domain.UnknownAuthor
	}
	if !d.ScoreHidden {
		c.Score = d.Score
	}
	if c.BodyHTML == "" && c.BodyMarkdown != "" {
		// Escaped so raw markdown never round-trips as markup.
		c.BodyHTML = "<pre>" + html.EscapeString(c.BodyMarkdown) + "</pre>"
	}

	var more bool
	if remainingDepth > 0 {
		c.Replies, more = parseReplies(d.Replies, remainingDepth-1)
	}
	return c, more
}

func parseReplies(raw json.RawMessage, remainingDepth int) ([]domain.Comment, bool) {
	// The API encodes "no replies" as an empty string, not an object.
	if len(raw) == 0 || string(raw) == `""` || string(raw) == "null" {
		return nil, false
	}
	var listing struct {
		Data listingData `json:"data"`
	}
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, false
	}
	var out []domain.Comment
	var hasMore bool
	for _, w := range listing.Data.Children {
		switch w.Kind {
		case kindPlaceholder:
			hasMore = true
		case kindComment:
			c, more := parseNode(w, remainingDepth)
			if c != nil {
				out = append(out, *c)
			}
			hasMore = hasMore || more
		}
	}
	return out, hasMore
}
