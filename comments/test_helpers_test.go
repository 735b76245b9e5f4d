package comments

import (
	"strconv"

	"github.com/arjenvk/threadbare/domain"
)

func score(n int) *int { return &n }

func makeComment(id string, s int, replies ...domain.Comment) domain.Comment {
	return domain.Comment{
		ID:           id,
		Author:       "user-" + id,
		BodyMarkdown: "body " + id,
		BodyHTML:     "<p>body " + id + "</p>",
		Score:        score(s),
		Replies:      replies,
	}
}

// chain builds a single root with one reply per level, ids "n0".."nK",
// all carrying the given score.
func chain(depthCount, s int) domain.Comment {
	c := makeComment("n"+strconv.Itoa(depthCount-1), s)
	for i := depthCount - 2; i >= 0; i-- {
		c = makeComment("n"+strconv.Itoa(i), s, c)
	}
	return c
}
