package comments

import (
	"sort"

	"github.com/arjenvk/threadbare/domain"
)

// Tuning constants for deep-reply promotion. The values are inherited
// as-is rather than re-derived.
const (
	promoteMinScore  = 5
	promoteMaxPicks  = 3
	promoteThreshold = 0.25 // Fraction of the best candidate's score
)

// PromotedPathIDs scans a root comment's subtree for well-scored replies
// buried past the depth budget and returns the ids on every path from a
// selected reply back to the root. Without this, a high-value deep reply
// is invisible until the user expands each ancestor by hand.
//
// At most promoteMaxPicks replies are selected, those scoring at least
// max(promoteMinScore, promoteThreshold * best candidate score). The
// result is empty when no out-of-budget reply reaches promoteMinScore.
// Ties inside the cutoff keep original traversal order (stable sort).
func PromotedPathIDs(root *domain.Comment, depthLimit int) map[string]bool {
	type nodeInfo struct {
		c      *domain.Comment
		parent *domain.Comment
		depth  int
	}

	var all []nodeInfo
	parents := make(map[string]*domain.Comment)
	var scan func(c, parent *domain.Comment, depth int)
	scan = func(c, parent *domain.Comment, depth int) {
		all = append(all, nodeInfo{c: c, parent: parent, depth: depth})
		parents[c.ID] = parent
		for i := range c.Replies {
			scan(&c.Replies[i], c, depth+1)
		}
	}
	scan(root, nil, 0)

	var candidates []nodeInfo
	maxScore := 0
	for _, n := range all {
		if n.depth <= depthLimit {
			continue
		}
		candidates = append(candidates, n)
		if s := n.c.ScoreOrZero(); s > maxScore {
			maxScore = s
		}
	}
	if maxScore < promoteMinScore {
		return nil
	}

	threshold := float64(maxScore) * promoteThreshold
	if threshold < promoteMinScore {
		threshold = promoteMinScore
	}
	picked := candidates[:0]
	for _, n := range candidates {
		if float64(n.c.ScoreOrZero()) >= threshold {
			picked = append(picked, n)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].c.ScoreOrZero() > picked[j].c.ScoreOrZero()
	})
	if len(picked) > promoteMaxPicks {
		picked = picked[:promoteMaxPicks]
	}

	ids := make(map[string]bool)
	for _, n := range picked {
		for c := n.c; c != nil; c = parents[c.ID] {
			ids[c.ID] = true
		}
	}
	return ids
}
