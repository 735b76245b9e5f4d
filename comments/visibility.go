// Package comments holds the pure comment-tree policies: which nodes are
// visible under a depth budget and which deep replies get promoted past
// it, plus the shared visible-walk that the screen render and the
// markdown export both route through.
package comments

import "github.com/arjenvk/threadbare/domain"

// LowScoreThreshold is the score at or below which a reply is hidden
// when low-score hiding is on.
const LowScoreThreshold = -3

// Selection is the visibility verdict for one node's children.
type Selection struct {
	Visible        []int // Indices into the children slice, API order
	HiddenDepth    int   // Excluded by the depth budget
	HiddenLowScore int   // Excluded by the low-score rule
}

// SelectVisibleChildren decides which children of a node are shown.
//
// The low-score check takes precedence over depth: a reply scoring at or
// below LowScoreThreshold is hidden whenever hideLow is set and the parent
// has not been individually marked to show its low-score replies. A child
// that survives the score check is visible when the subtree is unlimited,
// when its depth fits the budget, or when its id was promoted.
//
// depth is the depth of the children being considered (roots are 0).
// The function is deterministic and side-effect-free; it is called once
// per node during a full tree walk and both the screen and the markdown
// consumers must agree on its output.
func SelectVisibleChildren(children []domain.Comment, depth, depthLimit int, hideLow bool, promoted map[string]bool, unlimited, showLowScore bool) Selection {
	var sel Selection
	for i := range children {
		c := &children[i]
		if hideLow && !showLowScore && c.Score != nil && *c.Score <= LowScoreThreshold {
			sel.HiddenLowScore++
			continue
		}
		if unlimited || depth <= depthLimit || promoted[c.ID] {
			sel.Visible = append(sel.Visible, i)
			continue
		}
		sel.HiddenDepth++
	}
	return sel
}
