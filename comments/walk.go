package comments

import "github.com/arjenvk/threadbare/domain"

// Settings are the display settings that shape a render pass. They never
// trigger a fetch; changing them re-walks the already-held tree.
type Settings struct {
	DepthLimit   int
	HideLowScore bool
	AutoDepth    bool // Enables deep-reply promotion
}

// NodeState is the per-node UI state, keyed by comment id. Owned by the
// thread controller; cleared when a new fetch starts, preserved across
// pure re-renders.
type NodeState struct {
	ExpandedMore     map[string]bool // "show more replies" pressed here
	ExpandedLowScore map[string]bool // "show low-score replies" pressed here
	Collapsed        map[string]bool
}

// NewNodeState returns empty per-node state sets.
func NewNodeState() NodeState {
	return NodeState{
		ExpandedMore:     make(map[string]bool),
		ExpandedLowScore: make(map[string]bool),
		Collapsed:        make(map[string]bool),
	}
}

// Reset clears all three sets in place.
func (s NodeState) Reset() {
	clear(s.ExpandedMore)
	clear(s.ExpandedLowScore)
	clear(s.Collapsed)
}

// Visit receives one visible node in walk order. sel is the verdict for
// the node's children; collapsed nodes are visited but their subtree is
// suppressed. unlimited reports whether the node sits in a subtree whose
// depth budget was lifted via "show more replies".
type Visit func(c *domain.Comment, depth int, sel Selection, collapsed, unlimited bool)

// Walk traverses the visible node set of a comment forest. The screen
// render and the markdown export both go through here so they cannot
// disagree on which nodes are shown.
func Walk(roots []domain.Comment, s Settings, st NodeState, visit Visit) {
	for i := range roots {
		root := &roots[i]
		var promoted map[string]bool
		if s.AutoDepth {
			promoted = PromotedPathIDs(root, s.DepthLimit)
		}
		walkNode(root, 0, false, promoted, s, st, visit)
	}
}

func walkNode(c *domain.Comment, depth int, unlimited bool, promoted map[string]bool, s Settings, st NodeState, visit Visit) {
	// Expanding a node lifts the depth budget for its whole subtree
	// until the next fresh fetch.
	childUnlimited := unlimited || st.ExpandedMore[c.ID]
	sel := SelectVisibleChildren(c.Replies, depth+1, s.DepthLimit, s.HideLowScore, promoted, childUnlimited, st.ExpandedLowScore[c.ID])
	collapsed := st.Collapsed[c.ID]
	visit(c, depth, sel, collapsed, unlimited)
	if collapsed {
		return
	}
	for _, idx := range sel.Visible {
		walkNode(&c.Replies[idx], depth+1, childUnlimited, promoted, s, st, visit)
	}
}

// VisibleIDs returns the ids visited by Walk, in walk order.
func VisibleIDs(roots []domain.Comment, s Settings, st NodeState) []string {
	var ids []string
	Walk(roots, s, st, func(c *domain.Comment, _ int, _ Selection, _, _ bool) {
		ids = append(ids, c.ID)
	})
	return ids
}
