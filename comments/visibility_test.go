package comments

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/arjenvk/threadbare/domain"
)

func TestSelectVisibleChildren_DepthBudget(t *testing.T) {
	children := []domain.Comment{
		makeComment("a", 10),
		makeComment("b", 2),
		makeComment("c", 0),
	}

	sel := SelectVisibleChildren(children, 2, 2, true, nil, false, false)
	if len(sel.Visible) != 3 || sel.HiddenDepth != 0 {
		t.Fatalf("depth at limit should be visible: %#v", sel)
	}

	sel = SelectVisibleChildren(children, 3, 2, true, nil, false, false)
	if len(sel.Visible) != 0 || sel.HiddenDepth != 3 {
		t.Fatalf("depth past limit should be hidden: %#v", sel)
	}
}

func TestSelectVisibleChildren_LowScorePrecedesDepth(t *testing.T) {
	children := []domain.Comment{
		makeComment("buried", -7),
		makeComment("fine", 4),
	}

	// Past the depth budget AND low scoring: the score rule wins, so
	// "buried" counts as score-hidden, not depth-hidden.
	sel := SelectVisibleChildren(children, 5, 2, true, nil, false, false)
	if sel.HiddenLowScore != 1 || sel.HiddenDepth != 1 {
		t.Fatalf("score check should precede depth check: %#v", sel)
	}

	// An unlimited subtree does not rescue a low-score reply.
	sel = SelectVisibleChildren(children, 5, 2, true, nil, true, false)
	if sel.HiddenLowScore != 1 || len(sel.Visible) != 1 {
		t.Fatalf("unlimited should not override score hiding: %#v", sel)
	}

	// The parent's explicit mark does.
	sel = SelectVisibleChildren(children, 5, 2, true, nil, true, true)
	if sel.HiddenLowScore != 0 || len(sel.Visible) != 2 {
		t.Fatalf("showLowScore should reveal low-score replies: %#v", sel)
	}
}

func TestSelectVisibleChildren_ThresholdBoundary(t *testing.T) {
	children := []domain.Comment{
		makeComment("at", LowScoreThreshold),
		makeComment("above", LowScoreThreshold+1),
	}
	sel := SelectVisibleChildren(children, 0, 2, true, nil, false, false)
	if sel.HiddenLowScore != 1 {
		t.Fatalf("score equal to threshold should hide: %#v", sel)
	}
	if len(sel.Visible) != 1 || children[sel.Visible[0]].ID != "above" {
		t.Fatalf("score just above threshold should show: %#v", sel)
	}
}

func TestSelectVisibleChildren_HiddenScoreNeverCountsAsLow(t *testing.T) {
	children := []domain.Comment{{ID: "hidden-score", Score: nil}}
	sel := SelectVisibleChildren(children, 0, 2, true, nil, false, false)
	if sel.HiddenLowScore != 0 || len(sel.Visible) != 1 {
		t.Fatalf("nil score must not trip the low-score rule: %#v", sel)
	}
}

func TestSelectVisibleChildren_PromotedEscapesDepth(t *testing.T) {
	children := []domain.Comment{
		makeComment("picked", 9),
		makeComment("other", 9),
	}
	promoted := map[string]bool{"picked": true}
	sel := SelectVisibleChildren(children, 4, 1, true, promoted, false, false)
	if len(sel.Visible) != 1 || children[sel.Visible[0]].ID != "picked" {
		t.Fatalf("promoted id should escape the depth budget: %#v", sel)
	}
	if sel.HiddenDepth != 1 {
		t.Fatalf("non-promoted sibling should stay hidden: %#v", sel)
	}
}

func TestSelectVisibleChildren_DepthMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "children")
		children := make([]domain.Comment, n)
		for i := range children {
			children[i] = makeComment("c"+strconv.Itoa(i), rapid.IntRange(-10, 20).Draw(t, "score"))
		}
		depth := rapid.IntRange(0, 10).Draw(t, "depth")
		limit := rapid.IntRange(0, 8).Draw(t, "limit")
		hideLow := rapid.Bool().Draw(t, "hideLow")

		lower := SelectVisibleChildren(children, depth, limit, hideLow, nil, false, false)
		higher := SelectVisibleChildren(children, depth, limit+1, hideLow, nil, false, false)
		if len(higher.Visible) < len(lower.Visible) {
			t.Fatalf("raising the limit hid nodes: %d -> %d", len(lower.Visible), len(higher.Visible))
		}
	})
}
