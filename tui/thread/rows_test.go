package thread

import (
	"testing"

	"github.com/arjenvk/threadbare/domain"
)

func manyComments(n int) []domain.Comment {
	out := make([]domain.Comment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, makeComment("c"+string(rune('a'+i)), 1))
	}
	return out
}

func TestRowSpans_ContiguousWithSpacers(t *testing.T) {
	m := loadedTestModel(makeListing(manyComments(4)...))
	rows := m.rows()
	spans := m.rowSpans(rows)

	if len(spans) != 4 {
		t.Fatalf("expected 4 spans, got %d", len(spans))
	}
	for i, s := range spans {
		if s.bottom < s.top {
			t.Fatalf("span %d inverted: %#v", i, s)
		}
		if i > 0 && s.top != spans[i-1].bottom+2 {
			t.Fatalf("span %d should start one spacer after its predecessor: %#v then %#v", i, spans[i-1], s)
		}
	}
}

func TestEnsureCursorVisible_ScrollsToSpan(t *testing.T) {
	m := loadedTestModel(makeListing(manyComments(20)...))
	m.height = 20 // small viewport

	m.cursor = 19
	m.ensureCursorVisible()
	spans := m.rowSpans(m.rows())
	last := spans[19]
	view := m.commentViewportHeight()
	if last.top < m.scrollLine || last.bottom >= m.scrollLine+view {
		t.Fatalf("cursor span must be fully on screen: span=%#v scroll=%d view=%d", last, m.scrollLine, view)
	}

	m.cursor = 0
	m.ensureCursorVisible()
	if m.scrollLine != 0 {
		t.Fatalf("scrolling back to the first row should reset the viewport, got %d", m.scrollLine)
	}
}

func TestEnsureCursorVisible_ClampsCursor(t *testing.T) {
	m := loadedTestModel(makeListing(manyComments(3)...))
	m.cursor = 99
	m.ensureCursorVisible()
	if m.cursor != 2 {
		t.Fatalf("cursor should clamp to the last row, got %d", m.cursor)
	}

	m.comments = nil
	m.ensureCursorVisible()
	if m.cursor != 0 || m.scrollLine != 0 {
		t.Fatalf("empty tree should reset cursor and scroll")
	}
}

func TestAnchor_RestoresReadingPositionAcrossGrowth(t *testing.T) {
	m := loadedTestModel(makeListing(manyComments(6)...))
	m.height = 20

	// Read down to the fourth comment.
	m.cursor = 3
	m.ensureCursorVisible()

	m.captureTopAnchor()
	if !m.hasAnchor {
		t.Fatalf("anchor should be captured while scrolled")
	}
	anchorID := m.anchorID
	wantOffset := m.anchorOffset

	// A load-more response prepends new roots above the anchor.
	grown := append(manyComments(3), m.comments...)
	for i := range grown[:3] {
		grown[i].ID = "new" + grown[i].ID
	}
	m.comments = grown

	m.restoreTopAnchor()
	rows := m.rows()
	spans := m.rowSpans(rows)
	var anchored *rowSpan
	for i := range spans {
		if rows[spans[i].idx].comment.ID == anchorID {
			anchored = &spans[i]
			break
		}
	}
	if anchored == nil {
		t.Fatalf("anchored comment vanished from the row set")
	}
	if got := anchored.top - m.scrollLine; got != wantOffset {
		t.Fatalf("anchored comment should keep its viewport offset: got %d want %d", got, wantOffset)
	}
	if m.cursor != anchored.idx {
		t.Fatalf("cursor should follow the anchor, got %d want %d", m.cursor, anchored.idx)
	}
}

func TestAnchor_VanishedAnchorIsTolerated(t *testing.T) {
	m := loadedTestModel(makeListing(manyComments(4)...))
	m.height = 20
	m.cursor = 3
	m.ensureCursorVisible()
	m.captureTopAnchor()

	m.comments = []domain.Comment{makeComment("unrelated", 1)}
	scrollBefore := m.scrollLine
	m.restoreTopAnchor()
	if m.hasAnchor {
		t.Fatalf("anchor should be consumed either way")
	}
	if m.scrollLine != scrollBefore {
		t.Fatalf("a vanished anchor should leave the scroll untouched")
	}
}
