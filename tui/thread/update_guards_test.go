package thread

import (
	"errors"
	"testing"
)

func TestHandleLoadingMsg_StaleSeqIgnored(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("existing", 1)))

	updated, cmd := m.Update(CommentsLoadedMsg{
		Listing: makeListing(makeComment("stale", 1)),
		Key:     currentKey(m),
		ReqSeq:  m.reqSeq - 1,
	})
	if cmd != nil {
		t.Fatalf("stale response should produce no follow-up command")
	}
	if len(updated.comments) != 1 || updated.comments[0].ID != "existing" {
		t.Fatalf("stale response should not replace the tree: %#v", updated.comments)
	}
}

func TestHandleLoadingMsg_StaleKeyIgnored(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("existing", 1)))

	updated, _ := m.Update(CommentsLoadedMsg{
		Listing: makeListing(makeComment("stale", 1)),
		Key:     "/r/other/comments/zzz/thread|best|100",
		ReqSeq:  m.reqSeq,
	})
	if len(updated.comments) != 1 || updated.comments[0].ID != "existing" {
		t.Fatalf("mismatched key should not replace the tree: %#v", updated.comments)
	}
}

func TestHandleLoadingMsg_StaleErrorIgnored(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("existing", 1)))

	updated, _ := m.Update(CommentsErrorMsg{
		Err:    errors.New("boom"),
		Key:    currentKey(m),
		ReqSeq: m.reqSeq - 1,
	})
	if updated.err != nil {
		t.Fatalf("stale error should be dropped, got %v", updated.err)
	}
	if len(updated.comments) != 1 {
		t.Fatalf("stale error should not touch the tree")
	}
}

func TestHandleLoadingMsg_InitialErrorClearsTree(t *testing.T) {
	m := newTestModel(&stubThreads{})
	m, _ = m.startLoad(false)

	updated, _ := m.Update(CommentsErrorMsg{
		Err:    errors.New("boom"),
		Key:    currentKey(m),
		ReqSeq: m.reqSeq,
	})
	if updated.err == nil || updated.loading {
		t.Fatalf("current error should commit: err=%v loading=%v", updated.err, updated.loading)
	}
	if updated.comments != nil {
		t.Fatalf("failed initial load should leave nothing to show")
	}
}

func TestHandleLoadingMsg_ContinuationErrorKeepsTree(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("existing", 1)))
	m, _ = m.startLoad(true)

	updated, _ := m.Update(CommentsErrorMsg{
		Err:      errors.New("boom"),
		Key:      currentKey(m),
		ReqSeq:   m.reqSeq,
		Preserve: true,
	})
	if updated.err == nil || updated.loadingMore {
		t.Fatalf("continuation error should commit: err=%v loadingMore=%v", updated.err, updated.loadingMore)
	}
	if len(updated.comments) != 1 || updated.comments[0].ID != "existing" {
		t.Fatalf("continuation error should keep the current tree: %#v", updated.comments)
	}
}

func TestHandleLoadingMsg_SuccessCommitsAndSavesSession(t *testing.T) {
	listing := makeListing(makeComment("c1", 5, makeComment("c1a", 2)))
	m := newTestModel(&stubThreads{listing: listing})
	m, _ = m.startLoad(false)

	updated, cmd := m.Update(CommentsLoadedMsg{
		Listing: listing,
		Key:     currentKey(m),
		ReqSeq:  m.reqSeq,
	})
	if updated.loading || updated.err != nil {
		t.Fatalf("commit should clear loading state: %#v", updated.loadState)
	}
	if updated.post.Title != "A thread" || updated.loadedCount != 2 {
		t.Fatalf("listing fields should apply: %#v", updated.loadState)
	}
	if cmd == nil {
		t.Fatalf("a committed load should record the session")
	}
	if msg := cmd(); msg == nil {
		t.Fatalf("session command should produce a message")
	}
	sessions := updated.sessions.(*stubSessions)
	if len(sessions.touched) != 1 || len(sessions.updated) != 1 {
		t.Fatalf("session should be touched and updated: %#v", sessions)
	}
}

func TestStartLoad_ResetsNodeStateAndBumpsSeq(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("c1", 5, makeComment("c1a", 2))))
	m.nodes.Collapsed["c1"] = true
	m.nodes.ExpandedMore["c1a"] = true
	before := m.reqSeq

	m, _ = m.startLoad(false)
	if m.reqSeq != before+1 {
		t.Fatalf("sequence should advance: %d -> %d", before, m.reqSeq)
	}
	if len(m.nodes.Collapsed) != 0 || len(m.nodes.ExpandedMore) != 0 {
		t.Fatalf("per-node state should clear on fetch start")
	}
	if !m.loading || m.comments != nil {
		t.Fatalf("fresh load should clear the tree while loading")
	}
}

func TestStartLoad_PreserveKeepsTree(t *testing.T) {
	m := loadedTestModel(makeListing(makeComment("c1", 5)))

	m, _ = m.startLoad(true)
	if !m.loadingMore || m.loading {
		t.Fatalf("continuation should use loadingMore: %#v", m.loadState)
	}
	if len(m.comments) != 1 {
		t.Fatalf("continuation should keep the current tree on screen")
	}
}

func TestFetchComments_ServesFromCache(t *testing.T) {
	listing := makeListing(makeComment("cached", 1))
	threads := &stubThreads{listing: makeListing(makeComment("network", 1))}
	m := newTestModel(threads)
	m.cache.(*stubCache).entries[currentKey(m)] = listing

	m, cmd := m.startLoad(false)
	raw := cmd()
	msg, ok := raw.(CommentsLoadedMsg)
	if !ok {
		t.Fatalf("expected CommentsLoadedMsg, got %T", raw)
	}
	if !msg.FromCache || msg.Listing.Comments[0].ID != "cached" {
		t.Fatalf("cache hit should bypass the network: %#v", msg)
	}
	if threads.calls != 0 {
		t.Fatalf("cache hit should not call the thread service")
	}
}

func TestFetchComments_StoresOnMiss(t *testing.T) {
	listing := makeListing(makeComment("network", 1))
	threads := &stubThreads{listing: listing}
	m := newTestModel(threads)

	m, cmd := m.startLoad(false)
	raw := cmd()
	msg, ok := raw.(CommentsLoadedMsg)
	if !ok {
		t.Fatalf("expected CommentsLoadedMsg, got %T", raw)
	}
	if msg.FromCache {
		t.Fatalf("miss should come from the network")
	}
	cache := m.cache.(*stubCache)
	if len(cache.sets) != 1 || cache.sets[0] != currentKey(m) {
		t.Fatalf("fetched listing should be cached under its key: %#v", cache.sets)
	}
}
