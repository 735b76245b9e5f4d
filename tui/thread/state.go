package thread

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/domain"
	"github.com/arjenvk/threadbare/tui/common"
)

// SortOrders are the listing sorts the S key cycles through.
var SortOrders = []string{"best", "top", "new", "controversial", "old"}

// reloadMsg asks the model to start a fetch for its current settings.
type reloadMsg struct {
	preserve bool
}

// CommentsLoadedMsg is sent when a thread fetch (or cache replay)
// completes successfully.
type CommentsLoadedMsg struct {
	Listing   app.Listing
	Key       string
	ReqSeq    int
	FromCache bool
	Preserve  bool   // This was a "load more" continuation
	CacheNote string // Soft cache-set rejection, e.g. "too_large"
}

// CommentsErrorMsg is sent when a thread fetch fails. Cancelled fetches
// never produce one.
type CommentsErrorMsg struct {
	Err      error
	Key      string
	ReqSeq   int
	Preserve bool
}

// MarkdownCopiedMsg is sent after a clipboard export attempt.
type MarkdownCopiedMsg struct {
	Err error
}

// PrefsSavedMsg is sent after persisting display preferences.
type PrefsSavedMsg struct {
	Err error
}

// SessionSavedMsg is sent after recording the thread in the session store.
type SessionSavedMsg struct {
	Err error
}

type services struct {
	threads  app.ThreadService
	cache    app.CacheService
	sessions app.SessionStore
	origin   string
	prefs    prefsSaver
}

// prefsSaver persists display settings; injected so tests can observe.
type prefsSaver func(s comments.Settings, exportComments bool) error

type loadState struct {
	permalink   string
	sort        string
	limit       int
	post        domain.Post
	comments    []domain.Comment
	loadedCount int
	totalCount  int
	hasMore     bool
	loading     bool
	loadingMore bool
	err         error
	fromCache   bool
	cacheNote   string
	reqSeq      int
	cancel      context.CancelFunc
}

type displayState struct {
	settings       comments.Settings
	nodes          comments.NodeState
	exportComments bool
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	cursor     int // Index into the flattened visible rows
	scrollLine int
	status     string // Transient notice (copy result, cache note)

	// Scroll anchor captured before a load-more re-render.
	anchorID     string
	anchorOffset int
	hasAnchor    bool
}

// Model holds the state for the thread view: one displayed thread and
// its fetched comment forest.
type Model struct {
	services
	loadState
	displayState
	uiState
}
