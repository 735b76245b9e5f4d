package thread

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/domain"
	"github.com/arjenvk/threadbare/tui/common"
)

// Deps are the collaborators the thread view needs.
type Deps struct {
	Threads   app.ThreadService
	Cache     app.CacheService
	Sessions  app.SessionStore
	Origin    string
	SavePrefs func(s comments.Settings, exportComments bool) error
}

// New creates a thread model for one permalink, with the sort and limit
// the session store remembered for it.
func New(deps Deps, permalink, sort string, limit int, settings comments.Settings, exportComments bool) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	savePrefs := deps.SavePrefs
	if savePrefs == nil {
		savePrefs = func(comments.Settings, bool) error { return nil }
	}

	return Model{
		services: services{
			threads:  deps.Threads,
			cache:    deps.Cache,
			sessions: deps.Sessions,
			origin:   deps.Origin,
			prefs:    savePrefs,
		},
		loadState: loadState{
			permalink: permalink,
			sort:      sort,
			limit:     limit,
			loading:   true,
		},
		displayState: displayState{
			settings:       settings,
			nodes:          comments.NewNodeState(),
			exportComments: exportComments,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
	}
}

// Init starts the initial thread fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return reloadMsg{} },
		m.spinner.Tick,
	)
}

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case reloadMsg:
		return m.startLoad(msg.preserve)

	case CommentsLoadedMsg, CommentsErrorMsg:
		return m.handleLoadingMsg(msg)

	case MarkdownCopiedMsg:
		if msg.Err != nil {
			m.status = "Copy failed: " + msg.Err.Error()
		} else {
			m.status = "Markdown copied to clipboard."
		}
		return m, nil

	case PrefsSavedMsg, SessionSavedMsg:
		// Soft persistence; failures are not worth interrupting reading.
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// Permalink returns the displayed thread's permalink path.
func (m Model) Permalink() string {
	return m.permalink
}

// Title returns the post title once loaded.
func (m Model) Title() string {
	return m.post.Title
}

// Loading reports whether an initial fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the current retryable error, if any.
func (m Model) Err() error {
	return m.err
}

// Comments returns the currently held comment forest.
func (m Model) Comments() []domain.Comment {
	return m.comments
}

// Settings returns the active display settings.
func (m Model) Settings() comments.Settings {
	return m.settings
}
