package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/infra/reddit"
	"github.com/arjenvk/threadbare/tui/common"
	"github.com/arjenvk/threadbare/tui/recent"
	"github.com/arjenvk/threadbare/tui/thread"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI
// container.
type Deps struct {
	Threads  app.ThreadService
	Cache    app.CacheService
	Sessions app.SessionStore
	Origin   string

	// Permalink opens a thread directly; empty starts on the recent list.
	Permalink string
	Sort      string
	Limit     int

	Settings       comments.Settings
	ExportComments bool
	SavePrefs      func(s comments.Settings, exportComments bool) error
}

type activeView int

const (
	recentView activeView = iota
	threadView
)

// App is the root Bubble Tea model. It routes between the recent list
// and the thread view.
type App struct {
	deps   Deps
	active activeView
	recent recent.Model
	thread thread.Model
	keys   common.KeyMap
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	a := App{
		deps:   deps,
		active: recentView,
		recent: recent.New(deps.Sessions),
		keys:   common.DefaultKeyMap(),
	}
	if deps.Permalink != "" {
		sort := deps.Sort
		if sort == "" {
			sort = reddit.DefaultSort
		}
		limit := deps.Limit
		if limit == 0 {
			limit = reddit.DefaultLimit
		}
		a.active = threadView
		a.thread = a.newThread(deps.Permalink, sort, reddit.SnapLimit(limit))
	}
	return a
}

func (a App) newThread(permalink, sort string, limit int) thread.Model {
	return thread.New(thread.Deps{
		Threads:   a.deps.Threads,
		Cache:     a.deps.Cache,
		Sessions:  a.deps.Sessions,
		Origin:    a.deps.Origin,
		SavePrefs: a.deps.SavePrefs,
	}, permalink, sort, limit, a.deps.Settings, a.deps.ExportComments)
}

// Init delegates to the active sub-model.
func (a App) Init() tea.Cmd {
	if a.active == threadView {
		return a.thread.Init()
	}
	return a.recent.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.active == threadView && key.Matches(msg, a.keys.Back) {
			a.active = recentView
			return a, a.recent.Refresh()
		}

	case recent.OpenThreadMsg:
		a.active = threadView
		a.thread = a.newThread(msg.Session.URL, msg.Session.Sort, msg.Session.Limit)
		return a, a.thread.Init()

	case spinner.TickMsg:
		// Both sub-views share the tick; route to the active one.
		var cmd tea.Cmd
		if a.active == threadView {
			a.thread, cmd = a.thread.Update(msg)
		} else {
			a.recent, cmd = a.recent.Update(msg)
		}
		return a, cmd
	}

	var cmd tea.Cmd
	if a.active == threadView {
		a.thread, cmd = a.thread.Update(msg)
	} else {
		a.recent, cmd = a.recent.Update(msg)
	}
	return a, cmd
}

// View renders the active sub-view.
func (a App) View() string {
	if a.active == threadView {
		return a.thread.View()
	}
	return a.recent.View()
}
