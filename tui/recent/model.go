// Package recent lists the session store's recently viewed threads so
// a thread can be reopened with the sort and limit it was left at.
package recent

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjenvk/threadbare/app"
	"github.com/arjenvk/threadbare/tui/common"
)

// SessionsLoadedMsg is sent when the recent-session listing completes.
type SessionsLoadedMsg struct {
	Sessions []app.Session
	Err      error
}

// OpenThreadMsg is sent when the user picks a thread to reopen.
type OpenThreadMsg struct {
	Session app.Session
}

// Model holds the state for the recent-threads view.
type Model struct {
	store    app.SessionStore
	sessions []app.Session
	cursor   int
	loading  bool
	err      error
	keys     common.KeyMap
	spinner  spinner.Model
}

// New creates a recent-threads model.
func New(store app.SessionStore) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	return Model{
		store:   store,
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the session listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchSessions(), m.spinner.Tick)
}

// Refresh re-lists the sessions (e.g. after returning from a thread).
func (m Model) Refresh() tea.Cmd {
	return m.fetchSessions()
}

func (m Model) fetchSessions() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return SessionsLoadedMsg{}
		}
		sessions, err := store.Recent(context.Background())
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

// Update handles messages for the recent view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case SessionsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		m.sessions = msg.Sessions
		if m.cursor >= len(m.sessions) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.sessions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.fetchSessions()
		case key.Matches(msg, m.keys.Enter):
			if len(m.sessions) == 0 {
				break
			}
			s := m.sessions[m.cursor]
			return m, func() tea.Msg { return OpenThreadMsg{Session: s} }
		}
	}

	return m, nil
}

// View renders the recent-threads list.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("threadbare")
	tagline := common.TaglineStyle.Render("<one thread at a time>")
	b.WriteString(title + tagline + "\n\n")
	b.WriteString(common.MetadataStyle.Render("  Recently viewed threads") + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spinner.View() + " Loading...\n")
	case m.err != nil:
		b.WriteString("  " + common.ErrorStyle.Render("Could not list sessions: "+m.err.Error()) + "\n")
	case len(m.sessions) == 0:
		b.WriteString(common.MetadataStyle.Render("  Nothing yet. Pass a thread URL:\n\n    threadbare <thread-url>") + "\n")
	default:
		for i, s := range m.sessions {
			marker := "  "
			line := s.Title
			if line == "" {
				line = s.URL
			}
			meta := fmt.Sprintf("  %s · limit %d", s.Sort, s.Limit)
			if i == m.cursor {
				marker = common.SelectedStyle.Render("> ")
				line = common.SelectedStyle.Render(line)
			}
			b.WriteString(marker + line + common.MetadataStyle.Render(meta) + "\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render("↑/↓ move · enter open · r refresh · q quit"))
	return b.String()
}
