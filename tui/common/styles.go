package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles comment author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles comment body text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// ScoreStyle styles comment scores.
	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F"))

	// MetadataStyle styles secondary counts and labels.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// CollapsedStyle styles the one-line snippet of a collapsed comment.
	CollapsedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8E8E8E")).
			Italic(true)

	// AffordanceStyle styles the "show N more replies" actions.
	AffordanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Italic(true)

	// SelectedStyle highlights the currently selected row.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600"))

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// LinkStyle styles outbound links (the terminal "see the rest" footer).
	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")).
			Underline(true)
)
