package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit          key.Binding
	Up            key.Binding
	Down          key.Binding
	Enter         key.Binding
	Back          key.Binding
	Refresh       key.Binding
	LoadMore      key.Binding // m: request the next allowed limit
	Collapse      key.Binding // space: collapse/expand the selected comment
	ExpandMore    key.Binding // x: show depth-hidden replies under the selection
	ExpandLow     key.Binding // z: show low-score replies under the selection
	DepthUp       key.Binding // +: widen the depth budget
	DepthDown     key.Binding // -: narrow the depth budget
	ToggleLow     key.Binding // s: toggle low-score hiding
	ToggleAuto    key.Binding // a: toggle deep-reply promotion
	CycleSort     key.Binding // S: cycle sort order (re-fetches)
	CopyMarkdown  key.Binding // y: copy markdown export to the clipboard
	OpenInBrowser key.Binding // o: open the thread on the origin site
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh/retry"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Collapse: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "collapse"),
		),
		ExpandMore: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "show deeper replies"),
		),
		ExpandLow: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "show low-score"),
		),
		DepthUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "depth +"),
		),
		DepthDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "depth -"),
		),
		ToggleLow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "hide low-score"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto depth"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sort"),
		),
		CopyMarkdown: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy markdown"),
		),
		OpenInBrowser: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
	}
}
