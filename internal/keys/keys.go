package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	GotoTop key.Binding
	GotoBot key.Binding
	Enter   key.Binding

	// Actions
	Quit         key.Binding
	ToggleWrap   key.Binding
	ToggleSyntax key.Binding
	Yank         key.Binding

	// Pager/Diff switching
	Switch  key.Binding
	ToDiff  key.Binding
	ToPager key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "move"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "move"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g/G", "top/bottom"),
	),
	GotoBot: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("g/G", "top/bottom"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ToggleWrap: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "wrap"),
	),
	ToggleSyntax: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "syntax"),
	),
	Yank: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Switch: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch view"),
	),
	ToDiff: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "diff view"),
	),
	ToPager: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pager view"),
	),
}
