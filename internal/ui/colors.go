package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the application
type Colors struct {
	Added      lipgloss.Color
	Removed    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Header     lipgloss.Color
	HunkHeader lipgloss.Color
	Keyword    lipgloss.Color
	String     lipgloss.Color
	Number     lipgloss.Color
	Comment    lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
}

// DefaultColors returns the default color palette
var DefaultColors = Colors{
	Added:      lipgloss.Color("#a6e3a1"),
	Removed:    lipgloss.Color("#f38ba8"),
	Text:       lipgloss.Color("#cdd6f4"),
	Muted:      lipgloss.Color("#6c7086"),
	Header:     lipgloss.Color("#89b4fa"),
	HunkHeader: lipgloss.Color("#f9e2af"),
	Keyword:    lipgloss.Color("#cba6f7"),
	String:     lipgloss.Color("#f9e2af"),
	Number:     lipgloss.Color("#89dceb"),
	Comment:    lipgloss.Color("#7f849c"),
	Accent:     lipgloss.Color("#fab387"),
	Border:     lipgloss.Color("#45475a"),
}
