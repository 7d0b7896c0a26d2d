package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmacinski/revlog/internal/highlight"
)

// Styles holds all the lipgloss styles for the application
type Styles struct {
	// Diff span styles, indexed via Span()
	Plain      lipgloss.Style
	Bold       lipgloss.Style
	FileHeader lipgloss.Style
	HunkHeader lipgloss.Style
	DiffAdded  lipgloss.Style
	DiffRemove lipgloss.Style
	Keyword    lipgloss.Style
	String     lipgloss.Style
	Number     lipgloss.Style
	Comment    lipgloss.Style

	// Commit list
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	CommitID         lipgloss.Style
	SummaryFeat      lipgloss.Style
	SummaryFix       lipgloss.Style
	SummaryDocs      lipgloss.Style
	SummaryRefactor  lipgloss.Style

	// Chrome
	Title     lipgloss.Style
	FooterKey lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Plain:      lipgloss.NewStyle().Foreground(c.Text),
		Bold:       lipgloss.NewStyle().Bold(true),
		FileHeader: lipgloss.NewStyle().Foreground(c.Header).Bold(true),
		HunkHeader: lipgloss.NewStyle().Foreground(c.HunkHeader),
		DiffAdded:  lipgloss.NewStyle().Foreground(c.Added),
		DiffRemove: lipgloss.NewStyle().Foreground(c.Removed),
		Keyword:    lipgloss.NewStyle().Foreground(c.Keyword),
		String:     lipgloss.NewStyle().Foreground(c.String),
		Number:     lipgloss.NewStyle().Foreground(c.Number),
		Comment:    lipgloss.NewStyle().Foreground(c.Comment),

		ListItem:         lipgloss.NewStyle().Foreground(c.Text),
		ListItemSelected: lipgloss.NewStyle().Foreground(c.HunkHeader).Bold(true),
		CommitID:         lipgloss.NewStyle().Foreground(c.Number).Bold(true),
		SummaryFeat:      lipgloss.NewStyle().Foreground(c.Added),
		SummaryFix:       lipgloss.NewStyle().Foreground(c.Removed),
		SummaryDocs:      lipgloss.NewStyle().Foreground(c.Header),
		SummaryRefactor:  lipgloss.NewStyle().Foreground(c.Keyword),

		Title:     lipgloss.NewStyle().Bold(true).Foreground(c.Header).Padding(0, 1),
		FooterKey: lipgloss.NewStyle().Foreground(c.HunkHeader).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(c.Muted),
	}
}

// Span returns the style for a highlight span style tag
func (s Styles) Span(tag highlight.Style) lipgloss.Style {
	switch tag {
	case highlight.StyleBold:
		return s.Bold
	case highlight.StyleFileHeader:
		return s.FileHeader
	case highlight.StyleHunkHeader:
		return s.HunkHeader
	case highlight.StyleAdded:
		return s.DiffAdded
	case highlight.StyleRemoved:
		return s.DiffRemove
	case highlight.StyleKeyword:
		return s.Keyword
	case highlight.StyleString:
		return s.String
	case highlight.StyleNumber:
		return s.Number
	case highlight.StyleComment:
		return s.Comment
	default:
		return s.Plain
	}
}

// RenderLine renders a styled line to a terminal string
func (s Styles) RenderLine(line highlight.StyledLine) string {
	var b strings.Builder
	for _, span := range line {
		if span.Text == "" {
			continue
		}
		b.WriteString(s.Span(span.Style).Render(span.Text))
	}
	return b.String()
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
