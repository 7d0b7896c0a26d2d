package view

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kmacinski/revlog/internal/git"
	"github.com/kmacinski/revlog/internal/highlight"
	"github.com/kmacinski/revlog/internal/keys"
	"github.com/kmacinski/revlog/internal/ui"
)

// List is the root view: the commit history with a selection cursor.
// It is never popped off the router stack.
type List struct {
	styles ui.Styles
	cursor int
	offset int
}

// NewList creates the commit list view
func NewList(styles ui.Styles) *List {
	return &List{styles: styles}
}

// Title returns the view title
func (l *List) Title() string {
	return "revlog - commits"
}

// Cursor returns the current selection index
func (l *List) Cursor() int {
	return l.cursor
}

// Render draws the commit list with the cursor row highlighted
func (l *List) Render(width, height int, st *State) string {
	contentHeight := height - 2 // title and footer
	if contentHeight < 1 {
		contentHeight = 1
	}
	l.clampCursor(st)
	l.ensureVisible(contentHeight)

	lines := []string{l.styles.Title.Render(l.Title())}

	if len(st.Commits) == 0 {
		lines = append(lines, l.styles.Muted.Render("No commits"))
	} else {
		for i := l.offset; i < len(st.Commits) && i < l.offset+contentHeight; i++ {
			lines = append(lines, l.renderRow(st.Commits[i], i == l.cursor, width))
		}
	}

	for len(lines) < contentHeight+1 {
		lines = append(lines, "")
	}

	km := keys.DefaultKeyMap
	lines = append(lines, renderFooter(l.styles, []footerEntry{
		{km.Enter.Help().Key, km.Enter.Help().Desc},
		{km.Quit.Help().Key, km.Quit.Help().Desc},
		{km.Down.Help().Key, km.Down.Help().Desc},
		{km.ToggleWrap.Help().Key, "wrap=" + onOff(st.Prefs.WrapLines)},
		{km.ToggleSyntax.Help().Key, "syn=" + onOff(st.Prefs.SyntaxHighlight)},
		{km.Yank.Help().Key, km.Yank.Help().Desc},
	}, fmt.Sprintf("%d commits", len(st.Commits))))

	return strings.Join(lines, "\n")
}

func (l *List) renderRow(c git.Commit, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	summary := c.Summary
	avail := width - runewidth.StringWidth(c.ShortID) - runewidth.StringWidth(c.Author) - 8
	if avail < 10 {
		avail = 10
	}
	summary = runewidth.Truncate(summary, avail, "…")

	sumStyle := l.summaryStyle(summary)
	if selected {
		sumStyle = l.styles.ListItemSelected
	}

	return fmt.Sprintf("%s%s %s %s",
		marker,
		l.styles.CommitID.Render(c.ShortID),
		sumStyle.Render(summary),
		l.styles.Muted.Render(c.Author),
	)
}

// summaryStyle colors conventional-commit prefixes
func (l *List) summaryStyle(summary string) lipgloss.Style {
	lower := strings.ToLower(summary)
	switch {
	case strings.HasPrefix(lower, "feat"):
		return l.styles.SummaryFeat
	case strings.HasPrefix(lower, "fix"):
		return l.styles.SummaryFix
	case strings.HasPrefix(lower, "docs"):
		return l.styles.SummaryDocs
	case strings.HasPrefix(lower, "refactor"):
		return l.styles.SummaryRefactor
	default:
		return l.styles.ListItem
	}
}

// OnKey handles list input: cursor movement saturates at both ends,
// Enter opens the selected commit, toggles persist immediately.
func (l *List) OnKey(msg tea.KeyMsg, st *State) Transition {
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return Quit()

	case key.Matches(msg, km.Down):
		if l.cursor < len(st.Commits)-1 {
			l.cursor++
		}

	case key.Matches(msg, km.Up):
		if l.cursor > 0 {
			l.cursor--
		}

	case key.Matches(msg, km.GotoTop):
		l.cursor, l.offset = 0, 0

	case key.Matches(msg, km.GotoBot):
		if n := len(st.Commits); n > 0 {
			l.cursor = n - 1
		}

	case key.Matches(msg, km.ToggleWrap):
		st.Prefs.WrapLines = !st.Prefs.WrapLines
		_ = st.Prefs.Save()

	case key.Matches(msg, km.ToggleSyntax):
		st.Prefs.SyntaxHighlight = !st.Prefs.SyntaxHighlight
		_ = st.Prefs.Save()

	case key.Matches(msg, km.Yank):
		if c, ok := l.selected(st); ok {
			_ = clipboard.WriteAll(c.FullID)
		}

	case key.Matches(msg, km.Enter):
		return l.openSelected(st)
	}
	return None()
}

// openSelected fetches the diff for the commit under the cursor and
// pushes a pager on it. Any provider failure is a quiet no-op so
// navigation never breaks on a bad commit.
func (l *List) openSelected(st *State) Transition {
	c, ok := l.selected(st)
	if !ok || st.Repo == nil {
		return None()
	}
	id, err := st.Repo.ResolveID(c.FullID)
	if err != nil {
		return None()
	}
	text, err := st.Repo.CommitDiffText(id)
	if err != nil {
		return None()
	}

	data := ViewData{
		Title:   c.ShortID + " " + c.Summary,
		Content: text,
		Lines:   highlight.Colorize(text, true),
	}
	return Push(NewPager(l.styles, data))
}

func (l *List) selected(st *State) (git.Commit, bool) {
	if l.cursor < 0 || l.cursor >= len(st.Commits) {
		return git.Commit{}, false
	}
	return st.Commits[l.cursor], true
}

// clampCursor keeps the cursor valid when the commit list shrinks
// underneath us (for example after a repository refresh).
func (l *List) clampCursor(st *State) {
	if l.cursor >= len(st.Commits) {
		l.cursor = len(st.Commits) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *List) ensureVisible(visible int) {
	if visible < 1 {
		visible = 1
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
}
