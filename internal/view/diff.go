package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/kmacinski/revlog/internal/highlight"
	"github.com/kmacinski/revlog/internal/keys"
	"github.com/kmacinski/revlog/internal/ui"
)

// Diff shows the commit's diff with syntax coloring. Content was
// pre-highlighted when the commit was opened; when the user turns
// syntax off we re-derive marker-only coloring live instead.
type Diff struct {
	styles ui.Styles
	data   ViewData
}

// NewDiff creates a diff view over the given commit content
func NewDiff(styles ui.Styles, data ViewData) *Diff {
	return &Diff{styles: styles, data: data}
}

// Title returns the commit the diff is showing
func (d *Diff) Title() string {
	return d.data.Title
}

// Data returns a copy of the view's content and scroll state
func (d *Diff) Data() ViewData {
	return d.data
}

// Render draws the visible slice of the styled diff
func (d *Diff) Render(width, height int, st *State) string {
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	styled := d.data.Lines
	if !st.Prefs.SyntaxHighlight {
		styled = highlight.Colorize(d.data.Content, false)
	}

	rendered := make([]string, len(styled))
	for i, line := range styled {
		rendered[i] = d.styles.RenderLine(line)
	}
	if st.Prefs.WrapLines && width > 0 {
		// reflow is ANSI-aware, so wrapping after styling is safe
		joined := wrap.String(strings.Join(rendered, "\n"), width)
		rendered = strings.Split(joined, "\n")
	}

	off := clampScroll(d.data.DiffScroll, len(rendered), contentHeight)
	end := off + contentHeight
	if end > len(rendered) {
		end = len(rendered)
	}

	out := []string{d.styles.Title.Render(d.data.Title)}
	out = append(out, rendered[off:end]...)
	for len(out) < contentHeight+1 {
		out = append(out, "")
	}

	km := keys.DefaultKeyMap
	out = append(out, renderFooter(d.styles, []footerEntry{
		{km.Quit.Help().Key, "back"},
		{km.Down.Help().Key, "scroll"},
		{km.GotoTop.Help().Key, km.GotoTop.Help().Desc},
		{km.ToggleWrap.Help().Key, "wrap=" + onOff(st.Prefs.WrapLines)},
		{km.ToggleSyntax.Help().Key, "syn=" + onOff(st.Prefs.SyntaxHighlight)},
		{"tab/" + km.ToPager.Help().Key, km.ToPager.Help().Desc},
	}, ""))

	return strings.Join(out, "\n")
}

// OnKey handles diff input; same contract as the pager with its own
// scroll offset and the syntax toggle.
func (d *Diff) OnKey(msg tea.KeyMsg, st *State) Transition {
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return Back()

	case key.Matches(msg, km.Switch), key.Matches(msg, km.ToPager):
		return Replace(NewPager(d.styles, d.data))

	case key.Matches(msg, km.Down):
		d.data.DiffScroll = satAdd(d.data.DiffScroll, 1)

	case key.Matches(msg, km.Up):
		d.data.DiffScroll = satSub(d.data.DiffScroll, 1)

	case key.Matches(msg, km.GotoTop):
		d.data.DiffScroll = 0

	case key.Matches(msg, km.GotoBot):
		d.data.DiffScroll = ScrollBottom

	case key.Matches(msg, km.ToggleWrap):
		st.Prefs.WrapLines = !st.Prefs.WrapLines
		_ = st.Prefs.Save()

	case key.Matches(msg, km.ToggleSyntax):
		st.Prefs.SyntaxHighlight = !st.Prefs.SyntaxHighlight
		_ = st.Prefs.Save()
	}
	return None()
}
