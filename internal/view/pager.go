package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wrap"

	"github.com/kmacinski/revlog/internal/keys"
	"github.com/kmacinski/revlog/internal/ui"
)

// Pager shows a commit's raw diff text as a plain scrollable page
type Pager struct {
	styles ui.Styles
	data   ViewData
}

// NewPager creates a pager over the given commit content
func NewPager(styles ui.Styles, data ViewData) *Pager {
	return &Pager{styles: styles, data: data}
}

// Title returns the commit the pager is showing
func (p *Pager) Title() string {
	return p.data.Title
}

// Data returns a copy of the view's content and scroll state
func (p *Pager) Data() ViewData {
	return p.data
}

// Render draws the visible slice of the raw text
func (p *Pager) Render(width, height int, st *State) string {
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := p.data.Content
	if st.Prefs.WrapLines && width > 0 {
		content = wrap.String(content, width)
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	off := clampScroll(p.data.PagerScroll, len(lines), contentHeight)
	end := off + contentHeight
	if end > len(lines) {
		end = len(lines)
	}

	out := []string{p.styles.Title.Render(p.data.Title)}
	out = append(out, lines[off:end]...)
	for len(out) < contentHeight+1 {
		out = append(out, "")
	}

	km := keys.DefaultKeyMap
	out = append(out, renderFooter(p.styles, []footerEntry{
		{km.Quit.Help().Key, "back"},
		{km.Down.Help().Key, "scroll"},
		{km.GotoTop.Help().Key, km.GotoTop.Help().Desc},
		{km.ToggleWrap.Help().Key, "wrap=" + onOff(st.Prefs.WrapLines)},
		{"tab/" + km.ToDiff.Help().Key, km.ToDiff.Help().Desc},
	}, ""))

	return strings.Join(out, "\n")
}

// OnKey handles pager input. Switching to the diff view replaces this
// view with a copy of the data, so a later round trip finds each view's
// scroll offset where it was left.
func (p *Pager) OnKey(msg tea.KeyMsg, st *State) Transition {
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(msg, km.Quit):
		return Back()

	case key.Matches(msg, km.Switch), key.Matches(msg, km.ToDiff):
		return Replace(NewDiff(p.styles, p.data))

	case key.Matches(msg, km.Down):
		p.data.PagerScroll = satAdd(p.data.PagerScroll, 1)

	case key.Matches(msg, km.Up):
		p.data.PagerScroll = satSub(p.data.PagerScroll, 1)

	case key.Matches(msg, km.GotoTop):
		p.data.PagerScroll = 0

	case key.Matches(msg, km.GotoBot):
		p.data.PagerScroll = ScrollBottom

	case key.Matches(msg, km.ToggleWrap):
		st.Prefs.WrapLines = !st.Prefs.WrapLines
		_ = st.Prefs.Save()
	}
	return None()
}
