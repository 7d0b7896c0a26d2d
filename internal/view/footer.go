package view

import (
	"strings"

	"github.com/kmacinski/revlog/internal/ui"
)

// footerEntry pairs a key hint with its action label
type footerEntry struct {
	key  string
	desc string
}

// renderFooter formats the one-line binding help shown under a view
func renderFooter(s ui.Styles, entries []footerEntry, trailing string) string {
	parts := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		parts = append(parts, s.FooterKey.Render(e.key)+": "+e.desc)
	}
	if trailing != "" {
		parts = append(parts, s.Muted.Render(trailing))
	}
	return strings.Join(parts, "  ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
