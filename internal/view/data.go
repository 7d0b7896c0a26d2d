package view

import (
	"math"

	"github.com/kmacinski/revlog/internal/highlight"
)

// ScrollBottom is the sentinel offset meaning "last possible position";
// rendering clamps it to the real maximum for the current content.
const ScrollBottom = math.MaxInt

// ViewData is the content behind the pager and diff views for one
// commit. Content and Lines are immutable after construction; the
// struct is copied (never shared) when handed to a sibling view, so the
// two scroll offsets always evolve independently.
type ViewData struct {
	Title       string
	Content     string
	Lines       []highlight.StyledLine
	PagerScroll int
	DiffScroll  int
}

// clampScroll resolves a stored offset (possibly the ScrollBottom
// sentinel) against the real line count and window height.
func clampScroll(offset, lines, height int) int {
	maxOffset := lines - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

// satAdd bumps a scroll offset without overflowing past the sentinel
func satAdd(offset, delta int) int {
	if offset > ScrollBottom-delta {
		return ScrollBottom
	}
	return offset + delta
}

// satSub lowers a scroll offset, saturating at zero
func satSub(offset, delta int) int {
	if offset < delta {
		return 0
	}
	return offset - delta
}
