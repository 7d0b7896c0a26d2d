package highlight

// Style identifies how a span of text is rendered
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleFileHeader
	StyleHunkHeader
	StyleAdded
	StyleRemoved
	StyleKeyword
	StyleString
	StyleNumber
	StyleComment
)

// Span is a contiguous run of text carrying one style
type Span struct {
	Text  string
	Style Style
}

// StyledLine is one rendered line as an ordered sequence of spans
type StyledLine []Span

// Text returns the unstyled content of the line
func (l StyledLine) Text() string {
	var b []byte
	for _, s := range l {
		b = append(b, s.Text...)
	}
	return string(b)
}
