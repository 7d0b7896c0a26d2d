package highlight

import "strings"

// Colorize styles a full unified diff line by line. The only cross-line
// state is the file extension inferred from the most recent file header,
// threaded through the loop as a local accumulator. Output is 1:1 with
// input lines: nothing is merged or dropped.
//
// With syntax disabled, content lines keep their +/-/space marker
// coloring but the remainder is left as a single plain span.
func Colorize(diff string, syntaxEnabled bool) []StyledLine {
	lang := LangNone
	var out []StyledLine
	for _, l := range splitLines(diff) {
		switch {
		case strings.HasPrefix(l, "diff --git "):
			out = append(out, StyledLine{{Text: l, Style: StyleFileHeader}})

		case strings.HasPrefix(l, "+++"), strings.HasPrefix(l, "---"):
			if ext, ok := headerExtension(l); ok {
				lang = ForExtension(ext)
			}
			out = append(out, StyledLine{{Text: l, Style: StyleFileHeader}})

		case strings.HasPrefix(l, "@@"):
			out = append(out, StyledLine{{Text: l, Style: StyleHunkHeader}})

		case strings.HasPrefix(l, "+"):
			out = append(out, contentLine("+", StyleAdded, l[1:], lang, syntaxEnabled))

		case strings.HasPrefix(l, "-"):
			out = append(out, contentLine("-", StyleRemoved, l[1:], lang, syntaxEnabled))

		case strings.HasPrefix(l, " "):
			out = append(out, contentLine(" ", StylePlain, l[1:], lang, syntaxEnabled))

		default:
			out = append(out, StyledLine{{Text: l, Style: StylePlain}})
		}
	}
	return out
}

// contentLine renders one +/-/space diff line: the marker is always its
// own first span so marker coloring survives a syntax toggle unchanged.
func contentLine(marker string, style Style, rest string, lang Language, syntax bool) StyledLine {
	line := StyledLine{{Text: marker, Style: style}}
	if syntax {
		return append(line, Code(rest, lang)...)
	}
	return append(line, Span{Text: rest, Style: StylePlain})
}

// headerExtension pulls the file extension out of a +++/--- header path,
// stripping the conventional a/ or b/ prefix. A path without a dot
// yields the path itself, which maps to no language.
func headerExtension(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", false
	}
	p := strings.TrimPrefix(fields[1], "a/")
	p = strings.TrimPrefix(p, "b/")
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[i+1:], true
	}
	return p, true
}

// splitLines splits on newlines without producing a phantom empty line
// for input that ends with one.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
