package highlight

import (
	"reflect"
	"strings"
	"testing"
)

const sampleDiff = "diff --git a/x.py b/x.py\n" +
	"+++ b/x.py\n" +
	"@@ -1,1 +1,1 @@\n" +
	"-old\n" +
	"+new\n"

func TestColorizePreservesLineCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "single no newline", input: "hello", want: 1},
		{name: "single with newline", input: "hello\n", want: 1},
		{name: "sample diff", input: sampleDiff, want: 5},
		{name: "blank lines kept", input: "a\n\n\nb\n", want: 4},
		{name: "garbage", input: "not\na\ndiff at all\n", want: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, syntax := range []bool{true, false} {
				if got := len(Colorize(tc.input, syntax)); got != tc.want {
					t.Fatalf("syntax=%v: %d lines, want %d", syntax, got, tc.want)
				}
			}
		})
	}
}

func TestColorizeMarkerIsFirstSpan(t *testing.T) {
	diff := " ctx\n+added\n-removed\n"
	for _, syntax := range []bool{true, false} {
		lines := Colorize(diff, syntax)
		wantMarkers := []struct {
			text  string
			style Style
		}{
			{" ", StylePlain},
			{"+", StyleAdded},
			{"-", StyleRemoved},
		}
		for i, want := range wantMarkers {
			first := lines[i][0]
			if first.Text != want.text || first.Style != want.style {
				t.Fatalf("syntax=%v line %d: first span=%v, want {%q %v}",
					syntax, i, first, want.text, want.style)
			}
		}
	}
}

func TestColorizeHeaderStyles(t *testing.T) {
	lines := Colorize(sampleDiff, true)

	if lines[0][0].Style != StyleFileHeader {
		t.Fatalf("diff --git line style=%v", lines[0][0].Style)
	}
	if lines[1][0].Style != StyleFileHeader {
		t.Fatalf("+++ line style=%v", lines[1][0].Style)
	}
	if lines[2][0].Style != StyleHunkHeader {
		t.Fatalf("@@ line style=%v", lines[2][0].Style)
	}
}

// The +++ header's path establishes the language for following content
// lines: b/x.py means python tokenization, where "new" is a plain
// identifier and "def" would be a keyword.
func TestColorizeTracksFileExtension(t *testing.T) {
	lines := Colorize(sampleDiff, true)

	added := lines[4]
	if added[0].Text != "+" || added[0].Style != StyleAdded {
		t.Fatalf("marker span=%v", added[0])
	}
	if added[1].Text != "new" || added[1].Style != StylePlain {
		t.Fatalf("content span=%v, want plain identifier", added[1])
	}

	kw := Colorize("+++ b/x.py\n+def f():\n", true)
	if kw[1][1].Text != "def" || kw[1][1].Style != StyleKeyword {
		t.Fatalf("span=%v, want python keyword def", kw[1][1])
	}
}

func TestColorizeExtensionSwitchesPerFile(t *testing.T) {
	diff := "+++ b/a.go\n" +
		"+func f()\n" +
		"+++ b/b.txt\n" +
		"+func f()\n"
	lines := Colorize(diff, true)

	if lines[1][1].Style != StyleKeyword {
		t.Fatalf("go line: span=%v, want keyword", lines[1][1])
	}
	// Unknown extension: remainder is one plain span.
	if len(lines[3]) != 2 || lines[3][1] != (Span{Text: "func f()", Style: StylePlain}) {
		t.Fatalf("txt line spans=%v, want single plain remainder", lines[3])
	}
}

func TestColorizeBasicModeIsStable(t *testing.T) {
	a := Colorize(sampleDiff, false)
	b := Colorize(sampleDiff, false)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("basic colorize is not deterministic")
	}
	for _, line := range a {
		for _, s := range line {
			switch s.Style {
			case StyleKeyword, StyleString, StyleNumber, StyleComment:
				t.Fatalf("token-level style leaked into basic mode: %v", s)
			}
		}
	}
}

// Toggling syntax must not change marker coloring or line text, only
// the span boundaries within content lines.
func TestColorizeToggleKeepsMarkersAndText(t *testing.T) {
	on := Colorize(sampleDiff, true)
	off := Colorize(sampleDiff, false)

	if len(on) != len(off) {
		t.Fatalf("line counts differ: %d vs %d", len(on), len(off))
	}
	for i := range on {
		if on[i].Text() != off[i].Text() {
			t.Fatalf("line %d text differs: %q vs %q", i, on[i].Text(), off[i].Text())
		}
		if on[i][0] != off[i][0] {
			t.Fatalf("line %d marker differs: %v vs %v", i, on[i][0], off[i][0])
		}
	}
}

func TestColorizeUnmarkedLinesVerbatim(t *testing.T) {
	input := "commit abc123\nAuthor: Someone\n\nmessage body\n"
	lines := Colorize(input, true)
	want := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i, l := range lines {
		if len(l) != 1 || l[0].Text != want[i] || l[0].Style != StylePlain {
			t.Fatalf("line %d=%v, want verbatim plain %q", i, l, want[i])
		}
	}
}
