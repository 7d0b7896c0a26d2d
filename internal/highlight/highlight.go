// Package highlight turns raw unified-diff text into styled lines. It
// carries a deliberately small single-line lexer: strings, numbers,
// keywords and trailing line comments, no cross-line state. Malformed
// input never fails; anything unrecognized passes through as plain text.
package highlight

// Code lexes one line of code into styled spans. An unknown language
// returns the whole line as a single plain span.
func Code(line string, lang Language) []Span {
	if lang == LangNone {
		return []Span{{Text: line, Style: StylePlain}}
	}

	runes := []rune(line)
	code := runes
	var comment []rune
	if idx := commentStart(runes, lang); idx >= 0 {
		code, comment = runes[:idx], runes[idx:]
	}

	spans := tokenize(code, lang)
	if comment != nil {
		spans = append(spans, Span{Text: string(comment), Style: StyleComment})
	}
	return spans
}

// commentStart locates the language's line-comment marker, skipping
// occurrences inside string literals so `echo "a#b" # c` splits at the
// second hash, not the first.
func commentStart(line []rune, lang Language) int {
	marker := []rune(lang.commentMarker())
	inString := false
	var quote rune
	for i, c := range line {
		if inString {
			if c == quote && line[i-1] != '\\' {
				inString = false
			}
			continue
		}
		if c == '"' || (c == '\'' && lang.singleQuoteStrings()) {
			inString = true
			quote = c
			continue
		}
		if c == marker[0] && (len(marker) == 1 || (i+1 < len(line) && line[i+1] == marker[1])) {
			return i
		}
	}
	return -1
}

// tokenize runs the single left-to-right pass over the code part of a
// line. No backtracking: each branch consumes a maximal run.
func tokenize(code []rune, lang Language) []Span {
	keywords := lang.keywords()
	var spans []Span
	i := 0
	for i < len(code) {
		c := code[i]
		switch {
		case c == '"' || (c == '\'' && lang.singleQuoteStrings()):
			// String literal; an unterminated one extends to end of line.
			j := i + 1
			for j < len(code) {
				closed := code[j] == c && code[j-1] != '\\'
				j++
				if closed {
					break
				}
			}
			spans = append(spans, Span{Text: string(code[i:j]), Style: StyleString})
			i = j

		case c >= '0' && c <= '9':
			// Digit+dot run only; no exponents, signs or hex.
			j := i + 1
			for j < len(code) && (code[j] >= '0' && code[j] <= '9' || code[j] == '.') {
				j++
			}
			spans = append(spans, Span{Text: string(code[i:j]), Style: StyleNumber})
			i = j

		case isIdentRune(c):
			j := i + 1
			for j < len(code) && isIdentRune(code[j]) {
				j++
			}
			tok := string(code[i:j])
			style := StylePlain
			if keywords[tok] {
				style = StyleKeyword
			}
			spans = append(spans, Span{Text: tok, Style: style})
			i = j

		default:
			spans = append(spans, Span{Text: string(c), Style: StylePlain})
			i++
		}
	}
	return spans
}

func isIdentRune(c rune) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
