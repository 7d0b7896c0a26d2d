package highlight

// Language selects the keyword set and comment marker for the lexer
type Language int

const (
	LangNone Language = iota
	LangRust
	LangC
	LangPython
	LangJS
	LangGo
	LangShell
)

// ForExtension maps a file extension (without dot) to a language.
// Unknown extensions map to LangNone, which disables highlighting.
func ForExtension(ext string) Language {
	switch ext {
	case "rs":
		return LangRust
	case "c", "h", "hpp", "hh", "cpp", "cc", "cxx":
		return LangC
	case "py":
		return LangPython
	case "js", "jsx", "ts", "tsx":
		return LangJS
	case "go":
		return LangGo
	case "sh", "bash", "zsh":
		return LangShell
	default:
		return LangNone
	}
}

// commentMarker returns the line-comment marker for the language
func (l Language) commentMarker() string {
	switch l {
	case LangPython, LangShell:
		return "#"
	default:
		return "//"
	}
}

// singleQuoteStrings reports whether ' opens a string literal. Rust and
// C-family use single quotes for char literals, so only " counts there.
func (l Language) singleQuoteStrings() bool {
	switch l {
	case LangRust, LangC:
		return false
	default:
		return true
	}
}

func (l Language) keywords() map[string]bool {
	return keywordSets[l]
}

var keywordSets = map[Language]map[string]bool{
	LangRust: keywordSet(
		"as", "break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct",
		"super", "trait", "true", "type", "unsafe", "use", "where", "while",
		"async", "await", "dyn",
	),
	LangC: keywordSet(
		"auto", "break", "case", "char", "const", "continue", "default", "do",
		"double", "else", "enum", "extern", "float", "for", "goto", "if",
		"inline", "int", "long", "register", "restrict", "return", "short",
		"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
		"unsigned", "void", "volatile", "while", "namespace", "class",
		"template", "typename", "using", "public", "private", "protected",
		"virtual", "override", "constexpr", "nullptr", "true", "false",
	),
	LangPython: keywordSet(
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else", "except",
		"finally", "for", "from", "global", "if", "import", "in", "is",
		"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
		"while", "with", "yield",
	),
	LangJS: keywordSet(
		"break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "export", "extends", "finally",
		"for", "function", "if", "import", "in", "instanceof", "let", "new",
		"return", "super", "switch", "this", "throw", "try", "typeof", "var",
		"void", "while", "with", "yield", "await", "async", "enum",
		"interface", "type", "implements", "true", "false",
	),
	LangGo: keywordSet(
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var", "true", "false", "iota",
	),
	LangShell: keywordSet(
		"if", "then", "else", "elif", "fi", "for", "in", "do", "done", "case",
		"esac", "while", "until", "function", "select", "time", "coproc",
		"true", "false",
	),
}

func keywordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
