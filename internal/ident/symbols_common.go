package ident

import (
	"path/filepath"

	"github.com/src-d/enry/v2"

	"course-summarizer/internal/textutil"
)

// recognized lists the handled extensions in the order they are advertised.
var recognized = []string{".ml", ".clj", ".c", ".lp", ".py"}

var extractors = map[Lang]extractFunc{
	LangC:       extractC,
	LangClojure: extractClojure,
	LangOCaml:   extractOCaml,
	LangPython:  extractPython,
	LangASP:     extractASP,
}

// Extensions returns a copy of the recognized file extensions.
func Extensions() []string {
	out := make([]string, len(recognized))
	copy(out, recognized)
	return out
}

// LangForExt maps a file extension (with leading dot) to its language.
// Matching is case-sensitive: ".C" and ".PY" are not recognized.
func LangForExt(ext string) Lang {
	switch ext {
	case ".c":
		return LangC
	case ".clj":
		return LangClojure
	case ".ml":
		return LangOCaml
	case ".py":
		return LangPython
	case ".lp":
		return LangASP
	default:
		return LangUnknown
	}
}

// Extract runs the extractor for lang over text. ok is false when lang has
// no extractor; the returned slice is then empty and callers skip the file.
func Extract(lang Lang, text string) (ids []string, ok bool) {
	fn, found := extractors[lang]
	if !found {
		return []string{}, false
	}
	return fn(text), true
}

// ExtractFile normalizes data and dispatches on the extension of path.
func ExtractFile(path string, data []byte) (Lang, []string, bool) {
	lang := LangForExt(filepath.Ext(path))
	text := string(textutil.NormalizeUTF8LF(data))
	ids, ok := Extract(lang, text)
	return lang, ids, ok
}

// DisplayName resolves the language of a file through linguist data and
// falls back to the extractor language name.
func DisplayName(path string, data []byte) string {
	if name := enry.GetLanguage(filepath.Base(path), data); name != "" {
		return name
	}
	return LangForExt(filepath.Ext(path)).Name()
}

// isWord reports whether c is an ASCII word character ([A-Za-z0-9_]).
func isWord(c byte) bool {
	return c == '_' || isIdentStart(c) || (c >= '0' && c <= '9')
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// atBoundary reports whether a word boundary (\b) holds at offset i of s.
func atBoundary(s string, i int) bool {
	before := i > 0 && isWord(s[i-1])
	after := i < len(s) && isWord(s[i])
	return before != after
}
