// Package ident extracts identifier-like tokens from source files using
// per-language regular-expression heuristics. The scanners are approximate:
// keywords, literals and fragments are sometimes reported and some real
// identifiers are missed.
package ident

// Lang is a coarse language tag selecting the extractor for a file.
type Lang int

const (
	LangUnknown Lang = iota
	LangC
	LangClojure
	LangOCaml
	LangPython
	LangASP
)

// String returns the short tag for l ("c", "clj", "ml", "py", "lp").
func (l Lang) String() string {
	switch l {
	case LangC:
		return "c"
	case LangClojure:
		return "clj"
	case LangOCaml:
		return "ml"
	case LangPython:
		return "py"
	case LangASP:
		return "lp"
	default:
		return ""
	}
}

// Name is the human-readable language name used when linguist data does not
// recognize a file.
func (l Lang) Name() string {
	switch l {
	case LangC:
		return "C"
	case LangClojure:
		return "Clojure"
	case LangOCaml:
		return "OCaml"
	case LangPython:
		return "Python"
	case LangASP:
		return "Answer Set Programming"
	default:
		return ""
	}
}

// extractFunc turns source text into a sorted, duplicate-free token list.
type extractFunc func(text string) []string
