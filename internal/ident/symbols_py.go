package ident

import (
	"regexp"

	"course-summarizer/internal/sortutil"
)

var (
	pyComment     = regexp.MustCompile(`#.*`)
	pyDoubleQuote = regexp.MustCompile(`".*?"`)
	pySingleQuote = regexp.MustCompile(`'.*?'`)
	pyName        = regexp.MustCompile(`\b[a-z][a-zA-Z0-9_]*\b`)
)

// extractPython strips comments and single-line string literals, then keeps
// every lowercase-initial word longer than one character.
func extractPython(text string) []string {
	text = pyComment.ReplaceAllString(text, "")
	text = pyDoubleQuote.ReplaceAllString(text, "")
	text = pySingleQuote.ReplaceAllString(text, "")

	set := make(map[string]struct{})
	for _, m := range pyName.FindAllString(text, -1) {
		if len(m) > 1 {
			set[m] = struct{}{}
		}
	}
	return sortutil.SortedKeys(set)
}
