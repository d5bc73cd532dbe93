package ident

import (
	"regexp"
	"strings"

	"course-summarizer/internal/sortutil"
	"course-summarizer/internal/textutil"
)

var lpAtom = regexp.MustCompile(`\b[a-z]\w*`)

// extractASP handles clingo-style answer set programs: '%' starts a comment,
// predicates and constants start with a lowercase letter.
func extractASP(text string) []string {
	set := make(map[string]struct{})
	for _, line := range textutil.SplitLines(text) {
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		for _, m := range lpAtom.FindAllString(line, -1) {
			set[m] = struct{}{}
		}
	}
	return sortutil.SortedKeys(set)
}
