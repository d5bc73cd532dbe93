package ident

import (
	"regexp"
	"strings"

	"course-summarizer/internal/sortutil"
	"course-summarizer/internal/textutil"
)

var mlWord = regexp.MustCompile(`\b[a-zA-Z_][\w']+\b`)

// extractOCaml tracks (* ... *) comments per line: a line that opens a
// comment starts skipping, the line that closes it is skipped as well.
// Lines containing a string literal are ignored entirely.
func extractOCaml(text string) []string {
	set := make(map[string]struct{})
	inComment := false
	for _, line := range textutil.SplitLines(text) {
		if strings.Contains(line, "(*") {
			inComment = true
		}
		if strings.Contains(line, "*)") {
			inComment = false
			continue
		}
		if inComment || strings.Contains(line, `"`) {
			continue
		}
		for _, m := range mlWord.FindAllString(line, -1) {
			set[m] = struct{}{}
		}
	}
	return sortutil.SortedKeys(set)
}
