package ident

import (
	"regexp"
	"strings"

	"course-summarizer/internal/sortutil"
	"course-summarizer/internal/textutil"
)

var (
	cljBinding = regexp.MustCompile(`(?i)\b(defn|let|loop [^\[]*)(\s+(\S+))?`)
	cljVector  = regexp.MustCompile(`\[([^\[\]]+)\]`)
	cljWord    = regexp.MustCompile(`\b([^\s,:()\[\]]+)\b`)
)

// extractClojure collects the names bound by defn/let/loop forms and the
// symbols listed inside flat [...] vectors (parameters, let bindings).
func extractClojure(text string) []string {
	set := make(map[string]struct{})
	for _, line := range textutil.SplitLines(text) {
		for _, m := range cljBinding.FindAllStringSubmatch(line, -1) {
			if m[3] == "" {
				continue
			}
			name := strings.TrimLeft(strings.TrimSpace(m[3]), "[")
			set[name] = struct{}{}
		}
		for _, group := range cljVector.FindAllStringSubmatch(line, -1) {
			for _, w := range cljWord.FindAllStringSubmatch(group[1], -1) {
				word := w[1]
				if isDigits(word) || strings.HasPrefix(word, ":") ||
					strings.HasPrefix(word, "[") || strings.HasSuffix(word, "]") {
					continue
				}
				set[strings.TrimLeft(strings.TrimSpace(word), "[")] = struct{}{}
			}
		}
	}
	return sortutil.SortedKeys(set)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
