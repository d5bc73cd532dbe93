package ident

import (
	"regexp"
	"strings"

	"course-summarizer/internal/sortutil"
	"course-summarizer/internal/textutil"
)

var cLineComment = regexp.MustCompile(`//.*$`)

// extractC scans C source line by line. After dropping "//" comments it
// collects names that look like declarations ("[struct] name" followed by
// whitespace, '[' or '(') or calls ("name(").
//
// RE2 has no lookahead, so the trailing-context checks are done by hand in
// matchCDecl and matchCCall.
func extractC(text string) []string {
	set := make(map[string]struct{})
	for _, line := range textutil.SplitLines(text) {
		line = strings.TrimSpace(cLineComment.ReplaceAllString(line, ""))
		for pos := 0; pos < len(line); {
			if end, name, ok := matchCDecl(line, pos); ok {
				set[name] = struct{}{}
				pos = end
				continue
			}
			if end, name, ok := matchCCall(line, pos); ok {
				set[name] = struct{}{}
				pos = end
				continue
			}
			pos++
		}
	}
	return sortutil.SortedKeys(set)
}

// matchCDecl matches \b(?:struct)?\s*NAME when NAME is followed by
// whitespace, '[' or '('. The "struct" prefix is tried first, mirroring
// backtracking order.
func matchCDecl(s string, pos int) (int, string, bool) {
	if !atBoundary(s, pos) {
		return 0, "", false
	}
	if strings.HasPrefix(s[pos:], "struct") {
		if end, name, ok := cDeclAt(s, pos+len("struct")); ok {
			return end, name, true
		}
	}
	return cDeclAt(s, pos)
}

func cDeclAt(s string, i int) (int, string, bool) {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start, end := identAt(s, i)
	if end == start || end >= len(s) {
		return 0, "", false
	}
	if c := s[end]; isSpace(c) || c == '[' || c == '(' {
		return end, s[start:end], true
	}
	return 0, "", false
}

// matchCCall matches NAME immediately followed by '(' without requiring a
// word boundary before NAME.
func matchCCall(s string, pos int) (int, string, bool) {
	start, end := identAt(s, pos)
	if end == start || end >= len(s) || s[end] != '(' {
		return 0, "", false
	}
	return end, s[start:end], true
}

// identAt returns the bounds of the longest [A-Za-z_][A-Za-z0-9_]* run
// starting at i; start == end when none starts there.
func identAt(s string, i int) (int, int) {
	if i >= len(s) || !isIdentStart(s[i]) {
		return i, i
	}
	j := i + 1
	for j < len(s) && isWord(s[j]) {
		j++
	}
	return i, j
}
