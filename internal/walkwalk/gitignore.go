package walkwalk

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

type gitPattern struct {
	neg     bool // leading '!'
	dirOnly bool // trailing '/'
	rx      *regexp.Regexp
}

// parseGitignore compiles the subset of .gitignore syntax students use:
// comments, negation, root anchoring, directory-only patterns, '*', '?'
// and '**'.
func parseGitignore(path string) ([]gitPattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var res []gitPattern
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := gitPattern{}
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			p.neg = true
			line = strings.TrimSpace(rest)
			if line == "" {
				continue
			}
		}
		line, p.dirOnly = strings.CutSuffix(line, "/")
		line, anchored := strings.CutPrefix(line, "/")
		p.rx = compileGitGlob(line, anchored)
		res = append(res, p)
	}
	return res, s.Err()
}

func compileGitGlob(glob string, anchored bool) *regexp.Regexp {
	esc := regexp.QuoteMeta(glob)
	esc = strings.ReplaceAll(esc, `\*\*`, "\x00")
	esc = strings.ReplaceAll(esc, `\*`, "[^/]*")
	esc = strings.ReplaceAll(esc, `\?`, "[^/]")
	esc = strings.ReplaceAll(esc, "\x00", ".*")
	if anchored {
		return regexp.MustCompile("^" + esc + "$")
	}
	return regexp.MustCompile("(^|.*/)" + esc + "$")
}

// matchGitignore applies patterns in order; the last match wins.
func matchGitignore(pats []gitPattern, rel string, isDir bool) bool {
	ignored := false
	for _, p := range pats {
		if p.dirOnly && !isDir {
			continue
		}
		if p.rx.MatchString(rel) {
			ignored = !p.neg
		}
	}
	return ignored
}
