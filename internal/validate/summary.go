// Package validate checks assembled summaries before they are rendered. It
// aggregates every issue it finds into a single error.
package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"course-summarizer/internal/report"
	"course-summarizer/internal/sortutil"
)

// Summary validates a built assignment summary:
//
//   - Assignment >= 1 and Dir non-empty.
//   - Each file path is relative, '/'-separated, free of ".." segments and
//     listed once. A backslash is only a separator on Windows; elsewhere it
//     is an ordinary file name character.
//   - Line counts are non-negative.
//   - Per-file and aggregated identifier lists are sorted and unique.
func Summary(s report.Summary) error {
	var errs errlist

	if s.Assignment < 1 {
		errs.add("assignment number must be >= 1 (got %d)", s.Assignment)
	}
	if strings.TrimSpace(s.Dir) == "" {
		errs.add("a%d: directory must be non-empty", s.Assignment)
	}

	seen := make(map[string]struct{}, len(s.Files))
	for i, f := range s.Files {
		prefix := fmt.Sprintf("a%d files[%d] (%s)", s.Assignment, i, f.RelPath)
		checkRelPath(&errs, prefix, f.RelPath)
		if _, dup := seen[f.RelPath]; dup {
			errs.add("%s: duplicate file path", prefix)
		}
		seen[f.RelPath] = struct{}{}
		if f.Lines < 0 {
			errs.add("%s: lines must be >= 0 (got %d)", prefix, f.Lines)
		}
		if !sortutil.IsSortedUnique(f.Identifiers) {
			errs.add("%s: identifiers must be sorted and unique", prefix)
		}
	}
	if !sortutil.IsSortedUnique(s.Identifiers) {
		errs.add("a%d: identifiers must be sorted and unique", s.Assignment)
	}
	return errs.err()
}

// Index validates the links of the course index: one entry per assignment,
// each a relative '/'-separated path.
func Index(entries []report.IndexEntry) error {
	var errs errlist
	seen := make(map[int]struct{}, len(entries))
	for i, e := range entries {
		prefix := fmt.Sprintf("index[%d] (Assignment %d)", i, e.Assignment)
		checkRelPath(&errs, prefix, e.Href)
		if _, dup := seen[e.Assignment]; dup {
			errs.add("%s: duplicate assignment", prefix)
		}
		seen[e.Assignment] = struct{}{}
	}
	return errs.err()
}

func checkRelPath(errs *errlist, prefix, p string) {
	switch {
	case p == "":
		errs.add("%s: path must be non-empty", prefix)
	case filepath.IsAbs(p) || strings.HasPrefix(p, "/"):
		errs.add("%s: path must be relative, got %q", prefix, p)
	case filepath.Separator == '\\' && strings.Contains(p, `\`):
		errs.add("%s: path must use forward slashes", prefix)
	case hasDotDot(p):
		errs.add("%s: path must not contain '..' segments", prefix)
	}
}

func hasDotDot(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}

// errlist aggregates multiple validation issues into a single error.
type errlist struct {
	msgs []string
}

func (e *errlist) add(format string, args ...any) {
	e.msgs = append(e.msgs, fmt.Sprintf(format, args...))
}

func (e *errlist) err() error {
	if len(e.msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(e.msgs, "\n"))
}
