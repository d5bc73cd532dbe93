// Package report builds per-assignment summaries from a source tree and
// renders them, together with the course index and manifest, to files.
package report

import (
	"fmt"
	"path/filepath"
)

// FileRecord describes one visited source file.
type FileRecord struct {
	RelPath     string   // path relative to the assignment directory, '/'-separated
	Name        string   // base name
	Lines       int      // number of lines, counting an unterminated last line
	Lang        string   // extractor tag ("c", "py", ...); empty when unrecognized
	Language    string   // display language name
	Identifiers []string // sorted, unique
}

// Summary aggregates one assignment directory.
type Summary struct {
	Assignment  int
	Dir         string
	Files       []FileRecord // walk order
	Identifiers []string     // sorted union over Files
	Languages   []string     // sorted display names present
}

// SummaryFileName returns "summary_a<n>" + ext.
func SummaryFileName(n int, ext string) string {
	return fmt.Sprintf("summary_a%d%s", n, ext)
}

// HTMLPath is where the HTML summary of s is written.
func (s Summary) HTMLPath() string {
	return filepath.Join(s.Dir, SummaryFileName(s.Assignment, ".html"))
}

// MarkdownPath is where the Markdown summary of s is written.
func (s Summary) MarkdownPath() string {
	return filepath.Join(s.Dir, SummaryFileName(s.Assignment, ".md"))
}

// TotalLines sums the line counts of all files.
func (s Summary) TotalLines() int {
	total := 0
	for _, f := range s.Files {
		total += f.Lines
	}
	return total
}

// Format selects an output rendering for summaries.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)
