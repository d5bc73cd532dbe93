package textutil

import "bytes"

// NormalizeUTF8LF converts CRLF to LF and ensures the output is valid UTF-8
// by replacing invalid byte sequences with the Unicode replacement character.
func NormalizeUTF8LF(b []byte) []byte {
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	b = bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
	return bytes.ToValidUTF8(b, []byte("\uFFFD"))
}

// CountNewlines returns the number of '\n' bytes in b. This is the figure
// reported by `wc -l`.
func CountNewlines(b []byte) int {
	return bytes.Count(b, []byte("\n"))
}

// CountLines returns the number of lines in b, counting a trailing line that
// lacks a terminating newline. An empty input has zero lines.
func CountLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := CountNewlines(b)
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}

// SplitLines splits text into lines without their terminators. A trailing
// newline does not produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, 64)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
