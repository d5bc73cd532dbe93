// Package linecount reports the number of lines in every regular file
// directly inside a directory.
package linecount

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"course-summarizer/internal/textutil"
	"course-summarizer/internal/walkwalk"
)

// Counter returns the line count of one file.
type Counter interface {
	Count(ctx context.Context, path string) (int, error)
}

// DefaultCommand is the external line counter used by CommandCounter.
var DefaultCommand = []string{"wc", "-l"}

// CommandCounter runs an external tool with the file path appended and
// takes the first whitespace-separated field of its stdout as the count.
type CommandCounter struct {
	Argv []string // defaults to DefaultCommand
}

func (c CommandCounter) Count(ctx context.Context, path string) (int, error) {
	argv := c.Argv
	if len(argv) == 0 {
		argv = DefaultCommand
	}
	args := append(append([]string{}, argv[1:]...), path)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return 0, fmt.Errorf("%s %s: %w: %s", argv[0], path, err, msg)
		}
		return 0, fmt.Errorf("%s %s: %w", argv[0], path, err)
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s %s: empty output", argv[0], path)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%s %s: unexpected output %q: %w", argv[0], path, fields[0], err)
	}
	return n, nil
}

// NativeCounter counts newline bytes in-process, matching wc -l.
type NativeCounter struct{}

func (NativeCounter) Count(ctx context.Context, path string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return textutil.CountNewlines(data), nil
}

// Result is the count for one file.
type Result struct {
	Name  string
	Lines int
	Size  int64
}

// ErrNoCounter is returned when a nil Counter is passed.
var ErrNoCounter = errors.New("linecount: nil counter")

// Walk calls fn with the result for each regular file in dir, in name order.
// Links to regular files count as files. Directories, dangling links and
// special entries are skipped. The first error stops the walk.
func Walk(ctx context.Context, dir string, counter Counter, fn func(Result) error) error {
	if counter == nil {
		return ErrNoCounter
	}
	entries, err := walkwalk.ListRegular(dir)
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	for _, e := range entries {
		n, err := counter.Count(ctx, e.Path)
		if err != nil {
			return fmt.Errorf("count %s: %w", e.Name, err)
		}
		if err := fn(Result{Name: e.Name, Lines: n, Size: e.Size}); err != nil {
			return err
		}
	}
	return nil
}

// Run prints "<name>: <count> lines" for every regular file in dir.
// An empty directory prints nothing.
func Run(ctx context.Context, dir string, counter Counter, w io.Writer) error {
	return Walk(ctx, dir, counter, func(r Result) error {
		_, err := fmt.Fprintf(w, "%s: %d lines\n", r.Name, r.Lines)
		return err
	})
}

// Collect returns all results for dir.
func Collect(ctx context.Context, dir string, counter Counter) ([]Result, error) {
	var out []Result
	err := Walk(ctx, dir, counter, func(r Result) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
