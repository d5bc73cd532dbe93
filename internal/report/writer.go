package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"course-summarizer/internal/diff"
)

// Writer persists rendered reports. When ShowDiff is set and a target file
// already exists, the unified diff between the old and new content is
// written to DiffOut.
type Writer struct {
	ShowDiff bool
	DiffOut  io.Writer
	Logger   *slog.Logger
}

func (w *Writer) logger() *slog.Logger {
	if w == nil || w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// WriteSummary renders s in each requested format next to its sources and
// returns the written paths.
func (w *Writer) WriteSummary(s Summary, formats []Format) ([]string, error) {
	var written []string
	for _, f := range formats {
		var (
			path string
			body []byte
			err  error
		)
		switch f {
		case FormatHTML:
			path = s.HTMLPath()
			body, err = RenderSummaryHTML(s)
		case FormatMarkdown:
			path = s.MarkdownPath()
			body, err = RenderSummaryMarkdown(s)
		default:
			return written, fmt.Errorf("unknown report format %q", f)
		}
		if err != nil {
			return written, err
		}
		if err := w.WriteFile(path, body); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteIndex writes <courseDir>/index.html linking every summary.
func (w *Writer) WriteIndex(courseDir string, sums []Summary) (string, error) {
	entries, err := IndexEntries(courseDir, sums)
	if err != nil {
		return "", err
	}
	body, err := RenderIndexHTML(entries)
	if err != nil {
		return "", err
	}
	path := filepath.Join(courseDir, "index.html")
	return path, w.WriteFile(path, body)
}

// WriteManifest writes <courseDir>/course.yaml.
func (w *Writer) WriteManifest(courseDir string, sums []Summary) (string, error) {
	m, err := BuildManifest(courseDir, sums)
	if err != nil {
		return "", err
	}
	body, err := RenderManifest(m)
	if err != nil {
		return "", err
	}
	path := filepath.Join(courseDir, ManifestName)
	return path, w.WriteFile(path, body)
}

// WriteFile replaces path with body atomically: the data goes to a temp
// file in the same directory which is then renamed over the target.
func (w *Writer) WriteFile(path string, body []byte) error {
	old, err := os.ReadFile(path)
	switch {
	case err == nil:
		w.reportDiff(path, old, body)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	w.logger().Debug("wrote report", "path", path, "bytes", len(body))
	return nil
}

func (w *Writer) reportDiff(path string, old, body []byte) {
	if w == nil || !w.ShowDiff {
		return
	}
	patch, oversize := diff.Unified(path+" (previous)", path, old, body, diff.Options{MaxBytes: 1 << 20})
	if patch == "" {
		w.logger().Debug("report unchanged", "path", path)
		return
	}
	w.logger().Debug("report changed", "path", path, "oversize", oversize)
	if w.DiffOut != nil {
		_, _ = io.WriteString(w.DiffOut, patch)
	}
}
