// Package walkwalk enumerates the files that feed the line counter and the
// assignment summaries.
package walkwalk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes a collected file.
type FileInfo struct {
	RelPath string // root-relative path with forward slashes
	AbsPath string // path usable with os.Open
	Size    int64  // size in bytes
	Ext     string // extension including dot, case preserved (e.g. ".py")
}

// Options selects which files CollectFiles returns.
type Options struct {
	// Exts is the set of extensions to keep. Empty keeps every regular file.
	Exts map[string]struct{}
	// Exclude skips any file or directory whose base name starts with one
	// of the keys.
	Exclude map[string]struct{}
	// UseGitignore honors <root>/.gitignore.
	UseGitignore bool
	// FollowSymlinks descends into symlinked directories. Links to regular
	// files are always kept.
	FollowSymlinks bool
	// Skip lists absolute paths that are never returned (e.g. outputs
	// written into the tree being walked).
	Skip []string
}

type walkState struct {
	opts     Options
	patterns []gitPattern
	skip     map[string]struct{}
	files    []FileInfo
}

// CollectFiles walks root recursively and returns matching regular files in
// walk order (lexical within each directory). Walk and stat errors abort the
// walk and are returned.
func CollectFiles(root string, opts Options) ([]FileInfo, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	ws := &walkState{opts: opts, skip: make(map[string]struct{}, len(opts.Skip))}
	for _, p := range opts.Skip {
		if a, err := filepath.Abs(p); err == nil {
			ws.skip[a] = struct{}{}
		}
	}
	if opts.UseGitignore {
		pats, err := parseGitignore(filepath.Join(abs, ".gitignore"))
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read .gitignore: %w", err)
		}
		ws.patterns = pats
	}
	if err := ws.walk(abs, ""); err != nil {
		return nil, err
	}
	return ws.files, nil
}

func (ws *walkState) walk(dir, relDir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = joinRel(relDir, filepath.ToSlash(rel))
		if ws.shouldSkip(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return ws.handleSymlink(path, rel)
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		ws.add(path, rel, info)
		return nil
	})
}

// handleSymlink keeps links to regular files and skips dangling links.
// WalkDir never follows links itself, so linked directories are walked with
// a nested call when FollowSymlinks is set.
func (ws *walkState) handleSymlink(path, rel string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	}
	if info.IsDir() {
		if !ws.opts.FollowSymlinks {
			return nil
		}
		return ws.walk(path, rel)
	}
	ws.add(path, rel, info)
	return nil
}

func (ws *walkState) add(path, rel string, info fs.FileInfo) {
	if !info.Mode().IsRegular() {
		return
	}
	if _, skip := ws.skip[path]; skip {
		return
	}
	ext := filepath.Ext(path)
	if len(ws.opts.Exts) > 0 {
		if _, ok := ws.opts.Exts[ext]; !ok {
			return
		}
	}
	ws.files = append(ws.files, FileInfo{
		RelPath: rel,
		AbsPath: path,
		Size:    info.Size(),
		Ext:     ext,
	})
}

func (ws *walkState) shouldSkip(rel string, isDir bool) bool {
	if hasExcludedPrefix(filepath.Base(rel), ws.opts.Exclude) {
		return true
	}
	return ws.opts.UseGitignore && matchGitignore(ws.patterns, rel, isDir)
}

func joinRel(parent, rel string) string {
	if parent == "" {
		return rel
	}
	return parent + "/" + rel
}

// hasExcludedPrefix reports whether base begins with any of the exclude keys.
func hasExcludedPrefix(base string, exclude map[string]struct{}) bool {
	for k := range exclude {
		if k != "" && strings.HasPrefix(base, k) {
			return true
		}
	}
	return false
}

// Entry is a direct child of a listed directory.
type Entry struct {
	Name string
	Path string
	Size int64
}

// ListRegular returns the regular files directly inside dir, sorted by name.
// Links to regular files are included with the size of their target.
// Subdirectories, dangling links and special files are left out.
func ListRegular(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(des))
	for _, d := range des {
		path := filepath.Join(dir, d.Name())
		var info fs.FileInfo
		switch {
		case d.Type().IsRegular():
			info, err = d.Info()
		case d.Type()&fs.ModeSymlink != 0:
			info, err = os.Stat(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		out = append(out, Entry{Name: d.Name(), Path: path, Size: info.Size()})
	}
	return out, nil
}
