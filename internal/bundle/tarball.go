// Package bundle packs a course directory into a gzip-compressed tarball
// suitable for mailing.
//
// Entries are written in walk order with '/'-separated names rooted at the
// base name of the source directory, so extracting the archive recreates the
// directory itself (e.g. csc344/a1/...).
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Stats reports what WriteTarGz archived.
type Stats struct {
	Files int
	Dirs  int
	Bytes int64 // uncompressed payload
	Size  int64 // size of the archive on disk
}

// WriteTarGz archives srcDir into outPath. Symlinks are stored as links,
// other special files are skipped. If outPath lies inside srcDir it is not
// archived. The archive is written to a temp file and renamed into place.
func WriteTarGz(outPath, srcDir string) (Stats, error) {
	var st Stats

	srcAbs, err := filepath.Abs(srcDir)
	if err != nil {
		return st, err
	}
	info, err := os.Stat(srcAbs)
	if err != nil {
		return st, err
	}
	if !info.IsDir() {
		return st, fmt.Errorf("%s is not a directory", srcDir)
	}
	outAbs, err := filepath.Abs(outPath)
	if err != nil {
		return st, err
	}
	if err := os.MkdirAll(filepath.Dir(outAbs), 0o755); err != nil {
		return st, err
	}

	f, err := os.CreateTemp(filepath.Dir(outAbs), ".tmp-"+filepath.Base(outAbs)+"-")
	if err != nil {
		return st, err
	}
	tmp := f.Name()
	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmp)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	root := filepath.Base(srcAbs)

	walkErr := filepath.WalkDir(srcAbs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == outAbs || path == tmp {
			return nil
		}
		rel, err := filepath.Rel(srcAbs, path)
		if err != nil {
			return err
		}
		name := SanitizePath(filepath.Join(root, rel))
		return addEntry(tw, path, name, d, &st)
	})
	if walkErr != nil {
		cleanup()
		return st, fmt.Errorf("archive %s: %w", srcDir, walkErr)
	}
	if err := tw.Close(); err != nil {
		cleanup()
		return st, err
	}
	if err := gz.Close(); err != nil {
		cleanup()
		return st, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return st, err
	}
	if err := os.Rename(tmp, outAbs); err != nil {
		_ = os.Remove(tmp)
		return st, err
	}
	if fi, err := os.Stat(outAbs); err == nil {
		st.Size = fi.Size()
	}
	return st, nil
}

func addEntry(tw *tar.Writer, path, name string, d fs.DirEntry, st *Stats) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	var link string
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		if link, err = os.Readlink(path); err != nil {
			return err
		}
	case info.IsDir(), info.Mode().IsRegular():
	default:
		return nil
	}

	hdr, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	hdr.Name = name
	if info.IsDir() {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	switch {
	case info.IsDir():
		st.Dirs++
		return nil
	case !info.Mode().IsRegular():
		return nil
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()
	n, err := io.Copy(tw, src)
	if err != nil {
		return err
	}
	st.Files++
	st.Bytes += n
	return nil
}
