package report

import (
	"fmt"
	"os"
	"path"

	"course-summarizer/internal/ident"
	"course-summarizer/internal/sortutil"
	"course-summarizer/internal/textutil"
	"course-summarizer/internal/walkwalk"
)

// BuildSummary walks dir and folds every collected file into a Summary for
// assignment n. When opts.Exts is empty the recognized source extensions are
// used. Files whose extension has no extractor are listed with no
// identifiers.
func BuildSummary(dir string, n int, opts walkwalk.Options) (Summary, error) {
	if len(opts.Exts) == 0 {
		opts.Exts = make(map[string]struct{})
		for _, ext := range ident.Extensions() {
			opts.Exts[ext] = struct{}{}
		}
	}
	files, err := walkwalk.CollectFiles(dir, opts)
	if err != nil {
		return Summary{}, fmt.Errorf("walk %s: %w", dir, err)
	}

	s := Summary{Assignment: n, Dir: dir, Files: make([]FileRecord, 0, len(files))}
	idents := make(map[string]struct{})
	langs := make(map[string]struct{})
	for _, f := range files {
		rec, err := visit(f)
		if err != nil {
			return Summary{}, err
		}
		sortutil.Union(idents, rec.Identifiers)
		if rec.Language != "" {
			langs[rec.Language] = struct{}{}
		}
		s.Files = append(s.Files, rec)
	}
	s.Identifiers = sortutil.SortedKeys(idents)
	s.Languages = sortutil.SortedKeys(langs)
	return s, nil
}

func visit(f walkwalk.FileInfo) (FileRecord, error) {
	data, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return FileRecord{}, fmt.Errorf("read %s: %w", f.RelPath, err)
	}
	lang, ids, _ := ident.ExtractFile(f.AbsPath, data)
	return FileRecord{
		RelPath:     f.RelPath,
		Name:        path.Base(f.RelPath),
		Lines:       textutil.CountLines(textutil.NormalizeUTF8LF(data)),
		Lang:        lang.String(),
		Language:    ident.DisplayName(f.AbsPath, data),
		Identifiers: ids,
	}, nil
}

