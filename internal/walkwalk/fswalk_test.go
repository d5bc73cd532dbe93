package walkwalk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func relPaths(files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestCollectFilesFiltersByExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "b.py", "x = 1\n")
	writeFile(t, root, "a.c", "int a;\n")
	writeFile(t, root, "notes.txt", "skip me\n")
	writeFile(t, root, "sub/deep.ml", "let x = 1\n")
	writeFile(t, root, "sub/upper.C", "int b;\n")

	files, err := CollectFiles(root, Options{Exts: map[string]struct{}{".c": {}, ".py": {}, ".ml": {}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.py", "sub/deep.ml"}, relPaths(files))
	assert.Equal(t, ".ml", files[2].Ext)
	assert.Equal(t, int64(len("let x = 1\n")), files[2].Size)
}

func TestCollectFilesExcludeAndSkip(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "keep.py", "a\n")
	writeFile(t, root, ".git/config.py", "a\n")
	writeFile(t, root, "__pycache__/x.py", "a\n")
	writeFile(t, root, "out.py", "a\n")

	files, err := CollectFiles(root, Options{
		Exclude: map[string]struct{}{".git": {}, "__pycache__": {}},
		Skip:    []string{filepath.Join(root, "out.py")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.py"}, relPaths(files))
}

func TestCollectFilesGitignore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, ".gitignore", "# build output\nbuild/\n*.tmp.py\n!keep.tmp.py\n/top.c\n")
	writeFile(t, root, "build/gen.c", "x\n")
	writeFile(t, root, "src/drop.tmp.py", "x\n")
	writeFile(t, root, "src/keep.tmp.py", "x\n")
	writeFile(t, root, "top.c", "x\n")
	writeFile(t, root, "src/top.c", "x\n")

	files, err := CollectFiles(root, Options{
		Exts:         map[string]struct{}{".c": {}, ".py": {}},
		UseGitignore: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/keep.tmp.py", "src/top.c"}, relPaths(files))
}

func TestCollectFilesMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(filepath.Join(t.TempDir(), "nope"), Options{})
	assert.Error(t, err)
}

func TestListRegular(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "b.txt", "1\n2\n")
	writeFile(t, root, "a.txt", "")
	writeFile(t, root, "sub/c.txt", "nested\n")

	entries, err := ListRegular(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "b.txt", entries[1].Name)
	assert.Equal(t, int64(4), entries[1].Size)
	assert.Equal(t, filepath.Join(root, "b.txt"), entries[1].Path)

	empty, err := ListRegular(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ListRegular(filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestCollectFilesSymlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "real.py", "x = 1\n")
	writeFile(t, root, "sub/inner.py", "y = 2\n")
	symlinkOrSkip(t, filepath.Join(root, "real.py"), filepath.Join(root, "link.py"))
	symlinkOrSkip(t, filepath.Join(root, "sub"), filepath.Join(root, "linkdir"))
	symlinkOrSkip(t, filepath.Join(root, "gone.py"), filepath.Join(root, "dangling.py"))

	files, err := CollectFiles(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"link.py", "real.py", "sub/inner.py"}, relPaths(files))

	files, err = CollectFiles(root, Options{FollowSymlinks: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"link.py", "linkdir/inner.py", "real.py", "sub/inner.py"}, relPaths(files))
}

func TestListRegularFollowsFileLinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.txt", "1\n2\n3\n")
	writeFile(t, root, "sub/c.txt", "nested\n")
	symlinkOrSkip(t, filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt"))
	symlinkOrSkip(t, filepath.Join(root, "sub"), filepath.Join(root, "d"))
	symlinkOrSkip(t, filepath.Join(root, "missing"), filepath.Join(root, "e.txt"))

	entries, err := ListRegular(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "b.txt", entries[1].Name)
	assert.Equal(t, int64(6), entries[1].Size)
}
