package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// courseTree builds <tmp>/csc344 with two assignments and an empty config
// file so the user's own configuration is never read.
func courseTree(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	work := t.TempDir()
	dir = filepath.Join(work, "csc344")
	for rel, body := range map[string]string{
		"a1/main.c":  "int main() { return 0; }\n",
		"a2/prog.py": "def run(x):\n    return x\n",
	} {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	cfgPath = filepath.Join(work, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("archive:\n  name: "+filepath.Join(work, "csc344.tar.gz")+"\n"), 0o644))
	return dir, cfgPath
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	assert.Equal(t, "course-summarizer", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Version)
	assert.True(t, cmd.SilenceUsage)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	for _, name := range []string{"dir", "assignments", "to", "no-archive", "no-mail", "markdown", "show-diff", "workers"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	dir := cmd.Flags().Lookup("dir")
	assert.Equal(t, "csc344", dir.DefValue)
}

func TestSummarizeWithoutArchive(t *testing.T) {
	t.Parallel()

	dir, cfgPath := courseTree(t)
	out, _, err := execute(t, "", "--config", cfgPath, "--dir", dir, "--assignments", "2", "--no-archive", "--markdown")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "a1", "summary_a1.html"))
	assert.FileExists(t, filepath.Join(dir, "a2", "summary_a2.html"))
	assert.FileExists(t, filepath.Join(dir, "a2", "summary_a2.md"))
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(index), "<li>"))
	assert.Contains(t, out, "assignment 2:")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "csc344.tar.gz"))
}

func TestSummarizeMailsArchive(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("shell script mail client")
	}

	dir, cfgPath := courseTree(t)
	work := filepath.Dir(dir)
	record := filepath.Join(work, "mutt.args")
	mutt := filepath.Join(work, "mutt")
	require.NoError(t, os.WriteFile(mutt,
		[]byte("#!/bin/sh\nfor a in \"$@\"; do echo \"$a\" >> "+record+"; done\n"), 0o755))
	archive := filepath.Join(work, "csc344.tar.gz")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("archive:\n  name: "+archive+"\nmail:\n  command: "+mutt+"\n"), 0o644))

	out, _, err := execute(t, "student@example.edu\n", "--config", cfgPath, "--dir", dir, "--assignments", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the recipient's email address: ")
	assert.FileExists(t, archive)

	args, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "-s\nCSC344 Assignments\n-a\n"+archive+"\n--\nstudent@example.edu\n", string(args))
}

func TestSummarizeMissingAssignment(t *testing.T) {
	t.Parallel()

	dir, cfgPath := courseTree(t)
	_, _, err := execute(t, "", "--config", cfgPath, "--dir", dir, "--assignments", "3", "--no-archive")
	assert.Error(t, err)
}

func TestSummarizeRejectsBadFlags(t *testing.T) {
	t.Parallel()

	_, cfgPath := courseTree(t)
	_, _, err := execute(t, "", "--config", cfgPath, "--workers", "0", "--no-archive")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--config", cfgPath, "unexpected")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "course-summarizer version")
	assert.Contains(t, out, "commit:")
}
