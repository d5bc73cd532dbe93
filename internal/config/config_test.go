package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, "csc344", cfg.Course.Dir)
	assert.Equal(t, 5, cfg.Course.Assignments)
	assert.Equal(t, "a", cfg.Course.Prefix)
	assert.Equal(t, []string{"html"}, cfg.Report.Formats)
	assert.Equal(t, "csc344.tar.gz", cfg.Archive.Name)
	assert.True(t, cfg.Archive.Enabled)
	assert.True(t, cfg.Mail.Enabled)
	assert.Equal(t, "mutt", cfg.Mail.Command)
	assert.Equal(t, "CSC344 Assignments", cfg.Mail.Subject)
	assert.Empty(t, cfg.Mail.To)
	assert.Equal(t, []string{".ml", ".clj", ".c", ".lp", ".py"}, cfg.Walk.Extensions)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, []string{"wc", "-l"}, cfg.LineCountArgv())
}

func TestLoadFileOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
course:
  dir: cs101
  assignments: 2
report:
  formats: [html, markdown]
  show_diff: true
mail:
  enabled: false
workers: 4
`))
	require.NoError(t, err)
	assert.Equal(t, "cs101", cfg.Course.Dir)
	assert.Equal(t, 2, cfg.Course.Assignments)
	assert.Equal(t, []string{"html", "markdown"}, cfg.Report.Formats)
	assert.True(t, cfg.Report.ShowDiff)
	assert.False(t, cfg.Mail.Enabled)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, filepath.Join("cs101", "a2"), cfg.AssignmentDir(2))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COURSESUM_COURSE_DIR", "from-env")
	t.Setenv("COURSESUM_WORKERS", "3")

	cfg, err := Load(writeConfig(t, "course:\n  dir: from-file\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Course.Dir)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "workers: 0\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "course: [unclosed\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty dir", func(c *Config) { c.Course.Dir = " " }, ErrNoCourseDir},
		{"zero assignments", func(c *Config) { c.Course.Assignments = 0 }, ErrInvalidAssignments},
		{"empty prefix", func(c *Config) { c.Course.Prefix = "" }, ErrNoAssignmentPrefix},
		{"negative workers", func(c *Config) { c.Workers = -1 }, ErrInvalidWorkers},
		{"bad format", func(c *Config) { c.Report.Formats = []string{"pdf"} }, ErrUnknownFormat},
		{"bad extension", func(c *Config) { c.Walk.Extensions = []string{"py"} }, ErrInvalidExtension},
		{"archive without name", func(c *Config) { c.Archive.Name = "" }, ErrNoArchiveName},
		{"archive disabled without name", func(c *Config) {
			c.Archive.Enabled = false
			c.Archive.Name = ""
		}, nil},
		{"mail without command", func(c *Config) { c.Mail.Command = "" }, ErrNoMailCommand},
		{"linecount without command", func(c *Config) { c.LineCount.Command = "  " }, ErrNoLineCountCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestXDGConfigFile(t *testing.T) {
	t.Parallel()

	p := XDGConfigFile()
	assert.Equal(t, "config.yaml", filepath.Base(p))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(p)))
}

func TestLoadLineCountCommandIgnoresSummarizerSettings(t *testing.T) {
	t.Setenv("COURSESUM_WORKERS", "0")

	path := writeConfig(t, "mail:\n  command: \"\"\nreport:\n  formats: [pdf]\nlinecount:\n  command: wc -l -w\n")
	argv, err := LoadLineCountCommand(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"wc", "-l", "-w"}, argv)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadLineCountCommandDefaultsAndEmpty(t *testing.T) {
	t.Parallel()

	argv, err := LoadLineCountCommand(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"wc", "-l"}, argv)

	_, err = LoadLineCountCommand(writeConfig(t, "linecount:\n  command: \"  \"\n"))
	assert.ErrorIs(t, err, ErrNoLineCountCommand)
}
