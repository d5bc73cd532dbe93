// Package config holds the settings shared by course-summarizer and
// linecount, loaded from defaults, an optional YAML file, COURSESUM_*
// environment variables and finally command-line flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"course-summarizer/internal/ident"
	"course-summarizer/internal/report"
)

// AppName names the XDG config subdirectory.
const AppName = "course-summarizer"

// Defaults.
const (
	DefaultCourseDir        = "csc344"
	DefaultAssignments      = 5
	DefaultAssignmentPrefix = "a"
	DefaultArchiveName      = "csc344.tar.gz"
	DefaultMailCommand      = "mutt"
	DefaultMailSubject      = "CSC344 Assignments"
	DefaultWorkers          = 1
	DefaultLineCountCommand = "wc -l"
)

// Config is the root configuration. Field tags use mapstructure for viper.
type Config struct {
	Course    CourseConfig    `mapstructure:"course"`
	Report    ReportConfig    `mapstructure:"report"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Mail      MailConfig      `mapstructure:"mail"`
	Walk      WalkConfig      `mapstructure:"walk"`
	Workers   int             `mapstructure:"workers"`
	LineCount LineCountConfig `mapstructure:"linecount"`
}

// CourseConfig locates the course tree.
type CourseConfig struct {
	Dir         string `mapstructure:"dir"`
	Assignments int    `mapstructure:"assignments"`
	Prefix      string `mapstructure:"prefix"`
}

// ReportConfig selects the generated report formats.
type ReportConfig struct {
	Formats  []string `mapstructure:"formats"`
	ShowDiff bool     `mapstructure:"show_diff"`
}

// ArchiveConfig controls the tarball step.
type ArchiveConfig struct {
	Name    string `mapstructure:"name"`
	Enabled bool   `mapstructure:"enabled"`
}

// MailConfig controls the mail step. An empty To means "ask on stdin".
type MailConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"`
	Subject string `mapstructure:"subject"`
	To      string `mapstructure:"to"`
}

// WalkConfig filters the files visited inside an assignment directory.
type WalkConfig struct {
	Extensions   []string `mapstructure:"extensions"`
	Exclude      []string `mapstructure:"exclude"`
	UseGitignore bool     `mapstructure:"use_gitignore"`
}

// LineCountConfig configures the linecount tool.
type LineCountConfig struct {
	Command string `mapstructure:"command"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Course: CourseConfig{
			Dir:         DefaultCourseDir,
			Assignments: DefaultAssignments,
			Prefix:      DefaultAssignmentPrefix,
		},
		Report:  ReportConfig{Formats: []string{string(report.FormatHTML)}},
		Archive: ArchiveConfig{Name: DefaultArchiveName, Enabled: true},
		Mail: MailConfig{
			Enabled: true,
			Command: DefaultMailCommand,
			Subject: DefaultMailSubject,
		},
		Walk:      WalkConfig{Extensions: ident.Extensions()},
		Workers:   DefaultWorkers,
		LineCount: LineCountConfig{Command: DefaultLineCountCommand},
	}
}

// XDGConfigFile returns the per-user config file path,
// e.g. ~/.config/course-summarizer/config.yaml on Linux.
func XDGConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// AssignmentDir returns the directory of assignment n.
func (c *Config) AssignmentDir(n int) string {
	return filepath.Join(c.Course.Dir, fmt.Sprintf("%s%d", c.Course.Prefix, n))
}

// LineCountArgv splits linecount.command into argv.
func (c *Config) LineCountArgv() []string {
	return strings.Fields(c.LineCount.Command)
}

// ReportFormats returns report.formats as typed formats.
func (c *Config) ReportFormats() []report.Format {
	out := make([]report.Format, 0, len(c.Report.Formats))
	for _, f := range c.Report.Formats {
		out = append(out, report.Format(f))
	}
	return out
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Course.Dir) == "" {
		return ErrNoCourseDir
	}
	if c.Course.Assignments <= 0 {
		return ErrInvalidAssignments
	}
	if c.Course.Prefix == "" {
		return ErrNoAssignmentPrefix
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	for _, f := range c.ReportFormats() {
		switch f {
		case report.FormatHTML, report.FormatMarkdown:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	for _, e := range c.Walk.Extensions {
		if !strings.HasPrefix(e, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, e)
		}
	}
	if c.Archive.Enabled && strings.TrimSpace(c.Archive.Name) == "" {
		return ErrNoArchiveName
	}
	if c.Mail.Enabled && strings.TrimSpace(c.Mail.Command) == "" {
		return ErrNoMailCommand
	}
	if len(c.LineCountArgv()) == 0 {
		return ErrNoLineCountCommand
	}
	return nil
}
