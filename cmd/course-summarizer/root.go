package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"course-summarizer/internal/config"
	"course-summarizer/internal/course"
	"course-summarizer/internal/log"
	"course-summarizer/internal/meta"
	"course-summarizer/internal/report"
)

// NewRootCmd creates the course-summarizer command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course-summarizer",
		Short: "Summarize, archive and mail a course directory",
		Long: `course-summarizer walks every assignment directory of a course, extracts
identifiers from C, Clojure, OCaml, Python and ASP sources, and writes
a<N>/summary_a<N>.html for each assignment plus index.html and course.yaml
at the course root. The course tree is then packed into a tar.gz archive and
sent as a mail attachment through mutt.

The recipient is read from standard input unless --to or mail.to is set.`,
		Version:       meta.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSummarize,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("config", "", "Config file (default .course-summarizer.yaml in . or $HOME)")

	f := cmd.Flags()
	f.String("dir", config.DefaultCourseDir, "Course directory")
	f.Int("assignments", config.DefaultAssignments, "Number of assignment directories (a1..aN)")
	f.String("to", "", "Recipient address (prompted when empty)")
	f.Bool("no-archive", false, "Skip the tar.gz archive (implies --no-mail)")
	f.Bool("no-mail", false, "Do not send the archive")
	f.Bool("markdown", false, "Also write summary_a<N>.md")
	f.Bool("show-diff", false, "Print a unified diff when a report changes")
	f.Int("workers", config.DefaultWorkers, "Assignments summarized concurrently")

	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(cmd.ErrOrStderr(), verbose)
	logger.Debug("configuration loaded", "dir", cfg.Course.Dir, "assignments", cfg.Course.Assignments,
		"workers", cfg.Workers, "archive", cfg.Archive.Enabled, "mail", cfg.Mail.Enabled)

	_, err = course.Run(cmd.Context(), cfg, course.Deps{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Logger: logger,
	})
	return err
}

// loadConfig reads the config file and environment, then applies the flags
// that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("dir") {
		cfg.Course.Dir, _ = f.GetString("dir")
	}
	if f.Changed("assignments") {
		cfg.Course.Assignments, _ = f.GetInt("assignments")
	}
	if f.Changed("to") {
		cfg.Mail.To, _ = f.GetString("to")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if v, _ := f.GetBool("no-archive"); v {
		cfg.Archive.Enabled = false
		cfg.Mail.Enabled = false
	}
	if v, _ := f.GetBool("no-mail"); v {
		cfg.Mail.Enabled = false
	}
	if v, _ := f.GetBool("markdown"); v && !hasFormat(cfg.Report.Formats, report.FormatMarkdown) {
		cfg.Report.Formats = append(cfg.Report.Formats, string(report.FormatMarkdown))
	}
	if v, _ := f.GetBool("show-diff"); v {
		cfg.Report.ShowDiff = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func hasFormat(formats []string, want report.Format) bool {
	for _, f := range formats {
		if report.Format(f) == want {
			return true
		}
	}
	return false
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
