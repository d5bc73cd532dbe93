// Package course runs the full summarize, archive and mail pipeline over a
// course directory.
package course

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"course-summarizer/internal/bundle"
	"course-summarizer/internal/config"
	"course-summarizer/internal/mailer"
	"course-summarizer/internal/report"
	"course-summarizer/internal/validate"
	"course-summarizer/internal/walkwalk"
)

// ErrNoArchiveToMail is returned when mail is enabled but archiving is not.
var ErrNoArchiveToMail = errors.New("mail enabled but archive disabled: nothing to attach")

// Deps are the process-facing collaborators of Run. Zero values fall back
// to the real implementations and os streams.
type Deps struct {
	Sender  mailer.Sender
	Stdin   io.Reader
	Stdout  io.Writer
	DiffOut io.Writer
	Logger  *slog.Logger
}

func (d Deps) withDefaults(cfg *config.Config) Deps {
	if d.Sender == nil {
		d.Sender = mailer.CommandSender{Command: cfg.Mail.Command, Subject: cfg.Mail.Subject}
	}
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.DiffOut == nil {
		d.DiffOut = d.Stdout
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// Result reports what Run produced.
type Result struct {
	Summaries []report.Summary
	Written   []string
	Archive   string
	Stats     bundle.Stats
	Recipient string
	Mailed    bool
}

// Run builds and writes every assignment summary, the index and the
// manifest, then archives the course directory and mails the archive.
// Steps run in that order and the first failure stops the run.
func Run(ctx context.Context, cfg *config.Config, deps Deps) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mail.Enabled && !cfg.Archive.Enabled {
		return nil, ErrNoArchiveToMail
	}
	deps = deps.withDefaults(cfg)
	log := deps.Logger
	res := &Result{}

	sums, err := BuildSummaries(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res.Summaries = sums

	w := &report.Writer{ShowDiff: cfg.Report.ShowDiff, DiffOut: deps.DiffOut, Logger: log}
	for _, s := range sums {
		if err := validate.Summary(s); err != nil {
			return res, fmt.Errorf("assignment %d: %w", s.Assignment, err)
		}
		paths, err := w.WriteSummary(s, cfg.ReportFormats())
		res.Written = append(res.Written, paths...)
		if err != nil {
			return res, fmt.Errorf("assignment %d: %w", s.Assignment, err)
		}
		log.Info("summary written", "assignment", s.Assignment,
			"files", len(s.Files), "lines", s.TotalLines(), "identifiers", len(s.Identifiers))
		color.New(color.FgGreen).Fprintf(deps.Stdout, "assignment %d: %d files, %d lines, %d identifiers\n",
			s.Assignment, len(s.Files), s.TotalLines(), len(s.Identifiers))
	}

	entries, err := report.IndexEntries(cfg.Course.Dir, sums)
	if err != nil {
		return res, err
	}
	if err := validate.Index(entries); err != nil {
		return res, fmt.Errorf("index: %w", err)
	}
	index, err := w.WriteIndex(cfg.Course.Dir, sums)
	if err != nil {
		return res, err
	}
	manifest, err := w.WriteManifest(cfg.Course.Dir, sums)
	if err != nil {
		return res, err
	}
	res.Written = append(res.Written, index, manifest)
	log.Info("index written", "path", index, "manifest", manifest)

	if !cfg.Archive.Enabled {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	st, err := bundle.WriteTarGz(cfg.Archive.Name, cfg.Course.Dir)
	if err != nil {
		return res, err
	}
	res.Archive, res.Stats = cfg.Archive.Name, st
	log.Info("archive written", "path", cfg.Archive.Name, "files", st.Files, "size", st.Size)
	color.New(color.FgCyan).Fprintf(deps.Stdout, "archive %s: %d files, %s\n",
		cfg.Archive.Name, st.Files, humanize.Bytes(uint64(st.Size)))

	if !cfg.Mail.Enabled {
		return res, nil
	}
	to := cfg.Mail.To
	if to == "" {
		if to, err = mailer.Prompt(deps.Stdin, deps.Stdout); err != nil {
			return res, err
		}
	}
	res.Recipient = to
	if err := deps.Sender.Send(ctx, to, cfg.Archive.Name); err != nil {
		return res, fmt.Errorf("send mail: %w", err)
	}
	res.Mailed = true
	log.Info("mail sent", "to", to, "attachment", cfg.Archive.Name)
	return res, nil
}

// BuildSummaries builds the summaries of assignments 1..cfg.Course.Assignments
// with at most cfg.Workers running at once. The result is in assignment order.
func BuildSummaries(ctx context.Context, cfg *config.Config) ([]report.Summary, error) {
	opts := WalkOptions(cfg)
	sums := make([]report.Summary, cfg.Course.Assignments)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i := range sums {
		n := i + 1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := report.BuildSummary(cfg.AssignmentDir(n), n, opts)
			if err != nil {
				return fmt.Errorf("assignment %d: %w", n, err)
			}
			sums[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}

// WalkOptions converts the walk section of cfg.
func WalkOptions(cfg *config.Config) walkwalk.Options {
	opts := walkwalk.Options{
		Exts:         make(map[string]struct{}, len(cfg.Walk.Extensions)),
		Exclude:      make(map[string]struct{}, len(cfg.Walk.Exclude)),
		UseGitignore: cfg.Walk.UseGitignore,
	}
	for _, e := range cfg.Walk.Extensions {
		opts.Exts[e] = struct{}{}
	}
	for _, e := range cfg.Walk.Exclude {
		opts.Exclude[e] = struct{}{}
	}
	return opts
}
