package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"course-summarizer/internal/config"
	"course-summarizer/internal/linecount"
	"course-summarizer/internal/log"
	"course-summarizer/internal/meta"
)

// NewRootCmd creates the linecount command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linecount <dir>",
		Short: "Print the line count of each file in a directory",
		Long: `linecount lists the regular files directly inside <dir> (subdirectories
are not descended) and prints "<name>: <count> lines" for each one. Counts come
from "wc -l" unless --native or --command says otherwise.`,
		Version:       meta.Version(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLineCount,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().String("config", "", "Config file (default .course-summarizer.yaml in . or $HOME)")
	cmd.Flags().Bool("native", false, "Count newlines in-process instead of running a command")
	cmd.Flags().Bool("table", false, "Print a table with sizes and totals")
	cmd.Flags().String("command", "", `Line counting command (default from config, "wc -l")`)
	return cmd
}

func runLineCount(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(cmd.ErrOrStderr(), verbose)

	counter, err := newCounter(cmd)
	if err != nil {
		return err
	}
	logger.Debug("counting lines", "dir", args[0], "counter", fmt.Sprintf("%T", counter))

	if table, _ := cmd.Flags().GetBool("table"); table {
		results, err := linecount.Collect(cmd.Context(), args[0], counter)
		if err != nil {
			return err
		}
		return linecount.WriteTable(cmd.OutOrStdout(), results)
	}
	return linecount.Run(cmd.Context(), args[0], counter, cmd.OutOrStdout())
}

func newCounter(cmd *cobra.Command) (linecount.Counter, error) {
	if native, _ := cmd.Flags().GetBool("native"); native {
		return linecount.NativeCounter{}, nil
	}
	if command, _ := cmd.Flags().GetString("command"); command != "" {
		argv := strings.Fields(command)
		if len(argv) == 0 {
			return nil, config.ErrNoLineCountCommand
		}
		return linecount.CommandCounter{Argv: argv}, nil
	}
	path, _ := cmd.Flags().GetString("config")
	argv, err := config.LoadLineCountCommand(path)
	if err != nil {
		return nil, err
	}
	return linecount.CommandCounter{Argv: argv}, nil
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
