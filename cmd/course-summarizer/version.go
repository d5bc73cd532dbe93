package main

import (
	"github.com/spf13/cobra"

	"course-summarizer/internal/meta"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			meta.Fprint(cmd.OutOrStdout(), "course-summarizer")
		},
	}
}
