// Package log builds the slog loggers used by both commands.
//
// Records pass through MaskingHandler, which replaces email addresses with a
// masked form before they reach the underlying handler, so a recipient
// address typed at the prompt never lands verbatim in a shared log:
//
//	logger := log.New(os.Stderr, verbose)
//	logger.Info("mail sent", "to", "student@example.edu") // to=s***@example.edu
package log
