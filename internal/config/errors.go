package config

import "errors"

// Configuration validation errors returned by Config.Validate. Callers match
// them with errors.Is.
var (
	// ErrNoCourseDir is returned when course.dir is empty.
	ErrNoCourseDir = errors.New("no course directory configured")

	// ErrInvalidAssignments is returned when course.assignments is not positive.
	ErrInvalidAssignments = errors.New("invalid assignment count: must be positive")

	// ErrNoAssignmentPrefix is returned when course.prefix is empty.
	ErrNoAssignmentPrefix = errors.New("no assignment directory prefix configured")

	// ErrInvalidWorkers is returned when workers is not positive.
	ErrInvalidWorkers = errors.New("invalid worker count: must be positive")

	// ErrUnknownFormat is returned for a report format other than html or markdown.
	ErrUnknownFormat = errors.New("unknown report format")

	// ErrNoArchiveName is returned when archiving is enabled without a file name.
	ErrNoArchiveName = errors.New("archive enabled but archive.name is empty")

	// ErrNoMailCommand is returned when mailing is enabled without a mail client.
	ErrNoMailCommand = errors.New("mail enabled but mail.command is empty")

	// ErrInvalidExtension is returned for a walk extension without a leading dot.
	ErrInvalidExtension = errors.New("invalid extension: must start with '.'")

	// ErrNoLineCountCommand is returned when linecount.command is empty.
	ErrNoLineCountCommand = errors.New("no line count command configured")
)
