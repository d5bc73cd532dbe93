// Package meta reports build metadata for the command-line tools.
package meta

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set at build time via -ldflags "-X course-summarizer/internal/meta.version=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

// Version returns the ldflags version, else the module version from build
// info, else "(devel)".
func Version() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// Commit returns the short VCS revision or "unknown".
func Commit() string {
	if commit != "" {
		return commit
	}
	rev := setting("vcs.revision")
	if len(rev) > 7 {
		return rev[:7]
	}
	if rev == "" {
		return "unknown"
	}
	return rev
}

// Date returns the VCS commit time or "unknown".
func Date() string {
	if date != "" {
		return date
	}
	if t := setting("vcs.time"); t != "" {
		return t
	}
	return "unknown"
}

func setting(key string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// Fprint writes the version block for the named program.
func Fprint(w io.Writer, program string) {
	fmt.Fprintf(w, "%s version %s\n", program, Version())
	fmt.Fprintf(w, "  commit: %s\n", Commit())
	fmt.Fprintf(w, "  built:  %s\n", Date())
}
