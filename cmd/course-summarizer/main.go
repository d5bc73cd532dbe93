// Package main provides the course-summarizer CLI.
//
// course-summarizer scans a course directory (csc344 by default) holding
// assignment directories a1..a5, writes an HTML summary of the source files
// and identifiers of each assignment plus an index page, packs the course
// into csc344.tar.gz and mails it with mutt.
//
// Usage:
//
//	course-summarizer [--dir csc344] [--to addr] [--no-mail]
//
// See --help for all available options.
package main

func main() {
	Execute()
}
