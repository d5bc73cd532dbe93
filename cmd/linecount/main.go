// Package main provides the linecount CLI, which prints the line count of
// every regular file directly inside a directory:
//
//	linecount <dir>
//	a.txt: 3 lines
//	b.c: 120 lines
package main

func main() {
	Execute()
}
