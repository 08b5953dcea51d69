package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// useColor follows the NO_COLOR convention (https://no-color.org/) and
// only colors terminals.
func useColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(w)
}

func printError(w io.Writer, err error) {
	if useColor(w) {
		fmt.Fprintf(w, "%serror:%s %v\n", ansiRed, ansiReset, err)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
