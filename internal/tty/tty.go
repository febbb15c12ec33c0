// Package tty provides terminal detection for seedsearch output.
package tty

import (
	"io"
	"os"
)

// IsTTY reports whether w is a terminal.
// Writers that are not *os.File (buffers, pipes wrapped by tests) are never terminals.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	// Check if it's a character device (terminal)
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ColorEnabled reports whether ANSI colors should be written to w.
// NO_COLOR (https://no-color.org) disables colors regardless of w.
func ColorEnabled(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return IsTTY(w)
}
