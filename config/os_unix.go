//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName drops characters which could not be part of a single path
// segment. Leading dots are removed so result is never hidden.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		switch r {
		case 0, os.PathSeparator, os.PathListSeparator:
			return -1
		}
		return r
	}, in)
	if out = strings.TrimLeft(out, "."); out == "" {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports whether stream is a terminal.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
