//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

const reservedChars = `<>":/\|?*`

// CleanFileName drops characters Windows does not allow in file names.
// Trailing dots and spaces are silently stripped by the system, so they are
// removed here too.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r < ' ' || strings.ContainsRune(reservedChars, r) || r == os.PathListSeparator {
			return -1
		}
		return r
	}, in)
	if out = strings.TrimRight(out, ". "); out == "" {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput turns on VT100 processing for console stream. Consoles
// older than Windows 10 refuse the mode and get plain output.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}
	h := windows.Handle(stream.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
