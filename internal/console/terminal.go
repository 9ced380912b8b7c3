package console

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the width of stdout, or of stderr when stdout is
// redirected. It is 0 when neither is a terminal.
func TerminalWidth() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width
		}
	}
	return 0
}

// IsInteractive reports whether a full-screen program can run: stdin and
// stdout are terminals and TERM is not "dumb".
func IsInteractive() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
