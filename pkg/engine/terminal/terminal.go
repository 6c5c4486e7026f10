// Package terminal wraps the bits of golang.org/x/term the text frontend needs.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI sequences for redrawing in place
const (
	CursorHome  = "\x1b[H"
	ClearToEnd  = "\x1b[J"
	ClearScreen = "\x1b[2J"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// MakeRaw puts stdin into raw mode and hides the cursor. The returned
// function restores both and must be called before exiting.
func MakeRaw(out io.Writer) (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	io.WriteString(out, HideCursor+ClearScreen)
	return func() {
		io.WriteString(out, ShowCursor)
		term.Restore(fd, oldState)
	}, nil
}
