// Package input turns key presses from a terminal or a window into game intents.
package input

import (
	"io"
)

// Codes for keys that are not a single printable character
const (
	CodeArrowUp    = "arrow_up"
	CodeArrowDown  = "arrow_down"
	CodeArrowRight = "arrow_right"
	CodeArrowLeft  = "arrow_left"
	CodeEnter      = "enter"
	CodeSpace      = "space"
	CodeEscape     = "escape"
	CodeCtrlC      = "ctrl_c"
)

// ReadCode reads one key press from a terminal in raw mode and returns its
// code. Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences. Printable
// characters are returned as themselves, lower-cased. Unknown sequences and
// control bytes return an empty code.
func ReadCode(r io.ByteScanner) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return CodeCtrlC, nil
	case b == '\r' || b == '\n':
		return CodeEnter, nil
	case b == ' ':
		return CodeSpace, nil
	case b >= 'A' && b <= 'Z':
		return string(b + 'a' - 'A'), nil
	case b > 32 && b < 127:
		return string(b), nil
	default:
		return "", nil
	}
}

func readEscape(r io.ByteScanner) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		// A lone escape at the end of input
		if err == io.EOF {
			return CodeEscape, nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		// Not a sequence; leave the byte for the next read
		if err := r.UnreadByte(); err != nil {
			return "", err
		}
		return CodeEscape, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return CodeArrowUp, nil
	case 'B':
		return CodeArrowDown, nil
	case 'C':
		return CodeArrowRight, nil
	case 'D':
		return CodeArrowLeft, nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
