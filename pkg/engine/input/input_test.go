package input

import (
	"bufio"
	"strings"
	"testing"
)

func TestReadCode(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[A\x1bOCwQ\r 1\x03\x1bx\x1b[Z"))
	want := []string{
		CodeArrowUp, CodeArrowRight, "w", "q", CodeEnter, CodeSpace, "1", CodeCtrlC,
		CodeEscape, "x", "",
	}
	for i, w := range want {
		got, err := ReadCode(r)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != w {
			t.Errorf("read %d = %q, want %q", i, got, w)
		}
	}
	if _, err := ReadCode(r); err == nil {
		t.Error("expected EOF")
	}
}

func TestReadCode_TrailingEscape(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b"))
	if got, err := ReadCode(r); err != nil || got != CodeEscape {
		t.Errorf("ReadCode = %q, %v", got, err)
	}
}

func TestMapToIntent(t *testing.T) {
	cases := map[string]Action{
		CodeArrowUp: ActionMoveNorth,
		"a":         ActionMoveWest,
		"l":         ActionMoveEast,
		"1":         ActionNopSlide,
		"2":         ActionNoClip,
		CodeEnter:   ActionConfirm,
		"q":         ActionQuit,
		"gamepad_b": ActionQuit,
		"z":         ActionNone,
		"":          ActionNone,
	}
	for code, want := range cases {
		if got := MapToIntent(RawInput{Device: DeviceTerminal, Code: code}).Action; got != want {
			t.Errorf("MapToIntent(%q) = %s, want %s", code, ActionName(got), ActionName(want))
		}
	}
}

func TestGetBindingsByAction(t *testing.T) {
	b := GetBindingsByAction()
	north := b[ActionMoveNorth]
	if len(north) != 4 || north[0] != CodeArrowUp {
		t.Errorf("north bindings = %v", north)
	}
}
