package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"go.uber.org/zap"

	"haex/pkg/engine/input"
	"haex/pkg/engine/logger"
	"haex/pkg/engine/terminal"
	"haex/pkg/engine/world"
	"haex/pkg/game/renderer"
	"haex/pkg/game/state"
)

// DefaultFrameTime is the redraw interval
const DefaultFrameTime = 33 * time.Millisecond

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 5
	ViewportMinCols = 5
	// Lines needed outside the map: status, blank, blank, messages (5), help
	ViewportTopMargin = 10
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out       io.Writer
	frameTime time.Duration

	colorWall        color.Style
	colorFog         color.Style
	colorPlayer      color.Style
	colorEnemy       color.Style
	colorExit        color.Style
	colorPath        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, frameTime: DefaultFrameTime}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorFog = color.Style{color.FgDarkGray}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorExit = color.Style{color.FgGreen}
	t.colorPath = color.Style{color.FgYellow}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFog:
		return t.colorFog.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleEnemy:
		return t.colorEnemy.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// Run puts the terminal in raw mode and pumps the game until the player quits
func (t *TUIRenderer) Run(s *renderer.Session) error {
	restore, err := terminal.MakeRaw(t.out)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer restore()

	codes := make(chan string, 16)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readCodes(bufio.NewReader(os.Stdin), codes, readErr, done)

	ticker := time.NewTicker(t.frameTime)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case code := <-codes:
			intent := input.MapToIntent(input.RawInput{Device: input.DeviceTerminal, Code: code, Timestamp: time.Now()})
			logger.Debug("key", zap.String("code", code), zap.String("action", input.ActionName(intent.Action)))
			quit, err := renderer.Apply(s, intent)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case err := <-readErr:
			return err
		case now := <-ticker.C:
			if err := s.Game.Update(now.Sub(last)); err != nil {
				return err
			}
			last = now
			t.draw(s)
		}
	}
}

// readCodes forwards key codes until a read fails or done is closed
func readCodes(r io.ByteScanner, codes chan<- string, errs chan<- error, done <-chan struct{}) {
	for {
		code, err := input.ReadCode(r)
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
		if code == "" {
			continue
		}
		select {
		case codes <- code:
		case <-done:
			return
		}
	}
}

// GetViewportSize returns the map viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()
	cols = max(termWidth, ViewportMinCols)
	rows = max(termHeight-ViewportTopMargin, ViewportMinRows)
	return rows, cols
}

func (t *TUIRenderer) draw(s *renderer.Session) {
	rows, cols := t.GetViewportSize()
	io.WriteString(t.out, terminal.CursorHome+t.Frame(s, rows, cols)+terminal.ClearToEnd)
}

// Frame builds one screen of output. Lines end in \r\n since the terminal is raw.
func (t *TUIRenderer) Frame(s *renderer.Session, rows, cols int) string {
	g := s.Game
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\x1b[K\r\n")
	}

	if g.Phase() != state.PhaseMain {
		title, subtitle := renderer.PhaseText(s)
		line("")
		line("  " + t.StyleText(title, renderer.StyleActionShort))
		line("")
		if g.Phase() == state.PhaseMenu {
			for i, item := range renderer.MenuLines(s.Menu) {
				style := renderer.StyleNormal
				if i == s.Menu.Selected() {
					style = renderer.StyleAction
				}
				line("  " + t.StyleText(item, style))
			}
			line("")
		}
		if subtitle != "" {
			line("  " + t.StyleText(subtitle, renderer.StyleSubtle))
		}
		return b.String()
	}

	line(t.StyleText(renderer.StatusLine(g), renderer.StyleAction))
	line("")
	for _, row := range t.mapLines(g, rows, cols) {
		line(row)
	}
	line("")
	for _, msg := range renderer.Messages(g) {
		line("  " + t.StyleText(msg, renderer.StyleSubtle))
	}
	line(t.StyleText(renderer.T("HELP_CONTROLS"), renderer.StyleSubtle))
	return b.String()
}

// mapLines renders the part of the map that fits in rows x cols, centred on the player
func (t *TUIRenderer) mapLines(g *state.Game, rows, cols int) []string {
	lvl := g.Level()
	m := lvl.Map
	center, _ := lvl.Player.Coord(m)

	x0, x1 := window(center.X, m.Width(), cols)
	y0, y1 := window(center.Y, m.Height(), rows)

	lines := make([]string, 0, y1-y0)
	for y := y0; y < y1; y++ {
		var row strings.Builder
		for x := x0; x < x1; x++ {
			glyph, style := renderer.CellGlyph(g, world.C(x, y))
			row.WriteString(t.StyleText(glyph, style))
		}
		lines = append(lines, row.String())
	}
	return lines
}

// window returns the half-open range of size at most span around center in [0, n)
func window(center, n, span int) (lo, hi int) {
	if n <= span {
		return 0, n
	}
	lo = min(max(center-span/2, 0), n-span)
	return lo, lo + span
}
