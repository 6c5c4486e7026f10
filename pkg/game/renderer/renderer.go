// Package renderer holds what the frontends share: the Renderer interface,
// intent dispatch, wall glyphs and the translated status texts.
package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"haex/pkg/engine/input"
	"haex/pkg/engine/logger"
	"haex/pkg/engine/world"
	"haex/pkg/game/menu"
	"haex/pkg/game/programs"
	"haex/pkg/game/state"
)

// Icon constants
const (
	PlayerIcon = "@"
	EnemyIcon  = "X"
	ExitIcon   = "E"
	StartIcon  = "S"
	PathIcon   = "*"
	FogIcon    = "#"
	VoidIcon   = " "
)

// cardinalGlyphs draws the open passages of a cell, indexed by its cardinal bits
var cardinalGlyphs = [16]string{
	"·", // none
	"╵", // N
	"╶", // E
	"└", // N E
	"╷", // S
	"│", // N S
	"┌", // E S
	"├", // N E S
	"╴", // W
	"┘", // N W
	"─", // E W
	"┴", // N E W
	"┐", // S W
	"┤", // N S W
	"┬", // E S W
	"┼", // N E S W
}

// TileGlyph returns a box-drawing character showing the open passages of a cell.
// Corner bits do not change the glyph.
func TileGlyph(b world.DirectionBits) string {
	return cardinalGlyphs[b.Cardinal()]
}

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check.
var dynamicGet = gotext.Get

// InitLocale loads the "default" catalogue for lang from dir
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
	logger.Debug("locale configured", zap.String("dir", dir), zap.String("lang", lang))
}

// T translates a message key
func T(key string, args ...any) string {
	return dynamicGet(key, args...)
}

// CellGlyph returns what to draw for cell c of the current level, with the
// player and enemies drawn over the map and unseen cells left as fog
func CellGlyph(g *state.Game, c world.Coord) (string, TextStyle) {
	lvl := g.Level()
	if lvl == nil {
		return VoidIcon, StyleNormal
	}
	m := lvl.Map
	if pc, ok := lvl.Player.Coord(m); ok && pc == c {
		return PlayerIcon, StylePlayer
	}
	if !m.Seen(c) {
		return FogIcon, StyleFog
	}
	for _, e := range lvl.Enemies {
		pos := e.Position()
		if ec, ok := m.PixelToCoord(pos.X, pos.Y); ok && ec == c {
			return EnemyIcon, StyleEnemy
		}
	}
	if c == lvl.Exit {
		return ExitIcon, StyleExit
	}
	return TileGlyph(m.Bits(c)), StyleWall
}

// StatusLine summarises the level number and program charges
func StatusLine(g *state.Game) string {
	lvl := g.Level()
	if lvl == nil {
		return ""
	}
	inv := lvl.Inventory
	parts := []string{
		T("STATUS_LEVEL", lvl.Number),
		fmt.Sprintf("[1] %s: %d", T(programs.KindNopSlide.String()), inv.NopSlides),
		fmt.Sprintf("[2] %s: %d", T(programs.KindNoClip.String()), inv.NoClips),
	}
	if inv.Clips > 0 {
		parts = append(parts, T("STATUS_CLIPS_ARMED", inv.Clips))
	}
	return strings.Join(parts, "   ")
}

// PhaseText returns the title and subtitle shown outside the main phase
func PhaseText(s *Session) (title, subtitle string) {
	g := s.Game
	switch g.Phase() {
	case state.PhaseMenu:
		return T(s.Menu.Title()), T("HELP_CONTROLS")
	case state.PhaseMainToMain:
		return T("TRANSITION_NEXT_LEVEL"), ""
	case state.PhaseMainToBlack:
		return T("TRANSITION_CAUGHT"), ""
	case state.PhaseBlack:
		if g.PhaseTime() < state.BlackMinimumDuration {
			return T("BLACK_SCREEN"), ""
		}
		return T("BLACK_SCREEN"), T("PRESS_ANY_KEY")
	case state.PhaseMainToBadEnd:
		return T("TRANSITION_BAD_END"), ""
	case state.PhaseBadEnd:
		return T("BAD_END"), T("PRESS_ANY_KEY")
	default:
		return "", ""
	}
}

// MenuLines returns the translated menu items with the selection marked
func MenuLines(m *menu.Menu) []string {
	out := make([]string, 0, len(m.Items()))
	for i, item := range m.Items() {
		prefix := "  "
		if i == m.Selected() {
			prefix = "> "
		}
		out = append(out, prefix+T(item.GetLabel()))
	}
	return out
}

// Messages returns the game's message log translated
func Messages(g *state.Game) []string {
	out := make([]string, len(g.Messages))
	for i, key := range g.Messages {
		out[i] = T(key)
	}
	return out
}

// Apply routes an intent to the game. It returns quit when the player asked
// to leave.
func Apply(s *Session, in input.Intent) (quit bool, err error) {
	g := s.Game
	if in.Action == input.ActionNone {
		return false, nil
	}
	if in.Action == input.ActionQuit {
		return true, nil
	}

	switch g.Phase() {
	case state.PhaseMenu:
		item := s.Menu.Handle(in.Action)
		if item == nil {
			return false, nil
		}
		switch a, _ := menu.MainAction(item); a {
		case menu.MainMenuActionStart:
			return false, s.StartGame()
		case menu.MainMenuActionQuit:
			return true, nil
		}
	case state.PhaseMain:
		switch in.Action {
		case input.ActionMoveNorth:
			g.Move(world.North)
		case input.ActionMoveSouth:
			g.Move(world.South)
		case input.ActionMoveWest:
			g.Move(world.West)
		case input.ActionMoveEast:
			g.Move(world.East)
		case input.ActionNopSlide:
			return false, ignoreNoCharges(g.ActivateProgram(programs.KindNopSlide))
		case input.ActionNoClip:
			return false, ignoreNoCharges(g.ActivateProgram(programs.KindNoClip))
		}
	default:
		g.Key()
	}
	return false, nil
}

func ignoreNoCharges(err error) error {
	if errors.Is(err, programs.ErrNoCharges) {
		return nil
	}
	return err
}
