package renderer

import (
	"time"

	"haex/pkg/game/menu"
	"haex/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFog
	StylePlayer
	StyleEnemy
	StyleExit
	StylePath
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the session until the player quits
	Run(s *Session) error
}

// Session is what a frontend drives: the game, the title menu and how to
// seed new runs
type Session struct {
	Game *state.Game
	Menu *menu.Menu

	// Seed of every run started from the menu; zero picks one from the clock
	Seed int64
}

// NewSession wraps a game
func NewSession(g *state.Game, seed int64) *Session {
	return &Session{Game: g, Menu: menu.NewMainMenu(), Seed: seed}
}

// StartGame leaves the menu with a fresh run
func (s *Session) StartGame() error {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return s.Game.Start(seed)
}
