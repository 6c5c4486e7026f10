// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"haex/pkg/engine/logger"
	"haex/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New(debug bool) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		tileSize:     defaultTileSize,
		debug:        debug,
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(renderer.T("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run(s *renderer.Session) error {
	e.session = s
	logger.Info("starting ebiten renderer", zap.Int("width", e.windowWidth), zap.Int("height", e.windowHeight))
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
