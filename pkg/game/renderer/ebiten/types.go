package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"haex/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	session *renderer.Session

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size on screen (adjustable with +/-)
	tileSize int

	// Show FPS and coordinates
	debug bool

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource
	sansFontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize float64
	cachedMonoFace   *text.GoTextFace
	cachedSansFace   *text.GoTextFace

	windowOpenedLogged bool
}
