package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	e.monoFontSource = mono
	e.sansFontSource = sans
	return nil
}

// getUIFontSize returns the font size for UI text, scaled with the tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / defaultTileSize
	if size < 10 {
		size = 10
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace font face at the UI size
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedMonoFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
}
