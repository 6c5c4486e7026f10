package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"haex/pkg/engine/world"
	"haex/pkg/game/renderer"
	"haex/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g := e.session.Game

	switch g.Phase() {
	case state.PhaseMain:
		e.drawLevel(screen, g)
	case state.PhaseMainToMain, state.PhaseMainToBlack, state.PhaseMainToBadEnd:
		e.drawLevel(screen, g)
		e.drawFade(screen, g)
		e.drawTitle(screen, g)
	case state.PhaseMenu:
		e.drawTitle(screen, g)
		e.drawMenu(screen)
	default:
		e.drawTitle(screen, g)
	}

	if e.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %0.1f  TPS %0.1f  phase %s", ebiten.ActualFPS(), ebiten.ActualTPS(), g.Phase()))
	}
}

// camera returns the screen offset of the map origin and the pixel scale, keeping the player centred
func (e *EbitenRenderer) camera(g *state.Game) (offX, offY, scale float64) {
	lvl := g.Level()
	tw, _ := lvl.Map.TileSize()
	scale = float64(e.tileSize) / tw

	pos := lvl.Player.Position()
	offX = float64(e.windowWidth)/2 - pos.X*scale
	offY = float64(e.windowHeight+headerHeight)/2 - pos.Y*scale
	return offX, offY, scale
}

func (e *EbitenRenderer) drawLevel(screen *ebiten.Image, g *state.Game) {
	lvl := g.Level()
	if lvl == nil {
		return
	}
	m := lvl.Map
	offX, offY, scale := e.camera(g)
	size := float64(e.tileSize)
	thickness := math.Max(1, size*wallThickness)

	pw, ph := m.PixelDimensions()
	vector.DrawFilledRect(screen, float32(offX-mapMargin), float32(offY-mapMargin),
		float32(pw*scale+mapMargin*2), float32(ph*scale+mapMargin*2), colorMapBackground, false)

	m.Grid().ForEachCell(func(c world.Coord, bits world.DirectionBits) {
		x := offX + float64(c.X)*size
		y := offY + float64(c.Y)*size
		if x+size < 0 || y+size < 0 || x > float64(e.windowWidth) || y > float64(e.windowHeight) {
			return
		}
		if !m.Seen(c) {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), colorFog, false)
			return
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), colorFloor, false)
		if c == lvl.Exit {
			inset := size / 4
			vector.DrawFilledRect(screen, float32(x+inset), float32(y+inset), float32(size-2*inset), float32(size-2*inset), colorExit, false)
		}
		for _, r := range renderer.WallRects(bits, size, thickness) {
			vector.DrawFilledRect(screen, float32(x+r.X), float32(y+r.Y), float32(r.W), float32(r.H), colorWall, false)
		}
	})

	radius := float32(size * 0.3)
	for _, en := range lvl.Enemies {
		pos := en.Position()
		c, ok := m.PixelToCoord(pos.X, pos.Y)
		if !ok || !m.Seen(c) {
			continue
		}
		cx, cy := float32(offX+pos.X*scale), float32(offY+pos.Y*scale)
		vector.DrawFilledCircle(screen, cx, cy, radius, colorEnemy, true)
		if en.IsMoving() {
			h := en.Heading()
			vector.StrokeLine(screen, cx, cy, cx+radius*float32(math.Cos(h)), cy+radius*float32(math.Sin(h)), 2, colorBackground, true)
		}
	}

	pos := lvl.Player.Position()
	vector.DrawFilledCircle(screen, float32(offX+pos.X*scale), float32(offY+pos.Y*scale), radius, colorPlayer, true)

	e.drawHeader(screen, g)
	e.drawMessages(screen, g)
}

func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, g *state.Game) {
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), headerHeight, colorBackground, false)
	e.drawText(screen, renderer.StatusLine(g), e.getSansFontFace(), 12, 10, colorAction)

	face := e.getMonoFontFace()
	help := renderer.T("HELP_CONTROLS")
	w, _ := text.Measure(help, face, 0)
	e.drawText(screen, help, face, float64(e.windowWidth)-w-12, 10, colorSubtle)
}

func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game) {
	msgs := renderer.Messages(g)
	if len(msgs) > messageLines {
		msgs = msgs[len(msgs)-messageLines:]
	}
	face := e.getSansFontFace()
	lineHeight := face.Size * 1.4
	y := float64(e.windowHeight) - lineHeight*float64(len(msgs)) - 10
	for i, msg := range msgs {
		clr := colorSubtle
		if i == len(msgs)-1 {
			clr = colorText
		}
		e.drawText(screen, msg, face, 12, y, clr)
		y += lineHeight
	}
}

// drawFade darkens the level in proportion to how far the transition has run
func (e *EbitenRenderer) drawFade(screen *ebiten.Image, g *state.Game) {
	var total float64
	switch g.Phase() {
	case state.PhaseMainToMain:
		total = state.MainToMainDuration.Seconds()
	case state.PhaseMainToBlack:
		total = state.MainToBlackDuration.Seconds()
	case state.PhaseMainToBadEnd:
		total = state.MainToBadEndDuration.Seconds()
	default:
		return
	}
	alpha := math.Min(g.PhaseTime().Seconds()/total, 1)
	overlay := colorOverlay
	overlay.A = uint8(float64(overlay.A) * alpha)
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), float32(e.windowHeight), overlay, false)
}

func (e *EbitenRenderer) drawTitle(screen *ebiten.Image, g *state.Game) {
	title, subtitle := renderer.PhaseText(e.session)
	titleColor := colorAction
	if g.Phase() == state.PhaseBadEnd || g.Phase() == state.PhaseBlack {
		titleColor = colorDenied
	}

	face := &text.GoTextFace{Source: e.sansFontSource, Size: e.getUIFontSize() * 2}
	e.drawCentered(screen, title, face, float64(e.windowHeight)/2-face.Size, titleColor)
	if subtitle != "" {
		e.drawCentered(screen, subtitle, e.getSansFontFace(), float64(e.windowHeight)/2+face.Size, colorSubtle)
	}
}

// drawMenu lists the title menu below the title
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image) {
	face := e.getSansFontFace()
	lineHeight := face.Size * 1.6
	y := float64(e.windowHeight)/2 + face.Size*5
	m := e.session.Menu
	for i, line := range renderer.MenuLines(m) {
		clr := colorSubtle
		if i == m.Selected() {
			clr = colorAction
		}
		e.drawCentered(screen, line, face, y, clr)
		y += lineHeight
	}
}

func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	e.drawText(screen, s, face, (float64(e.windowWidth)-w)/2, y, clr)
}

func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
