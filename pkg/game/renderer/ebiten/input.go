package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	engineinput "haex/pkg/engine/input"
	"haex/pkg/engine/logger"
	"haex/pkg/game/renderer"
)

// keyCodes maps Ebiten keys to the shared input codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    engineinput.CodeArrowUp,
	ebiten.KeyArrowDown:  engineinput.CodeArrowDown,
	ebiten.KeyArrowLeft:  engineinput.CodeArrowLeft,
	ebiten.KeyArrowRight: engineinput.CodeArrowRight,
	ebiten.KeyEnter:      engineinput.CodeEnter,
	ebiten.KeySpace:      engineinput.CodeSpace,
	ebiten.KeyEscape:     engineinput.CodeEscape,
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyQ:          "q",
	ebiten.Key1:          "1",
	ebiten.Key2:          "2",
}

// gamepadCodes maps standard gamepad buttons to the shared input codes
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonRightLeft:   "gamepad_x",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		logger.Info("main window opened", zap.Int("width", w), zap.Int("height", h))
	}

	e.handleZoom()

	for _, raw := range e.pendingInputs() {
		quit, err := renderer.Apply(e.session, engineinput.MapToIntent(raw))
		if err != nil {
			return err
		}
		if quit {
			return ebiten.Termination
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	return e.session.Game.Update(dt)
}

// pendingInputs collects the keys and gamepad buttons pressed this tick
func (e *EbitenRenderer) pendingInputs() []engineinput.RawInput {
	now := time.Now()
	var inputs []engineinput.RawInput
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code, ok := keyCodes[k]; ok {
			inputs = append(inputs, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				inputs = append(inputs, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now})
			}
		}
	}
	return inputs
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.setTileSize(defaultTileSize)
	}
}

func (e *EbitenRenderer) setTileSize(size int) {
	size = min(max(size, minTileSize), maxTileSize)
	if size != e.tileSize {
		e.tileSize = size
		e.invalidateFontCache()
	}
}
