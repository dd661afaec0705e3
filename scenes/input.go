package scenes

import (
	"github.com/automoto/eclipse-contract/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyCodes maps the stable key identifiers used by bindings to ebiten keys.
var keyCodes = map[input.Code]ebiten.Key{
	"KeyA":       ebiten.KeyA,
	"KeyD":       ebiten.KeyD,
	"KeyW":       ebiten.KeyW,
	"KeyS":       ebiten.KeyS,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"Space":      ebiten.KeySpace,
	"Digit1":     ebiten.KeyDigit1,
	"Digit2":     ebiten.KeyDigit2,
	"Digit3":     ebiten.KeyDigit3,
	"Enter":      ebiten.KeyEnter,
	"Escape":     ebiten.KeyEscape,
}

// PollInput copies the device state into the input snapshot.
// Must run before anything reads the snapshot in a tick.
func PollInput(in *input.State) {
	for code, key := range keyCodes {
		in.SetKey(code, ebiten.IsKeyPressed(key))
	}

	x, y := ebiten.CursorPosition()
	in.PointerMove(float64(x), float64(y))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.PointerPress()
	} else {
		in.PointerRelease()
	}
}
