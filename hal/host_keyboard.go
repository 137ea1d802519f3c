//go:build cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var ebitenKeys = map[Key]ebiten.Key{
	KeyUp:        ebiten.KeyArrowUp,
	KeyDown:      ebiten.KeyArrowDown,
	KeyLeft:      ebiten.KeyArrowLeft,
	KeyRight:     ebiten.KeyArrowRight,
	KeyEnter:     ebiten.KeyEnter,
	KeyEscape:    ebiten.KeyEscape,
	KeyBackspace: ebiten.KeyBackspace,
	KeyTab:       ebiten.KeyTab,
	KeySpace:     ebiten.KeySpace,
	KeyF1:        ebiten.KeyF1,
	KeyF2:        ebiten.KeyF2,
	KeyF3:        ebiten.KeyF3,
}

var ebitenButtons = [...]ebiten.MouseButton{
	MouseLeft:   ebiten.MouseButtonLeft,
	MouseRight:  ebiten.MouseButtonRight,
	MouseMiddle: ebiten.MouseButtonMiddle,
}

// pollInput snapshots ebiten's input state. Must run on the ebiten goroutine.
// Cursor coordinates are already in logical pixels because Layout reports
// the surface size.
func pollInput(in *inputState, width, height int) {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && x < width && y >= 0 && y < height
	in.setMouse(float32(x), float32(y), inside)

	for b, eb := range ebitenButtons {
		in.setButton(MouseButton(b), ebiten.IsMouseButtonPressed(eb))
	}
	for k, ek := range ebitenKeys {
		in.setKey(k, ebiten.IsKeyPressed(ek))
	}
}
