package widget

import "errors"

var (
	errRotation   = errors.New("widget: canvas does not rotate")
	errEmptyImage = errors.New("widget: empty image")
	errFrameSize  = errors.New("widget: invalid frame size")

	// ErrNoFrame is returned when a sprite sheet frame index is out of range.
	ErrNoFrame = errors.New("widget: frame out of range")
)
