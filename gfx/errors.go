package gfx

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceCreate reports that the host could not create a display
	// surface. The Context is unusable.
	ErrSurfaceCreate = errors.New("gfx: cannot create surface")

	// ErrPresent reports that the host rejected a frame. It wraps the host
	// error; check IsOpen before presenting again.
	ErrPresent = errors.New("gfx: present failed")
)

// LengthError is the panic value raised when a source's data does not
// match its declared dimensions.
type LengthError struct {
	W, H int
	Len  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("gfx: source is %dx%d but carries %d colors", e.W, e.H, e.Len)
}
