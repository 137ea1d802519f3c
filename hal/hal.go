package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrNotImplemented marks a surface this build cannot provide.
	ErrNotImplemented = errors.New("hal: not implemented")

	// ErrSurfaceClosed is returned by Present once the host surface is gone.
	ErrSurfaceClosed = errors.New("hal: surface closed")

	// ErrWindow is returned by RunWindow when the host window cannot run.
	ErrWindow = errors.New("hal: window unavailable")
)

// Key is a minimal key identifier.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyF1
	KeyF2
	KeyF3
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// SurfaceConfig describes the presentation surface to create.
//
// Width and Height are logical pixels; the host may upscale by Scale.
type SurfaceConfig struct {
	Title  string
	Width  int
	Height int
	Scale  int
	// TPS caps the presentation rate. 0 means 60.
	TPS int
}

func (c SurfaceConfig) withDefaults() SurfaceConfig {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// Validate reports whether the configuration can back a surface.
func (c SurfaceConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("hal: surface dimensions must be positive")
	}
	return nil
}

// Surface is the host presentation facility.
//
// Present hands over one frame of packed 0RGB pixels in row-major order.
// The slice is only read for the duration of the call.
type Surface interface {
	Present(pix []uint32, width, height int) error
	IsOpen() bool
	MousePosition() (x, y float32, ok bool)
	MouseDown(b MouseButton) bool
	KeyDown(k Key) bool
	Close() error
}
