//go:build !cgo

package hal

import "fmt"

func RunWindow(_ SurfaceConfig, _ func(Surface) error) error {
	return fmt.Errorf("%w: %w: window mode requires cgo (build/run with CGO_ENABLED=1)", ErrWindow, ErrNotImplemented)
}
