package hal

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// HeadlessConfig controls the no-window surface.
type HeadlessConfig struct {
	// Hz paces Present with a ticker. 0 presents as fast as the caller asks.
	Hz int
	// Ticks closes the surface after N presented frames (0 = run forever).
	Ticks uint64
}

// Headless is an off-screen Surface. It keeps a copy of the last presented
// frame and closes itself when ctx is done or after cfg.Ticks frames.
type Headless struct {
	width  int
	height int
	cfg    HeadlessConfig
	ctx    context.Context
	ticker *time.Ticker
	input  *inputState

	mu     sync.Mutex
	closed bool
	frames uint64
	last   []uint32
}

// NewHeadless creates a headless surface of width x height logical pixels.
func NewHeadless(ctx context.Context, width, height int, cfg HeadlessConfig) (*Headless, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("hal: invalid headless size %dx%d", width, height)
	}
	if cfg.Hz < 0 {
		return nil, fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	h := &Headless{
		width:  width,
		height: height,
		cfg:    cfg,
		ctx:    ctx,
		input:  newInputState(),
		last:   make([]uint32, width*height),
	}
	if cfg.Hz > 0 {
		h.ticker = time.NewTicker(time.Second / time.Duration(cfg.Hz))
	}
	return h, nil
}

func (h *Headless) Present(pix []uint32, width, height int) error {
	if !checkFrame(pix, width, height) || width != h.width || height != h.height {
		return fmt.Errorf("hal: frame %dx%d (%d px) does not match %dx%d surface", width, height, len(pix), h.width, h.height)
	}
	if !h.IsOpen() {
		return ErrSurfaceClosed
	}

	if h.ticker != nil {
		select {
		case <-h.ctx.Done():
			h.Close()
			return ErrSurfaceClosed
		case <-h.ticker.C:
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	copy(h.last, pix)
	h.frames++
	if h.cfg.Ticks > 0 && h.frames >= h.cfg.Ticks {
		h.closeLocked()
	}
	return nil
}

// IsOpen reports false once Close was called, ctx is done, or the tick
// budget is spent.
func (h *Headless) IsOpen() bool {
	if h.ctx.Err() != nil {
		h.Close()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed
}

// Frames returns the number of frames presented so far.
func (h *Headless) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastFrame returns a copy of the most recently presented frame.
func (h *Headless) LastFrame() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uint32, len(h.last))
	copy(out, h.last)
	return out
}

// SetMouse injects pointer state, in logical pixels.
func (h *Headless) SetMouse(x, y float32, inside bool) { h.input.setMouse(x, y, inside) }

// SetMouseButton injects a button state.
func (h *Headless) SetMouseButton(b MouseButton, down bool) { h.input.setButton(b, down) }

// SetKey injects a key state.
func (h *Headless) SetKey(k Key, down bool) { h.input.setKey(k, down) }

func (h *Headless) MousePosition() (float32, float32, bool) { return h.input.mousePosition() }
func (h *Headless) MouseDown(b MouseButton) bool             { return h.input.mouseDown(b) }
func (h *Headless) KeyDown(k Key) bool                       { return h.input.keyDown(k) }

func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closeLocked()
	return nil
}

func (h *Headless) closeLocked() {
	if h.closed {
		return
	}
	h.closed = true
	if h.ticker != nil {
		h.ticker.Stop()
	}
}
