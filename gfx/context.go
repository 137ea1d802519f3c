// Package gfx composites pixels and Renderable sources into a fixed-size
// pixel buffer and presents it through a host surface.
//
// A Context is single-threaded. The usual frame loop is
//
//	for c.IsOpen() {
//		c.Clear()
//		c.Draw(x, y, sprite)
//		if err := c.Present(); err != nil { ... }
//	}
//
// which Run implements.
//
// SetPixel is strict and panics with *pixel.BoundsError for coordinates
// outside the buffer. DrawRegion and Draw clip silently. A source whose data
// length does not match its dimensions panics with *LengthError.
package gfx

import (
	"context"
	"errors"
	"fmt"
	"math"

	"blit/hal"
	"blit/pixel"
)

// Config describes the buffer and its presentation surface.
type Config struct {
	Width  int
	Height int
	Title  string
	// Scale multiplies the surface's physical size. It never affects
	// buffer addressing. 0 means 1.
	Scale int
	// TPS caps presentation frames per second. 0 means 60.
	TPS int
}

func (c Config) surface() hal.SurfaceConfig {
	return hal.SurfaceConfig{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Scale:  c.Scale,
		TPS:    c.TPS,
	}
}

// Option configures a Context.
type Option func(*Context)

// WithLogger routes lifecycle lines to l.
func WithLogger(l hal.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// Context owns one pixel buffer and the surface it is presented on.
type Context struct {
	buf     *pixel.Buffer
	surface hal.Surface
	log     hal.Logger
	frames  uint64
}

// New wraps an already created surface with a width x height buffer.
func New(surface hal.Surface, width, height int, opts ...Option) (*Context, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrSurfaceCreate)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrSurfaceCreate, width, height)
	}
	c := &Context{
		buf:     pixel.NewBuffer(width, height),
		surface: surface,
		log:     hal.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log.WriteLineString(fmt.Sprintf("gfx: surface open %dx%d", width, height))
	return c, nil
}

// OpenHeadless creates a Context on an off-screen surface.
func OpenHeadless(ctx context.Context, cfg Config, hcfg hal.HeadlessConfig, opts ...Option) (*Context, *hal.Headless, error) {
	h, err := hal.NewHeadless(ctx, cfg.Width, cfg.Height, hcfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	c, err := New(h, cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, nil, err
	}
	return c, h, nil
}

// OpenTerminal creates a Context presenting to the controlling terminal.
func OpenTerminal(cfg Config, opts ...Option) (*Context, error) {
	t, err := hal.NewTerminal(cfg.surface())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	return New(t, cfg.Width, cfg.Height, opts...)
}

// RunWindow opens a desktop window and calls app with its Context on a
// separate goroutine. It must be called from the main goroutine and blocks
// until the window closes and app returns.
func RunWindow(cfg Config, app func(*Context) error, opts ...Option) error {
	err := hal.RunWindow(cfg.surface(), func(s hal.Surface) error {
		c, err := New(s, cfg.Width, cfg.Height, opts...)
		if err != nil {
			return err
		}
		return app(c)
	})
	if errors.Is(err, hal.ErrWindow) {
		return fmt.Errorf("%w: %w", ErrSurfaceCreate, err)
	}
	return err
}

func (c *Context) Width() int            { return c.buf.Width() }
func (c *Context) Height() int           { return c.buf.Height() }
func (c *Context) Buffer() *pixel.Buffer { return c.buf }

// Frames returns how many frames were presented successfully.
func (c *Context) Frames() uint64 { return c.frames }

// IsOpen reports whether the host surface is still live.
func (c *Context) IsOpen() bool {
	return c.surface.IsOpen()
}

// Present hands the buffer to the surface. Host failures are wrapped in
// ErrPresent.
func (c *Context) Present() error {
	if err := c.surface.Present(c.buf.Pix(), c.buf.Width(), c.buf.Height()); err != nil {
		c.log.WriteLineString("gfx: present: " + err.Error())
		return fmt.Errorf("%w: %w", ErrPresent, err)
	}
	c.frames++
	return nil
}

// ClearOption configures Clear.
type ClearOption func(*pixel.Color)

// ClearTo clears to col instead of pixel.Black.
func ClearTo(col pixel.Color) ClearOption {
	return func(c *pixel.Color) { *c = col }
}

// Clear sets every pixel to pixel.Black, or to the color given by ClearTo.
func (c *Context) Clear(opts ...ClearOption) {
	col := pixel.Black
	for _, opt := range opts {
		opt(&col)
	}
	c.buf.Fill(col.Packed())
}

// SetPixel writes one pixel. It panics with *pixel.BoundsError when (x, y)
// is outside the buffer; it never clips.
func (c *Context) SetPixel(x, y int, col pixel.Color) {
	c.buf.Set(x, y, col.Packed())
}

// DrawRegion blits a w*h row-major block with its top-left corner at
// (x, y). Destination pixels outside the buffer are skipped. It panics with
// *LengthError when len(colors) != w*h.
func (c *Context) DrawRegion(x, y, w, h int, colors []pixel.Color) {
	if w < 0 || h < 0 || (h != 0 && w > math.MaxInt/h) || len(colors) != w*h {
		panic(&LengthError{W: w, H: h, Len: len(colors)})
	}

	bw, bh := c.buf.Width(), c.buf.Height()
	if w == 0 || h == 0 || x >= bw || y >= bh || x <= -w || y <= -h {
		return
	}

	x0, y0 := 0, 0
	if x < 0 {
		x0 = -x
	}
	if y < 0 {
		y0 = -y
	}
	x1 := min(w, bw-x)
	y1 := min(h, bh-y)

	for j := y0; j < y1; j++ {
		src := colors[j*w : (j+1)*w]
		dst := c.buf.Row(y + j)
		for i := x0; i < x1; i++ {
			dst[x+i] = src[i].Packed()
		}
	}
}

// Draw blits r with its top-left corner at (x, y), clipping like
// DrawRegion.
func (c *Context) Draw(x, y int, r Renderable) {
	w, h := r.Dimensions()
	c.DrawRegion(x, y, w, h, r.Data())
}

// MousePosition returns the pointer position in buffer pixels, if the
// pointer is over the surface.
func (c *Context) MousePosition() (x, y float32, ok bool) {
	return c.surface.MousePosition()
}

func (c *Context) MouseDown(b hal.MouseButton) bool { return c.surface.MouseDown(b) }
func (c *Context) KeyDown(k hal.Key) bool           { return c.surface.KeyDown(k) }

// Run calls frame and presents the result until the surface closes. It
// returns nil once the surface is closed, or the first frame or present
// error while it is still open.
func (c *Context) Run(frame func(*Context) error) error {
	for c.IsOpen() {
		if err := frame(c); err != nil {
			return err
		}
		if err := c.Present(); err != nil {
			if !c.IsOpen() {
				break
			}
			return err
		}
	}
	c.log.WriteLineString(fmt.Sprintf("gfx: surface closed after %d frames", c.frames))
	return nil
}

// Close releases the host surface.
func (c *Context) Close() error {
	return c.surface.Close()
}
