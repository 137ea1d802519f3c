// Package widget provides Renderable sources for gfx: decoded images,
// sprites cut from sheets, and text widgets drawn with tinyfont and tinyterm.
package widget

import (
	"image/color"

	"blit/pixel"

	"tinygo.org/x/drivers"
)

// Canvas is an owned, row-major grid of colors. It implements
// drivers.Displayer so tinyfont and tinyterm can draw into it, and
// gfx.Renderable so the compositor can draw it.
//
// Writes through the Displayer methods clip at the canvas edge.
type Canvas struct {
	w, h int
	pix  []pixel.Color

	// scroll emulates a display's vertical scroll register: visible row r
	// shows stored row (r+scroll) % h.
	scroll int
	view   []pixel.Color
}

var _ drivers.Displayer = (*Canvas)(nil)

// NewCanvas returns a w*h canvas filled with bg.
func NewCanvas(w, h int, bg pixel.Color) *Canvas {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	c := &Canvas{w: w, h: h, pix: make([]pixel.Color, w*h)}
	c.Fill(bg)
	return c
}

func (c *Canvas) Dimensions() (int, int) { return c.w, c.h }

// Data returns the visible pixels, honoring the scroll offset.
func (c *Canvas) Data() []pixel.Color {
	if c.scroll == 0 {
		return c.pix
	}
	if len(c.view) != len(c.pix) {
		c.view = make([]pixel.Color, len(c.pix))
	}
	for r := 0; r < c.h; r++ {
		src := ((r + c.scroll) % c.h) * c.w
		copy(c.view[r*c.w:(r+1)*c.w], c.pix[src:src+c.w])
	}
	return c.view
}

// At returns the stored color at (x, y), or false outside the canvas.
func (c *Canvas) At(x, y int) (pixel.Color, bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return pixel.Color{}, false
	}
	return c.pix[y*c.w+x], true
}

// Put stores col at (x, y); out-of-range writes are dropped.
func (c *Canvas) Put(x, y int, col pixel.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = col
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col pixel.Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// FillRect fills the intersection of the rectangle with the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col pixel.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.w), min(y+h, c.h)
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

func (c *Canvas) Size() (x, y int16) {
	return int16(c.w), int16(c.h)
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Put(int(x), int(y), pixel.FromColor(col))
}

func (c *Canvas) Display() error { return nil }

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	c.FillRect(int(x), int(y), int(width), int(height), pixel.FromColor(col))
	return nil
}

// SetScroll sets the first visible row.
func (c *Canvas) SetScroll(line int16) {
	if c.h == 0 {
		return
	}
	s := int(line) % c.h
	if s < 0 {
		s += c.h
	}
	c.scroll = s
}

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errRotation
	}
	return nil
}
