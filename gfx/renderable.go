package gfx

import "blit/pixel"

// Renderable is anything the compositor can draw: decoded images, sprites,
// widgets. Data returns Width*Height colors in row-major order; the
// compositor only reads it for the duration of one Draw call.
type Renderable interface {
	Dimensions() (width, height int)
	Data() []pixel.Color
}

// Region is a plain row-major block of colors.
type Region struct {
	W, H   int
	Colors []pixel.Color
}

// NewRegion returns a w*h region filled with c.
func NewRegion(w, h int, c pixel.Color) *Region {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	colors := make([]pixel.Color, w*h)
	for i := range colors {
		colors[i] = c
	}
	return &Region{W: w, H: h, Colors: colors}
}

func (r *Region) Dimensions() (int, int) { return r.W, r.H }
func (r *Region) Data() []pixel.Color    { return r.Colors }
