package pixel

import "fmt"

// BoundsError is the panic value raised when a Buffer is addressed outside
// [0,Width) x [0,Height).
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("pixel: (%d,%d) out of bounds for %dx%d buffer", e.X, e.Y, e.Width, e.Height)
}

// Buffer is a fixed-size, row-major grid of packed pixels.
//
// It is not safe for concurrent use.
type Buffer struct {
	width  int
	height int
	pix    []uint32
}

// NewBuffer allocates a width*height buffer of packed black.
// A non-positive dimension yields an empty buffer.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{}
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }
func (b *Buffer) Len() int    { return len(b.pix) }

// Pix returns the underlying row-major sequence for presentation hand-off.
// Callers must not write through it.
func (b *Buffer) Pix() []uint32 { return b.pix }

// InBounds reports whether (x, y) addresses a pixel.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: b.width, Height: b.height})
	}
	return y*b.width + x
}

// At returns the packed pixel at (x, y). It panics with *BoundsError when
// (x, y) is outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	return b.pix[b.index(x, y)]
}

// Set stores a packed pixel at (x, y). It panics with *BoundsError when
// (x, y) is outside the buffer.
func (b *Buffer) Set(x, y int, v uint32) {
	b.pix[b.index(x, y)] = v
}

// Row returns the writable pixels of row y. It panics with *BoundsError when
// y is outside the buffer.
func (b *Buffer) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		panic(&BoundsError{X: 0, Y: y, Width: b.width, Height: b.height})
	}
	return b.pix[y*b.width : (y+1)*b.width]
}

// Fill overwrites every pixel with v.
func (b *Buffer) Fill(v uint32) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = v
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}
