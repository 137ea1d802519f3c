package widget

import (
	"fmt"

	"blit/pixel"
)

// Sprite is a fixed block of colors, usually one frame of a Sheet.
type Sprite struct {
	w, h int
	data []pixel.Color
}

func (s *Sprite) Dimensions() (int, int) { return s.w, s.h }
func (s *Sprite) Data() []pixel.Color    { return s.data }

// Sheet slices an image into equally sized frames, left to right then top
// to bottom. Partial frames at the right and bottom edges are ignored.
type Sheet struct {
	img    *Image
	fw, fh int
	cols   int
	rows   int
	cache  map[int]*Sprite
}

// NewSheet splits img into frameW x frameH frames.
func NewSheet(img *Image, frameW, frameH int) (*Sheet, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errFrameSize, frameW, frameH)
	}
	cols := img.w / frameW
	rows := img.h / frameH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %dx%d frame in %dx%d image", errFrameSize, frameW, frameH, img.w, img.h)
	}
	return &Sheet{
		img:   img,
		fw:    frameW,
		fh:    frameH,
		cols:  cols,
		rows:  rows,
		cache: make(map[int]*Sprite),
	}, nil
}

// Len is the number of frames.
func (s *Sheet) Len() int { return s.cols * s.rows }

// Frame returns frame i.
func (s *Sheet) Frame(i int) (*Sprite, error) {
	if i < 0 || i >= s.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoFrame, i, s.Len())
	}
	if sp, ok := s.cache[i]; ok {
		return sp, nil
	}
	x := (i % s.cols) * s.fw
	y := (i / s.cols) * s.fh
	sp := &Sprite{w: s.fw, h: s.fh, data: s.img.crop(x, y, s.fw, s.fh)}
	s.cache[i] = sp
	return sp, nil
}
