// Package app is the demo scene: a bouncing sprite, a status label, a log
// console and a mouse crosshair, composited each frame.
package app

import (
	"fmt"
	"image"
	"image/color"

	"blit/gfx"
	"blit/hal"
	"blit/internal/config"
	"blit/pixel"
	"blit/widget"
)

type Config struct {
	Background pixel.Color

	// Image is an optional sprite sheet path. Without it a generated
	// checker sprite is used.
	Image        string
	SpriteWidth  int
	SpriteHeight int
}

// FromConfig picks the scene settings out of the demo config.
func FromConfig(c config.Config) Config {
	return Config{
		Background:   c.BackgroundColor(),
		Image:        c.Image,
		SpriteWidth:  c.SpriteWidth,
		SpriteHeight: c.SpriteHeight,
	}
}

// Scene holds per-frame demo state.
type Scene struct {
	cfg Config
	log hal.Logger

	frames []*widget.Sprite
	status *widget.Label
	con    *widget.Console

	x, y   int
	dx, dy int
	tick   int
	paused bool
}

// New loads the scene's sources.
func New(cfg Config, log hal.Logger) (*Scene, error) {
	if log == nil {
		log = hal.NopLogger{}
	}
	s := &Scene{cfg: cfg, log: log, dx: 1, dy: 1}

	var sheetImg *widget.Image
	if cfg.Image != "" {
		img, err := widget.LoadImage(cfg.Image)
		if err != nil {
			return nil, err
		}
		sheetImg = img
	} else {
		sheetImg = widget.ImageFrom(checker(16, 16, 4))
	}

	fw, fh := cfg.SpriteWidth, cfg.SpriteHeight
	if fw == 0 || fh == 0 {
		fw, fh = sheetImg.Dimensions()
	}
	sheet, err := widget.NewSheet(sheetImg, fw, fh)
	if err != nil {
		return nil, err
	}
	for i := 0; i < sheet.Len(); i++ {
		sp, err := sheet.Frame(i)
		if err != nil {
			return nil, err
		}
		s.frames = append(s.frames, sp)
	}

	s.status = widget.NewLabel("", pixel.White, pixel.RGB(0x20, 0x20, 0x40), widget.WithPadding(1))
	s.con = widget.NewConsole(24, 4)
	s.logf("scene: %d sprite frames of %dx%d", len(s.frames), fw, fh)
	return s, nil
}

func (s *Scene) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	s.log.WriteLineString(line)
	fmt.Fprintln(s.con, line)
}

// Frame draws one frame into c. It does not present.
func (s *Scene) Frame(c *gfx.Context) error {
	if c.KeyDown(hal.KeySpace) {
		if !s.paused {
			s.logf("paused at frame %d", s.tick)
		}
		s.paused = true
	} else {
		s.paused = false
	}
	if !s.paused {
		s.step(c.Width(), c.Height())
	}

	c.Clear(gfx.ClearTo(s.cfg.Background))

	sp := s.frames[(s.tick/8)%len(s.frames)]
	c.Draw(s.x, s.y, sp)

	_, ch := s.con.Dimensions()
	c.Draw(0, c.Height()-ch, s.con)

	mx, my, ok := c.MousePosition()
	status := fmt.Sprintf("F%d", c.Frames())
	if ok {
		status += fmt.Sprintf(" %d,%d", int(mx), int(my))
		s.crosshair(c, int(mx), int(my), c.MouseDown(hal.MouseLeft))
	}
	s.status.SetText(status)
	c.Draw(1, 1, s.status)
	return nil
}

// step advances the sprite, bouncing at the buffer edges. Sprites may
// overshoot by one step and are clipped by the compositor.
func (s *Scene) step(w, h int) {
	s.tick++
	sw, sh := s.frames[0].Dimensions()
	s.x += s.dx
	s.y += s.dy
	if s.x < -sw/2 || s.x > w-sw/2 {
		s.dx = -s.dx
		s.logf("bounce x=%d", s.x)
	}
	if s.y < -sh/2 || s.y > h-sh/2 {
		s.dy = -s.dy
		s.logf("bounce y=%d", s.y)
	}
}

// crosshair uses strict single-pixel writes, so it checks bounds first.
func (s *Scene) crosshair(c *gfx.Context, mx, my int, pressed bool) {
	col := pixel.White
	if pressed {
		col = pixel.RGB(0xFF, 0x40, 0x40)
	}
	buf := c.Buffer()
	for d := -2; d <= 2; d++ {
		if buf.InBounds(mx+d, my) {
			c.SetPixel(mx+d, my, col)
		}
		if buf.InBounds(mx, my+d) {
			c.SetPixel(mx, my+d, col)
		}
	}
}

func checker(w, h, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	a := color.RGBA{R: 0xE0, G: 0x60, B: 0x20, A: 0xFF}
	b := color.RGBA{R: 0x20, G: 0x60, B: 0xE0, A: 0xFF}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}
