package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"blit/gfx"
	"blit/hal"
	"blit/pixel"
	"blit/widget"
)

// Guard wraps frame so a fault raised while drawing is logged and painted
// onto the frame's context before it propagates. The panic is re-raised
// unchanged.
func Guard(log hal.Logger, frame func(*gfx.Context) error) func(*gfx.Context) error {
	if log == nil {
		log = hal.NopLogger{}
	}
	return func(c *gfx.Context) error {
		defer func() {
			if v := recover(); v != nil {
				ShowFault(c, log, v, debug.Stack())
				panic(v)
			}
		}()
		return frame(c)
	}
}

// ShowFault logs v and its stack, then paints them black on white and
// presents one frame. Lines that do not fit are dropped from the screen.
func ShowFault(c *gfx.Context, log hal.Logger, v any, stack []byte) {
	lines := []string{"blit fault:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.TrimSpace(line))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	for _, l := range lines {
		log.WriteLineString(l)
	}

	c.Clear(gfx.ClearTo(pixel.White))

	probe := widget.NewLabel("0", pixel.Black, pixel.White)
	glyphW, lineH := probe.Dimensions()
	if glyphW <= 0 || lineH <= 0 {
		_ = c.Present()
		return
	}
	cols := c.Width() / glyphW
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineH > c.Height() {
				_ = c.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Draw(0, y, widget.NewLabel(chunk, pixel.Black, pixel.White))
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
