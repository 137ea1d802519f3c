package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGB value.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{R: 0x00, G: 0x00, B: 0x00}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
)

var errBadHex = errors.New("pixel: invalid hex color")

// RGB returns the color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Packed returns the color as a packed pixel: r<<16 | g<<8 | b.
// The upper 8 bits are always zero.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack is the inverse of Packed. Bits above bit 23 are ignored.
func Unpack(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// RGBA returns c as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	if rgba, ok := c.(color.RGBA); ok {
		return Color{R: rgba.R, G: rgba.G, B: rgba.B}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		v, err := strconv.ParseUint(h, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q", errBadHex, s)
		}
		r := uint8(v>>8) & 0xF
		g := uint8(v>>4) & 0xF
		b := uint8(v) & 0xF
		return Color{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q", errBadHex, s)
		}
		return Unpack(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("%w %q", errBadHex, s)
	}
}
