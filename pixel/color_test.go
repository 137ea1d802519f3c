package pixel

import (
	"image/color"
	"testing"
)

func TestPackOrdering(t *testing.T) {
	if got := RGB(0x12, 0x34, 0x56).Packed(); got != 0x123456 {
		t.Fatalf("Packed = %#x, want 0x123456", got)
	}
	if got := White.Packed(); got != 0x00FFFFFF {
		t.Fatalf("White.Packed = %#x, want 0xffffff", got)
	}
	if got := Black.Packed(); got != 0 {
		t.Fatalf("Black.Packed = %#x, want 0", got)
	}
}

func TestPackRoundTrip(t *testing.T) {
	// Every channel value, with the other two varied so channels cannot alias.
	for v := 0; v < 256; v++ {
		for _, c := range []Color{
			RGB(uint8(v), 0, 0),
			RGB(0, uint8(v), 0),
			RGB(0, 0, uint8(v)),
			RGB(uint8(v), uint8(255-v), uint8(v*7)),
		} {
			if got := Unpack(c.Packed()); got != c {
				t.Fatalf("Unpack(Packed(%v)) = %v", c, got)
			}
		}
	}
}

func TestUnpackIgnoresHighBits(t *testing.T) {
	if got := Unpack(0xAB123456); got != RGB(0x12, 0x34, 0x56) {
		t.Fatalf("Unpack = %v, want #123456", got)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{R: 1, G: 2, B: 3, A: 255}); got != RGB(1, 2, 3) {
		t.Fatalf("FromColor(RGBA) = %v", got)
	}
	if got := FromColor(color.Gray{Y: 0x80}); got != RGB(0x80, 0x80, 0x80) {
		t.Fatalf("FromColor(Gray) = %v", got)
	}
	if got := RGB(9, 8, 7).RGBA(); got != (color.RGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Fatalf("RGBA = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#123456", RGB(0x12, 0x34, 0x56)},
		{"ff0000", RGB(0xFF, 0, 0)},
		{"#fff", White},
		{" #0a0 ", RGB(0, 0xAA, 0)},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "#12345", "#gggggg", "#12"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("ParseHex(%q): expected error", bad)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(0x12, 0x34, 0x56).String(); got != "#123456" {
		t.Fatalf("String = %q", got)
	}
}
