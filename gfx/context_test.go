package gfx

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"blit/hal"
	"blit/pixel"

	"github.com/gdamore/tcell/v2"
)

var red = pixel.RGB(0xFF, 0, 0)

func newTestContext(t *testing.T, w, h int) (*Context, *hal.Headless) {
	t.Helper()
	c, surf, err := OpenHeadless(context.Background(), Config{Width: w, Height: h}, hal.HeadlessConfig{})
	if err != nil {
		t.Fatalf("OpenHeadless: %v", err)
	}
	return c, surf
}

func expectPanic[T error](t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", name)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: panic value %T is not an error", name, r)
		}
		var target T
		if !errors.As(err, &target) {
			t.Fatalf("%s: panic %v has unexpected type %T", name, err, err)
		}
	}()
	fn()
}

func TestClearDefaultsToBlack(t *testing.T) {
	c, _ := newTestContext(t, 3, 3)
	c.Clear(ClearTo(pixel.White))
	c.Clear()
	for i, v := range c.Buffer().Pix() {
		if v != pixel.Black.Packed() {
			t.Fatalf("pix[%d] = %#x, want black", i, v)
		}
	}
}

func TestClearWhite(t *testing.T) {
	c, _ := newTestContext(t, 5, 4)
	c.Clear(ClearTo(pixel.White))
	if c.Buffer().Len() != 20 {
		t.Fatalf("len = %d, want 20", c.Buffer().Len())
	}
	for i, v := range c.Buffer().Pix() {
		if v != pixel.White.Packed() {
			t.Fatalf("pix[%d] = %#x, want white", i, v)
		}
	}
}

func TestClearIdempotent(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	col := pixel.RGB(1, 2, 3)
	c.Clear(ClearTo(col))
	once := append([]uint32(nil), c.Buffer().Pix()...)
	c.Clear(ClearTo(col))
	for i, v := range c.Buffer().Pix() {
		if v != once[i] {
			t.Fatalf("pix[%d] = %#x after second clear, want %#x", i, v, once[i])
		}
	}
}

func TestSetPixelStrict(t *testing.T) {
	c, _ := newTestContext(t, 4, 3)
	c.SetPixel(3, 2, red)
	if got := c.Buffer().At(3, 2); got != red.Packed() {
		t.Fatalf("At(3,2) = %#x", got)
	}

	expectPanic[*pixel.BoundsError](t, "SetPixel(4,0)", func() { c.SetPixel(4, 0, red) })
	expectPanic[*pixel.BoundsError](t, "SetPixel(0,3)", func() { c.SetPixel(0, 3, red) })
	expectPanic[*pixel.BoundsError](t, "SetPixel(-1,0)", func() { c.SetPixel(-1, 0, red) })

	// The faulted write to (4,0) must not land on (0,1).
	if got := c.Buffer().At(0, 1); got != 0 {
		t.Fatalf("At(0,1) = %#x, want untouched", got)
	}
}

func TestDrawRegionClipsTopLeft(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	src := NewRegion(4, 4, red)
	c.DrawRegion(-2, -2, src.W, src.H, src.Colors)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint32(0)
			if x < 2 && y < 2 {
				want = red.Packed()
			}
			if got := c.Buffer().At(x, y); got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestDrawRegionClipsBottomRight(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	c.Draw(6, 7, NewRegion(4, 4, red))

	n := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c.Buffer().At(x, y) == red.Packed() {
				n++
				if x < 6 || y < 7 {
					t.Fatalf("unexpected write at (%d,%d)", x, y)
				}
			}
		}
	}
	if n != 2 {
		t.Fatalf("wrote %d pixels, want 2", n)
	}
}

func TestDrawRegionFullyOffscreen(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	for _, off := range [][2]int{{4, 0}, {0, 4}, {-2, 0}, {0, -2}, {100, -100}} {
		c.DrawRegion(off[0], off[1], 2, 2, NewRegion(2, 2, red).Colors)
	}
	for i, v := range c.Buffer().Pix() {
		if v != 0 {
			t.Fatalf("pix[%d] = %#x, want untouched", i, v)
		}
	}
}

func TestDrawRegionLengthMismatch(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	expectPanic[*LengthError](t, "short", func() {
		c.DrawRegion(0, 0, 2, 2, make([]pixel.Color, 3))
	})
	// Position never matters for the length check.
	expectPanic[*LengthError](t, "offscreen", func() {
		c.DrawRegion(100, 100, 2, 2, make([]pixel.Color, 5))
	})
	expectPanic[*LengthError](t, "negative", func() {
		c.DrawRegion(0, 0, -1, -1, make([]pixel.Color, 1))
	})
	for i, v := range c.Buffer().Pix() {
		if v != 0 {
			t.Fatalf("pix[%d] = %#x after faulted draw", i, v)
		}
	}
}

func TestDrawRegionSizeOverflow(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	// side*side wraps to zero, which would match an empty slice.
	const side = 1 << (strconv.IntSize / 2)
	expectPanic[*LengthError](t, "overflow", func() {
		c.DrawRegion(0, 0, side, side, nil)
	})
	expectPanic[*LengthError](t, "overflow offscreen", func() {
		c.DrawRegion(-side, -side, side, side, nil)
	})
}

type badSource struct{}

func (badSource) Dimensions() (int, int) { return 3, 3 }
func (badSource) Data() []pixel.Color    { return make([]pixel.Color, 8) }

func TestDrawRenderableLengthMismatch(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	expectPanic[*LengthError](t, "Draw", func() { c.Draw(0, 0, badSource{}) })
}

func TestDrawEmptyRegion(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	c.Draw(1, 1, &Region{})
	for i, v := range c.Buffer().Pix() {
		if v != 0 {
			t.Fatalf("pix[%d] = %#x", i, v)
		}
	}
}

func TestEndToEndScenario(t *testing.T) {
	c, surf := newTestContext(t, 8, 8)
	c.Clear()
	c.Draw(3, 3, NewRegion(2, 2, pixel.White))
	if err := c.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	white := map[[2]int]bool{{3, 3}: true, {4, 3}: true, {3, 4}: true, {4, 4}: true}
	frame := surf.LastFrame()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := pixel.Black.Packed()
			if white[[2]int{x, y}] {
				want = pixel.White.Packed()
			}
			if got := frame[y*8+x]; got != want {
				t.Fatalf("(%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestPresentAfterCloseReportsError(t *testing.T) {
	c, surf := newTestContext(t, 2, 2)
	surf.Close()
	if c.IsOpen() {
		t.Fatal("expected closed")
	}
	err := c.Present()
	if !errors.Is(err, ErrPresent) || !errors.Is(err, hal.ErrSurfaceClosed) {
		t.Fatalf("Present = %v, want ErrPresent wrapping ErrSurfaceClosed", err)
	}
	if c.Frames() != 0 {
		t.Fatalf("Frames = %d, want 0", c.Frames())
	}
}

func TestRunStopsWhenSurfaceCloses(t *testing.T) {
	c, _, err := OpenHeadless(context.Background(), Config{Width: 2, Height: 2}, hal.HeadlessConfig{Ticks: 3})
	if err != nil {
		t.Fatalf("OpenHeadless: %v", err)
	}
	calls := 0
	err = c.Run(func(c *Context) error {
		calls++
		c.Clear(ClearTo(pixel.White))
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 3 || c.Frames() != 3 {
		t.Fatalf("calls = %d frames = %d, want 3", calls, c.Frames())
	}
}

func TestRunReturnsFrameError(t *testing.T) {
	c, _ := newTestContext(t, 2, 2)
	boom := errors.New("boom")
	if err := c.Run(func(*Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want boom", err)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := New(nil, 2, 2); !errors.Is(err, ErrSurfaceCreate) {
		t.Fatalf("New(nil) = %v, want ErrSurfaceCreate", err)
	}
	if _, _, err := OpenHeadless(context.Background(), Config{}, hal.HeadlessConfig{}); !errors.Is(err, ErrSurfaceCreate) {
		t.Fatalf("OpenHeadless(0x0) = %v, want ErrSurfaceCreate", err)
	}
}

func TestInputPassThrough(t *testing.T) {
	c, surf := newTestContext(t, 4, 4)
	surf.SetMouse(2, 3, true)
	surf.SetMouseButton(hal.MouseRight, true)
	surf.SetKey(hal.KeyEnter, true)

	x, y, ok := c.MousePosition()
	if !ok || x != 2 || y != 3 {
		t.Fatalf("MousePosition = (%v,%v,%v)", x, y, ok)
	}
	if !c.MouseDown(hal.MouseRight) || c.MouseDown(hal.MouseLeft) {
		t.Fatal("unexpected mouse button state")
	}
	if !c.KeyDown(hal.KeyEnter) {
		t.Fatal("expected enter down")
	}
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestLoggerReceivesLifecycle(t *testing.T) {
	log := &lineLog{}
	c, surf, err := OpenHeadless(context.Background(), Config{Width: 2, Height: 2}, hal.HeadlessConfig{}, WithLogger(log))
	if err != nil {
		t.Fatalf("OpenHeadless: %v", err)
	}
	surf.Close()
	_ = c.Present()
	if len(log.lines) != 2 {
		t.Fatalf("log lines = %q, want open + present failure", log.lines)
	}
	if log.lines[0] != "gfx: surface open 2x2" {
		t.Fatalf("first line = %q", log.lines[0])
	}
}

func TestScaleDoesNotAffectAddressing(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := hal.NewTerminalOnScreen(screen, Config{Width: 4, Height: 2, Scale: 3, TPS: 1000}.surface())
	if err != nil {
		t.Fatalf("NewTerminalOnScreen: %v", err)
	}
	screen.SetSize(80, 24)
	c, err := New(term, 4, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	if c.Width() != 4 || c.Height() != 2 || c.Buffer().Len() != 8 {
		t.Fatalf("buffer %dx%d len %d, want 4x2 len 8", c.Width(), c.Height(), c.Buffer().Len())
	}
	c.SetPixel(3, 1, pixel.White)
	expectPanic[*pixel.BoundsError](t, "scaled x", func() { c.SetPixel(4, 0, pixel.White) })
	expectPanic[*pixel.BoundsError](t, "scaled y", func() { c.SetPixel(0, 2, pixel.White) })

	c.Clear(ClearTo(red))
	if err := c.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	// 4x2 at scale 3 covers 12 columns by 3 half-block rows.
	cells, sw, _ := screen.GetContents()
	for cy := 0; cy < 3; cy++ {
		for cx := 0; cx < 12; cx++ {
			fg, _, _ := cells[cy*sw+cx].Style.Decompose()
			if fg.Hex() != int32(red.Packed()) {
				t.Fatalf("cell (%d,%d) fg = %#x, want %#x", cx, cy, fg.Hex(), red.Packed())
			}
		}
	}
	if fg, _, _ := cells[12].Style.Decompose(); fg.Hex() == int32(red.Packed()) {
		t.Fatal("cell (12,0) drawn past the scaled surface")
	}
	if fg, _, _ := cells[3*sw].Style.Decompose(); fg.Hex() == int32(red.Packed()) {
		t.Fatal("cell (0,3) drawn past the scaled surface")
	}
}
