package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
}

// Terminal is a Surface that draws into a tcell screen. Every cell holds two
// vertically stacked pixels using an upper half block with truecolor
// foreground and background.
//
// Escape or Ctrl-C closes the surface. Terminals report key presses, not
// releases, so KeyDown holds a key from its press through one whole frame:
// it is released by the second Present after the press.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int
	scale  int
	ticker *time.Ticker
	input  *inputState

	mu      sync.Mutex
	closed  bool
	pending map[Key]bool // pressed since the last Present
	held    map[Key]bool // pressed before the last Present
	done    chan struct{}
}

// NewTerminal opens the controlling terminal as a surface.
func NewTerminal(cfg SurfaceConfig) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("hal: terminal: %w", err)
	}
	return NewTerminalOnScreen(screen, cfg)
}

// NewTerminalOnScreen initializes screen and wraps it as a surface.
// Tests pass a tcell simulation screen.
func NewTerminalOnScreen(screen tcell.Screen, cfg SurfaceConfig) (*Terminal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("hal: terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	if cfg.Title != "" {
		screen.SetTitle(cfg.Title)
	}
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		width:   cfg.Width,
		height:  cfg.Height,
		scale:   cfg.Scale,
		ticker:  time.NewTicker(time.Second / time.Duration(cfg.TPS)),
		input:   newInputState(),
		pending: make(map[Key]bool),
		held:    make(map[Key]bool),
		done:    make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				t.Close()
				return
			}
			k, ok := tcellKeys[ev.Key()]
			if !ok && ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
				k, ok = KeySpace, true
			}
			if ok {
				t.mu.Lock()
				t.pending[k] = true
				t.input.setKey(k, true)
				t.mu.Unlock()
			}
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			x := float32(cx / t.scale)
			y := float32(cy * 2 / t.scale)
			inside := cx >= 0 && cy >= 0 && int(x) < t.width && int(y) < t.height
			t.input.setMouse(x, y, inside)
			btn := ev.Buttons()
			t.input.setButton(MouseLeft, btn&tcell.Button1 != 0)
			t.input.setButton(MouseRight, btn&tcell.Button2 != 0)
			t.input.setButton(MouseMiddle, btn&tcell.Button3 != 0)
		}
	}
}

func (t *Terminal) Present(pix []uint32, width, height int) error {
	if !checkFrame(pix, width, height) || width != t.width || height != t.height {
		return fmt.Errorf("hal: frame %dx%d (%d px) does not match %dx%d surface", width, height, len(pix), t.width, t.height)
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrSurfaceClosed
	}
	t.draw(pix)
	t.screen.Show()
	for k := range t.held {
		if !t.pending[k] {
			t.input.setKey(k, false)
		}
	}
	clear(t.held)
	t.held, t.pending = t.pending, t.held
	t.mu.Unlock()

	select {
	case <-t.ticker.C:
		return nil
	case <-t.done:
		return ErrSurfaceClosed
	}
}

// draw maps the logical frame onto cells, replicating pixels scale times.
func (t *Terminal) draw(pix []uint32) {
	cols := t.width * t.scale
	rows := (t.height*t.scale + 1) / 2
	sw, sh := t.screen.Size()
	if cols > sw {
		cols = sw
	}
	if rows > sh {
		rows = sh
	}
	for cy := 0; cy < rows; cy++ {
		top := (cy * 2) / t.scale
		bot := (cy*2 + 1) / t.scale
		for cx := 0; cx < cols; cx++ {
			x := cx / t.scale
			fg := pix[top*t.width+x]
			bg := fg
			if bot < t.height {
				bg = pix[bot*t.width+x]
			}
			t.screen.SetContent(cx, cy, halfBlock, nil, cellStyle(fg, bg))
		}
	}
}

func cellStyle(fg, bg uint32) tcell.Style {
	fr, fgc, fb := unpackRGB(fg)
	br, bgc, bb := unpackRGB(bg)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fr), int32(fgc), int32(fb))).
		Background(tcell.NewRGBColor(int32(br), int32(bgc), int32(bb)))
}

func (t *Terminal) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

func (t *Terminal) MousePosition() (float32, float32, bool) { return t.input.mousePosition() }
func (t *Terminal) MouseDown(b MouseButton) bool             { return t.input.mouseDown(b) }
func (t *Terminal) KeyDown(k Key) bool                       { return t.input.keyDown(k) }

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	t.ticker.Stop()
	close(t.done)
	t.screen.Fini()
	return nil
}
