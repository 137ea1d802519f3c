package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// NewLogger returns a Logger writing lines to w. A nil w means stdout.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}

// inputState is the last polled pointer/keyboard state shared between the
// host event source and the app goroutine.
type inputState struct {
	mu       sync.Mutex
	mx, my   float32
	mouseIn  bool
	buttons  [3]bool
	keysDown map[Key]bool
}

func newInputState() *inputState {
	return &inputState{keysDown: make(map[Key]bool)}
}

func (s *inputState) mousePosition() (float32, float32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mx, s.my, s.mouseIn
}

func (s *inputState) mouseDown(b MouseButton) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if int(b) >= len(s.buttons) {
		return false
	}
	return s.buttons[b]
}

func (s *inputState) keyDown(k Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keysDown[k]
}

func (s *inputState) setMouse(x, y float32, in bool) {
	s.mu.Lock()
	s.mx, s.my, s.mouseIn = x, y, in
	s.mu.Unlock()
}

func (s *inputState) setButton(b MouseButton, down bool) {
	s.mu.Lock()
	if int(b) < len(s.buttons) {
		s.buttons[b] = down
	}
	s.mu.Unlock()
}

func (s *inputState) setKey(k Key, down bool) {
	s.mu.Lock()
	if down {
		s.keysDown[k] = true
	} else {
		delete(s.keysDown, k)
	}
	s.mu.Unlock()
}
