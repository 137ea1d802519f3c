//go:build cgo

package hal

import (
	"fmt"
	"sync"

	"blit/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window of cfg.Width*cfg.Scale by
// cfg.Height*cfg.Scale and runs app against it on its own goroutine.
// It blocks the calling goroutine, which must be the main one, until the
// window is closed and app has returned.
//
// Present on the window surface waits for the next host tick, so the app
// loop runs at most cfg.TPS frames per second.
func RunWindow(cfg SurfaceConfig, app func(Surface) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	s := newWindowSurface(cfg)
	title := cfg.Title
	if title == "" {
		title = "blit"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	appErr := make(chan error, 1)
	go func() {
		err := app(s)
		close(s.appDone)
		appErr <- err
	}()

	runErr := ebiten.RunGame(&hostGame{s: s})
	s.markClosed()
	err := <-appErr
	if runErr != nil {
		return fmt.Errorf("%w: %w", ErrWindow, runErr)
	}
	return err
}

type windowSurface struct {
	cfg   SurfaceConfig
	input *inputState

	mu     sync.Mutex
	frame  []byte
	dirty  bool
	closed bool
	tick   chan struct{}

	done    chan struct{}
	appDone chan struct{}
}

func newWindowSurface(cfg SurfaceConfig) *windowSurface {
	return &windowSurface{
		cfg:     cfg,
		input:   newInputState(),
		frame:   make([]byte, cfg.Width*cfg.Height*4),
		tick:    make(chan struct{}),
		done:    make(chan struct{}),
		appDone: make(chan struct{}),
	}
}

func (s *windowSurface) Present(pix []uint32, width, height int) error {
	if !checkFrame(pix, width, height) || width != s.cfg.Width || height != s.cfg.Height {
		return fmt.Errorf("hal: frame %dx%d (%d px) does not match %dx%d surface", width, height, len(pix), s.cfg.Width, s.cfg.Height)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSurfaceClosed
	}
	packedToRGBA(s.frame, pix)
	s.dirty = true
	tick := s.tick
	s.mu.Unlock()

	select {
	case <-tick:
		return nil
	case <-s.done:
		return ErrSurfaceClosed
	}
}

func (s *windowSurface) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *windowSurface) MousePosition() (float32, float32, bool) { return s.input.mousePosition() }
func (s *windowSurface) MouseDown(b MouseButton) bool             { return s.input.mouseDown(b) }
func (s *windowSurface) KeyDown(k Key) bool                       { return s.input.keyDown(k) }

// Close is a no-op: the window lives until the user closes it or the app
// function returns.
func (s *windowSurface) Close() error { return nil }

func (s *windowSurface) markClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// advance releases every Present waiting on the current tick.
func (s *windowSurface) advance() {
	s.mu.Lock()
	close(s.tick)
	s.tick = make(chan struct{})
	s.mu.Unlock()
}

type hostGame struct {
	s     *windowSurface
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	select {
	case <-g.s.appDone:
		return ebiten.Termination
	default:
	}
	pollInput(g.s.input, g.s.cfg.Width, g.s.cfg.Height)
	g.s.advance()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.s
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(s.cfg.Width, s.cfg.Height)
	}

	s.mu.Lock()
	if s.dirty {
		g.fbImg.WritePixels(s.frame)
		s.dirty = false
	}
	s.mu.Unlock()

	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.cfg.Width, g.s.cfg.Height
}
