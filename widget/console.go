package widget

import (
	"blit/pixel"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

const (
	consoleFontHeight = 6
	consoleFontOffset = 5
)

// Console is a text terminal widget. Bytes written to it are interpreted by
// tinyterm, including ANSI color sequences, and drawn into a canvas the
// compositor can blit.
type Console struct {
	canvas *Canvas
	term   *tinyterm.Terminal
}

// NewConsole returns a console of cols x rows character cells.
func NewConsole(cols, rows int) *Console {
	_, cw := tinyfont.LineWidth(&tinyfont.TomThumb, "0")
	c := &Console{
		canvas: NewCanvas(cols*int(cw), rows*consoleFontHeight, pixel.Black),
	}
	c.term = tinyterm.NewTerminal(c.canvas)
	c.term.Configure(&tinyterm.Config{
		Font:       &tinyfont.TomThumb,
		FontHeight: consoleFontHeight,
		FontOffset: consoleFontOffset,
	})
	return c
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	return c.term.Write(p)
}

func (c *Console) Dimensions() (int, int) { return c.canvas.Dimensions() }
func (c *Console) Data() []pixel.Color    { return c.canvas.Data() }
