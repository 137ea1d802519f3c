package widget

import (
	"strings"

	"blit/pixel"

	"tinygo.org/x/tinyfont"
)

// DefaultFont is the 3x5 pixel font used when none is given.
var DefaultFont tinyfont.Fonter = &tinyfont.TomThumb

// Label is a block of text rendered with a tinyfont font. Lines are split
// on '\n'; the label is sized to fit the widest line plus padding.
type Label struct {
	font    tinyfont.Fonter
	fg, bg  pixel.Color
	padding int

	text   string
	canvas *Canvas
}

// LabelOption configures a Label.
type LabelOption func(*Label)

// WithFont renders the label with f.
func WithFont(f tinyfont.Fonter) LabelOption {
	return func(l *Label) {
		if f != nil {
			l.font = f
		}
	}
}

// WithPadding adds p background pixels on every side.
func WithPadding(p int) LabelOption {
	return func(l *Label) {
		if p >= 0 {
			l.padding = p
		}
	}
}

// NewLabel renders text in fg on bg.
func NewLabel(text string, fg, bg pixel.Color, opts ...LabelOption) *Label {
	l := &Label{font: DefaultFont, fg: fg, bg: bg}
	for _, opt := range opts {
		opt(l)
	}
	l.SetText(text)
	return l
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetText re-renders the label if text changed.
func (l *Label) SetText(text string) {
	if l.canvas != nil && text == l.text {
		return
	}
	l.text = text
	l.render()
}

func (l *Label) render() {
	lines := strings.Split(l.text, "\n")
	lineH := int(l.font.GetYAdvance())

	textW := 0
	for _, line := range lines {
		_, outbox := tinyfont.LineWidth(l.font, line)
		textW = max(textW, int(outbox))
	}

	w := textW + 2*l.padding
	h := len(lines)*lineH + 2*l.padding
	l.canvas = NewCanvas(w, h, l.bg)

	// tinyfont draws relative to the baseline, one pixel above the next line.
	fg := l.fg.RGBA()
	for i, line := range lines {
		baseline := l.padding + (i+1)*lineH - 1
		tinyfont.WriteLine(l.canvas, l.font, int16(l.padding), int16(baseline), line, fg)
	}
}

func (l *Label) Dimensions() (int, int) { return l.canvas.Dimensions() }
func (l *Label) Data() []pixel.Color    { return l.canvas.Data() }
