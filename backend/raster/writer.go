package raster

import (
	"image"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/touchui"
)

// Writer prints text onto a Canvas with a fixed-pitch font.Face.
type Writer struct {
	canvas *Canvas
	face   font.Face
	height int
	width  int
	ascent int
}

// NewWriter returns a Writer for c. A nil face means basicfont.Face7x13.
func NewWriter(c *Canvas, face font.Face) *Writer {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = font.MeasureString(face, "M")
	}
	return &Writer{
		canvas: c,
		face:   face,
		height: m.Height.Ceil(),
		width:  adv.Ceil(),
		ascent: m.Ascent.Ceil(),
	}
}

// Height returns the line height in pixels.
func (w *Writer) Height() int { return w.height }

// MaxWidth returns the advance of the widest glyph.
func (w *Writer) MaxWidth() int { return w.width }

// Print paints s with its top-left corner at (x, y) on a bg filled cell.
func (w *Writer) Print(s string, x, y int, fg, bg touchui.Color) {
	if s == "" {
		return
	}
	w.canvas.fillRect(x, y, utf8.RuneCountInString(s)*w.width, w.height, bg)
	d := font.Drawer{
		Dst:  w.canvas.img,
		Src:  image.NewUniform(fg.RGBA()),
		Face: w.face,
		Dot:  fixed.P(x, y+w.ascent),
	}
	d.DrawString(s)
}
