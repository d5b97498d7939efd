package ebitengine

import (
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/touchui"
)

// Writer prints text onto a Canvas through an Ebitengine text face.
type Writer struct {
	canvas *Canvas
	face   text.Face
	height int
	width  int
}

// NewWriter wraps a golang.org/x/image font.Face. A nil face means
// basicfont.Face7x13, which matches the raster backend pixel for pixel in
// glyph size.
func NewWriter(c *Canvas, face font.Face) *Writer {
	if face == nil {
		face = basicfont.Face7x13
	}
	f := text.NewGoXFace(face)
	m := f.Metrics()
	return &Writer{
		canvas: c,
		face:   f,
		height: int(math.Ceil(m.HAscent + m.HDescent)),
		width:  int(math.Ceil(text.Advance("M", f))),
	}
}

func (w *Writer) Height() int   { return w.height }
func (w *Writer) MaxWidth() int { return w.width }

// Print paints s with its top-left corner at (x, y) on a bg filled cell.
func (w *Writer) Print(s string, x, y int, fg, bg touchui.Color) {
	if s == "" {
		return
	}
	w.canvas.Rect(x, y, utf8.RuneCountInString(s)*w.width, w.height, bg, true)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(fg.RGBA())
	text.Draw(w.canvas.img, s, w.face, op)
}
