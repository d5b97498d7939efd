package touchui

import (
	"image"
	"unicode/utf8"
)

// Surface is the pixel drawing capability the widgets paint through. The
// Manager owns the only Surface; widgets reach it through their manager
// handle. Implementations live in backend/.
type Surface interface {
	Fill(c Color)
	Rect(x, y, w, h int, c Color, filled bool)
	RoundRect(x, y, w, h, r int, c Color, filled bool)
	Ellipse(x, y, rx, ry int, c Color, filled bool)
	Line(x0, y0, x1, y1 int, c Color)
	HLine(x, y, length int, c Color)
	Polygon(points []image.Point, c Color, filled bool)
}

// Writer is a font bound to a Surface. Glyph metrics are fixed-pitch
// estimates: layout uses MaxWidth for every character.
type Writer interface {
	Height() int
	MaxWidth() int
	// Print paints s with its top-left corner at (x, y), glyphs in fg over a
	// bg-colored cell.
	Print(s string, x, y int, fg, bg Color)
}

// Snapshotter is implemented by surfaces that can hand back their current
// pixels, e.g. for screenshots.
type Snapshotter interface {
	Snapshot() image.Image
}

// TextWidth estimates the rendered width of s as character count times the
// widest glyph.
func TextWidth(w Writer, s string) int {
	return utf8.RuneCountInString(s) * w.MaxWidth()
}
