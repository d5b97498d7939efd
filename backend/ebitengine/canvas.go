// Package ebitengine runs touchui screens in an Ebitengine window, using the
// mouse or a touchscreen as the panel.
package ebitengine

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/touchui"
)

const arcSegments = 8

// Canvas is a retained offscreen image acting as the panel framebuffer. It
// implements touchui.Surface and touchui.Snapshotter. Paint only from the
// loop goroutine, which under Run is the game's Update.
type Canvas struct {
	img  *ebiten.Image
	path vector.Path
}

// NewCanvas creates a w by h canvas cleared to black.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: ebiten.NewImage(w, h)}
	c.Fill(touchui.Black)
	return c
}

// Image returns the framebuffer.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Snapshot reads the framebuffer back. It only works once the game is
// running.
func (c *Canvas) Snapshot() image.Image {
	b := c.img.Bounds()
	out := image.NewRGBA(b)
	c.img.ReadPixels(out.Pix)
	return out
}

func (c *Canvas) Fill(col touchui.Color) {
	c.img.Fill(col.RGBA())
}

func (c *Canvas) Rect(x, y, w, h int, col touchui.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		vector.FillRect(c.img, float32(x), float32(y), float32(w), float32(h), col.RGBA(), false)
		return
	}
	vector.StrokeRect(c.img, float32(x)+0.5, float32(y)+0.5, float32(w-1), float32(h-1), 1, col.RGBA(), false)
}

func (c *Canvas) RoundRect(x, y, w, h, r int, col touchui.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	outer := roundRectPath(float32(x), float32(y), float32(w), float32(h), float32(r))
	if filled || w <= 2 || h <= 2 {
		c.fill(col, outer)
		return
	}
	inner := roundRectPath(float32(x+1), float32(y+1), float32(w-2), float32(h-2), float32(max(r-1, 0)))
	c.fill(col, outer, inner)
}

func (c *Canvas) Ellipse(cx, cy, rx, ry int, col touchui.Color, filled bool) {
	if rx < 0 || ry < 0 {
		return
	}
	ox, oy := float32(cx)+0.5, float32(cy)+0.5
	if rx == ry {
		if filled || rx < 1 {
			vector.FillCircle(c.img, ox, oy, float32(rx)+0.5, col.RGBA(), true)
		} else {
			vector.StrokeCircle(c.img, ox, oy, float32(rx), 1, col.RGBA(), true)
		}
		return
	}
	outer := ellipsePath(ox, oy, float32(rx)+0.5, float32(ry)+0.5)
	if filled || rx < 1 || ry < 1 {
		c.fill(col, outer)
		return
	}
	c.fill(col, outer, ellipsePath(ox, oy, float32(rx)-0.5, float32(ry)-0.5))
}

func (c *Canvas) Line(x0, y0, x1, y1 int, col touchui.Color) {
	vector.StrokeLine(c.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, col.RGBA(), true)
}

func (c *Canvas) HLine(x, y, length int, col touchui.Color) {
	if length <= 0 {
		return
	}
	vector.FillRect(c.img, float32(x), float32(y), float32(length), 1, col.RGBA(), false)
}

func (c *Canvas) Polygon(pts []image.Point, col touchui.Color, filled bool) {
	if len(pts) == 0 {
		return
	}
	if !filled || len(pts) < 3 {
		for i := range pts {
			j := (i + 1) % len(pts)
			c.Line(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y, col)
		}
		return
	}
	var p vector.Path
	p.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, q := range pts[1:] {
		p.LineTo(float32(q.X)+0.5, float32(q.Y)+0.5)
	}
	p.Close()
	c.fill(col, &p)
}

// fill draws paths as subpaths of one path with the even-odd rule, so a
// nested path becomes a hole.
func (c *Canvas) fill(col touchui.Color, paths ...*vector.Path) {
	c.path.Reset()
	for _, p := range paths {
		c.path.AddPath(p, nil)
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col.RGBA())
	vector.FillPath(c.img, &c.path, &vector.FillOptions{FillRule: vector.FillRuleEvenOdd}, op)
}

func roundRectPath(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return &p
	}
	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x + w - r, y + r, -90},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 90},
		{x + r, y + r, 180},
	}
	first := true
	for _, k := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := (k.start + 90*float64(i)/arcSegments) * math.Pi / 180
			px := k.cx + r*float32(math.Cos(a))
			py := k.cy + r*float32(math.Sin(a))
			if first {
				p.MoveTo(px, py)
				first = false
				continue
			}
			p.LineTo(px, py)
		}
	}
	p.Close()
	return &p
}

func ellipsePath(cx, cy, rx, ry float32) *vector.Path {
	var p vector.Path
	n := 8 * arcSegments
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		px := cx + rx*float32(math.Cos(a))
		py := cy + ry*float32(math.Sin(a))
		if i == 0 {
			p.MoveTo(px, py)
			continue
		}
		p.LineTo(px, py)
	}
	p.Close()
	return &p
}
