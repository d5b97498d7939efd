// Package raster paints touchui screens into an in-memory image. It needs no
// display and is used for headless runs, screenshots and tests.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/phanxgames/touchui"
)

// arcSegments is the number of line segments per quarter circle when
// flattening curves.
const arcSegments = 8

type point struct{ x, y float32 }

// Canvas is a touchui.Surface and touchui.Snapshotter backed by an
// *image.RGBA. Filled shapes are anti-aliased by the x/image/vector
// rasterizer; lines are drawn pixel by pixel.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a w by h canvas cleared to black.
func New(w, h int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
	c.Fill(touchui.Black)
	return c
}

// Image returns the backing image. It is live: later paints show up in it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Snapshot returns a copy of the current pixels.
func (c *Canvas) Snapshot() image.Image {
	out := image.NewRGBA(c.img.Rect)
	copy(out.Pix, c.img.Pix)
	return out
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col touchui.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// Rect paints an axis-aligned rectangle, or its one pixel border.
func (c *Canvas) Rect(x, y, w, h int, col touchui.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		c.fillRect(x, y, w, h, col)
		return
	}
	c.fillRect(x, y, w, 1, col)
	c.fillRect(x, y+h-1, w, 1, col)
	c.fillRect(x, y, 1, h, col)
	c.fillRect(x+w-1, y, 1, h, col)
}

func (c *Canvas) fillRect(x, y, w, h int, col touchui.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	draw.Draw(c.img, r, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// RoundRect paints a rectangle with corners of radius r.
func (c *Canvas) RoundRect(x, y, w, h, r int, col touchui.Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	outer := roundRectPoints(float32(x), float32(y), float32(w), float32(h), float32(r))
	if filled || w <= 2 || h <= 2 {
		c.fillPaths(col, outer)
		return
	}
	inner := roundRectPoints(float32(x+1), float32(y+1), float32(w-2), float32(h-2), float32(max(r-1, 0)))
	c.fillPaths(col, outer, reversed(inner))
}

// Ellipse paints an ellipse centered on the pixel (cx, cy).
func (c *Canvas) Ellipse(cx, cy, rx, ry int, col touchui.Color, filled bool) {
	if rx < 0 || ry < 0 {
		return
	}
	ox, oy := float32(cx)+0.5, float32(cy)+0.5
	outer := ellipsePoints(ox, oy, float32(rx)+0.5, float32(ry)+0.5)
	if filled || rx < 1 || ry < 1 {
		c.fillPaths(col, outer)
		return
	}
	inner := ellipsePoints(ox, oy, float32(rx)-0.5, float32(ry)-0.5)
	c.fillPaths(col, outer, reversed(inner))
}

// Polygon paints a closed polygon through pts.
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
	path := make([]point, len(pts))
	for i, p := range pts {
		path[i] = point{float32(p.X) + 0.5, float32(p.Y) + 0.5}
	}
	c.fillPaths(col, path)
}

// Line paints a one pixel line from (x0, y0) to (x1, y1) inclusive.
func (c *Canvas) Line(x0, y0, x1, y1 int, col touchui.Color) {
	rgba := col.RGBA()
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		c.img.SetRGBA(x0, y0, rgba)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// HLine paints length pixels to the right of (x, y).
func (c *Canvas) HLine(x, y, length int, col touchui.Color) {
	if length <= 0 {
		return
	}
	c.fillRect(x, y, length, 1, col)
}

// fillPaths rasterizes the closed paths together, so a reversed inner path
// cuts a hole in the outer one.
func (c *Canvas) fillPaths(col touchui.Color, paths ...[]point) {
	b := c.img.Rect
	c.z.Reset(b.Dx(), b.Dy())
	for _, p := range paths {
		if len(p) < 3 {
			continue
		}
		c.z.MoveTo(p[0].x, p[0].y)
		for _, q := range p[1:] {
			c.z.LineTo(q.x, q.y)
		}
		c.z.ClosePath()
	}
	c.z.Draw(c.img, b, image.NewUniform(col.RGBA()), image.Point{})
}

// roundRectPoints flattens a rounded rectangle clockwise (in screen space).
func roundRectPoints(x, y, w, h, r float32) []point {
	r = min(r, w/2, h/2)
	if r <= 0 {
		return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	pts := make([]point, 0, 4*(arcSegments+1))
	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x + w - r, y + r, -90},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 90},
		{x + r, y + r, 180},
	}
	for _, k := range corners {
		for i := 0; i <= arcSegments; i++ {
			a := (k.start + 90*float64(i)/arcSegments) * math.Pi / 180
			pts = append(pts, point{
				k.cx + r*float32(math.Cos(a)),
				k.cy + r*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

func ellipsePoints(cx, cy, rx, ry float32) []point {
	n := 4 * arcSegments * 2
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	return pts
}

func reversed(p []point) []point {
	out := make([]point, len(p))
	for i, q := range p {
		out[len(p)-1-i] = q
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
