package touchui

import (
	"image"
	"math"
)

const (
	legendPad       = 20 // legend radius beyond the face
	needleSpread    = 4  // degrees either side of the needle tip for its base
	needleBaseInset = 10 // base points sit this far inside the tip radius
)

// Dial is a round gauge with optional tick marks, a legend and a needle.
// Angles are degrees clockwise from straight up, in [0, 360). The dial does
// not react to touch.
type Dial struct {
	Control

	Radius     int
	SmallTicks int
	BigTicks   int
	Legend     []string

	FaceColor      Color
	SmallTickColor Color
	BigTickColor   Color
	NeedleColor    Color
	BossColor      Color

	needle    float64
	hasNeedle bool
}

// NewDial creates a dial centered on (x, y). fg is the rim color; the legend
// is painted in textColor over the screen background.
func NewDial(x, y, radius int, face, fg, textColor Color) *Dial {
	return &Dial{
		Control: Control{
			X: x, Y: y, W: 2 * radius, H: 2 * radius,
			FG:          fg,
			TextColor:   textColor,
			UseScreenBG: true,
		},
		Radius:         radius,
		FaceColor:      face,
		SmallTickColor: White,
		BigTickColor:   White,
		NeedleColor:    Red,
		BossColor:      Pink,
	}
}

// Value returns the needle angle and whether one has been set.
func (d *Dial) Value() (float64, bool) {
	return d.needle, d.hasNeedle
}

// HitTest covers the face's bounding square plus touch padding.
func (d *Dial) HitTest(x, y int) bool {
	r := Rect{X: d.X - d.Radius, Y: d.Y - d.Radius, W: 2 * d.Radius, H: 2 * d.Radius}
	return r.Pad(d.padding()).Contains(x, y)
}

func (d *Dial) bossSize() int {
	return int(float64(d.Radius) * 0.1)
}

// Draw paints face, ticks, boss, legend and, if set, the needle.
func (d *Dial) Draw() {
	if d.mgr == nil {
		return
	}
	surf := d.surface()
	surf.Ellipse(d.X, d.Y, d.Radius, d.Radius, d.FaceColor, true)
	surf.Ellipse(d.X, d.Y, d.Radius, d.Radius, d.FG, false)

	d.drawTicks(d.SmallTicks, d.SmallTickColor, 0.1)
	d.drawTicks(d.BigTicks, d.BigTickColor, 0.2)

	b := d.bossSize()
	surf.Ellipse(d.X, d.Y, b, b, d.BossColor, true)

	if len(d.Legend) > 0 {
		d.drawLegend()
	}
	if d.hasNeedle {
		d.drawNeedle()
	}
}

// drawTicks draws n spokes from the center to the rim, then covers all but
// the outer clear fraction with the face color so only tick ends remain.
func (d *Dial) drawTicks(n int, c Color, clear float64) {
	if n <= 0 {
		return
	}
	surf := d.surface()
	segment := 360 / float64(n)
	for angle := 0.0; angle < 360; angle += segment {
		tx, ty := polar(d.X, d.Y, float64(d.Radius), angle)
		surf.Line(d.X, d.Y, tx, ty, c)
	}
	inner := d.Radius - int(float64(d.Radius)*clear)
	surf.Ellipse(d.X, d.Y, inner, inner, d.FaceColor, true)
}

// legendNudge returns pixel corrections that visually center a legend glyph
// at angle. Each band covers roughly one octant.
func legendNudge(angle float64) (dx, dy int) {
	switch {
	case angle <= 22.5:
		return -5, 0
	case angle <= 45:
		return -5, -3
	case angle <= 112.5:
		return -8, -8
	case angle <= 157.5:
		return -5, -8
	case angle <= 180:
		return -5, -12
	case angle <= 202.5:
		return -8, -12
	case angle <= 247.5:
		return -8, -8
	case angle <= 270:
		return -12, -8
	case angle <= 315:
		return -8, -8
	case angle <= 337.5:
		return -12, -3
	default:
		return -8, 0
	}
}

func (d *Dial) drawLegend() {
	font := d.writer()
	if font == nil {
		return
	}
	segment := 360 / float64(len(d.Legend))
	angle := 0.0
	for _, s := range d.Legend {
		tx, ty := polar(d.X, d.Y, float64(d.Radius+legendPad), angle)
		nx, ny := legendNudge(angle)
		font.Print(s, tx+nx, ty+ny, d.TextColor, d.backColor())
		angle += segment
	}
}

// drawNeedle erases the inner disk, then paints the needle and the boss.
func (d *Dial) drawNeedle() {
	surf := d.surface()
	inner := d.Radius - int(float64(d.Radius)*0.2)
	surf.Ellipse(d.X, d.Y, inner, inner, d.FaceColor, true)

	length := float64(int(float64(d.Radius) * 0.7))
	tx, ty := polar(d.X, d.Y, length, d.needle)
	sx, sy := polar(d.X, d.Y, length-needleBaseInset, d.needle-needleSpread)
	lx, ly := polar(d.X, d.Y, length-needleBaseInset, d.needle+needleSpread)
	surf.Polygon([]image.Point{
		{X: tx, Y: ty},
		{X: sx, Y: sy},
		{X: d.X, Y: d.Y},
		{X: lx, Y: ly},
	}, d.NeedleColor, true)

	b := d.bossSize()
	surf.Ellipse(d.X, d.Y, b, b, d.BossColor, true)
}

// SetValue points the needle at angle, normalised into [0, 360). The needle
// is repainted only if the dial's screen is current. NaN and infinite angles
// are ignored.
func (d *Dial) SetValue(angle float64) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	if angle >= 360 {
		angle = 0
	}
	d.needle = angle
	d.hasNeedle = true
	if d.onActiveScreen() {
		d.drawNeedle()
	}
}

// polar converts a radius and angle (degrees clockwise from up) around
// (ox, oy) to panel coordinates.
func polar(ox, oy int, radius, angle float64) (int, int) {
	rad := angle * math.Pi / 180
	x := math.Round(radius * math.Sin(rad))
	y := math.Round(radius * math.Cos(rad))
	return ox + int(x), oy - int(y)
}
