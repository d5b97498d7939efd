package touchui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"
)

// --- recording surface ---

type surfaceOp struct {
	name       string
	x, y, w, h int
	c          Color
	filled     bool
	points     []image.Point
}

func (o surfaceOp) String() string {
	return fmt.Sprintf("%s(%d,%d,%d,%d,%#04x,%v)", o.name, o.x, o.y, o.w, o.h, uint16(o.c), o.filled)
}

type recordingSurface struct {
	ops []surfaceOp
}

func (s *recordingSurface) Fill(c Color) {
	s.ops = append(s.ops, surfaceOp{name: "fill", c: c, filled: true})
}

func (s *recordingSurface) Rect(x, y, w, h int, c Color, filled bool) {
	s.ops = append(s.ops, surfaceOp{name: "rect", x: x, y: y, w: w, h: h, c: c, filled: filled})
}

func (s *recordingSurface) RoundRect(x, y, w, h, r int, c Color, filled bool) {
	s.ops = append(s.ops, surfaceOp{name: "roundrect", x: x, y: y, w: w, h: h, c: c, filled: filled})
}

func (s *recordingSurface) Ellipse(x, y, rx, ry int, c Color, filled bool) {
	s.ops = append(s.ops, surfaceOp{name: "ellipse", x: x, y: y, w: rx, h: ry, c: c, filled: filled})
}

func (s *recordingSurface) Line(x0, y0, x1, y1 int, c Color) {
	s.ops = append(s.ops, surfaceOp{name: "line", x: x0, y: y0, w: x1, h: y1, c: c})
}

func (s *recordingSurface) HLine(x, y, length int, c Color) {
	s.ops = append(s.ops, surfaceOp{name: "hline", x: x, y: y, w: length, h: 1, c: c})
}

func (s *recordingSurface) Polygon(points []image.Point, c Color, filled bool) {
	s.ops = append(s.ops, surfaceOp{name: "polygon", c: c, filled: filled, points: points})
}

func (s *recordingSurface) count(name string) int {
	n := 0
	for _, o := range s.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() { s.ops = nil }

// snapshotSurface adds Snapshotter to the recorder.
type snapshotSurface struct {
	recordingSurface
	img *image.RGBA
}

func (s *snapshotSurface) Snapshot() image.Image {
	if s.img == nil {
		s.img = image.NewRGBA(image.Rect(0, 0, 4, 4))
		s.img.SetRGBA(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	}
	return s.img
}

// --- fixed-pitch writer ---

type printCall struct {
	s      string
	x, y   int
	fg, bg Color
}

type fixedWriter struct {
	h, w   int
	prints []printCall
}

func newFixedWriter() *fixedWriter { return &fixedWriter{h: 10, w: 8} }

func (f *fixedWriter) Height() int   { return f.h }
func (f *fixedWriter) MaxWidth() int { return f.w }

func (f *fixedWriter) Print(s string, x, y int, fg, bg Color) {
	f.prints = append(f.prints, printCall{s: s, x: x, y: y, fg: fg, bg: bg})
}

func (f *fixedWriter) last() printCall {
	if len(f.prints) == 0 {
		return printCall{}
	}
	return f.prints[len(f.prints)-1]
}

// --- manual clock ---

var errClockExhausted = errors.New("manual clock exhausted")

// manualClock advances only when Sleep is called. After limit sleeps it
// fails so a broken test cannot spin forever.
type manualClock struct {
	now    time.Time
	sleeps int
	limit  int
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), limit: 1000}
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps++
	if c.sleeps > c.limit {
		return errClockExhausted
	}
	c.now = c.now.Add(d)
	return nil
}

// --- spy widget ---

type spyWidget struct {
	Control
	name    string
	consume bool
	log     *[]string
	events  []TouchEvent
}

func newSpy(name string, consume bool, log *[]string) *spyWidget {
	return &spyWidget{
		Control: Control{X: 0, Y: 0, W: 10, H: 10},
		name:    name,
		consume: consume,
		log:     log,
	}
}

func (s *spyWidget) Draw() {
	*s.log = append(*s.log, "draw "+s.name)
}

func (s *spyWidget) HandleTouch(evt TouchEvent) bool {
	*s.log = append(*s.log, "touch "+s.name)
	s.events = append(s.events, evt)
	return s.consume
}

// newTestManager returns a manager on fakes with one screen, "home", and
// logging silenced.
func newTestManager() (*Manager, *recordingSurface, *fixedWriter) {
	surf := &recordingSurface{}
	font := newFixedWriter()
	m := NewManager(surf, font)
	m.SetLogOutput(nil)
	_ = m.AddScreen("home", Black)
	return m, surf, font
}
