package touchui

import "image/color"

// Color is a 16-bit packed RGB565 value: bits [15:11] red, [10:5] green,
// [4:0] blue. This is the native pixel format of the panel.
type Color uint16

// RGB565 converts 8-bit red, green and blue channels to a packed Color.
func RGB565(r, g, b uint8) Color {
	c := uint16(b) >> 3
	c |= (uint16(g) >> 2) << 5
	c |= (uint16(r) >> 3) << 11
	return Color(c)
}

// RGBA expands the color back to 8-bit channels. The low bits lost during
// packing are filled by replicating the high bits, so White maps to 0xFF.
func (c Color) RGBA() color.RGBA {
	r := uint8(c>>11) & 0x1F
	g := uint8(c>>5) & 0x3F
	b := uint8(c) & 0x1F
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xFF,
	}
}

// Common panel colors.
var (
	Black      = RGB565(0, 0, 0)
	White      = RGB565(255, 255, 255)
	Red        = RGB565(255, 0, 0)
	Green      = RGB565(0, 255, 0)
	Blue       = RGB565(0, 0, 255)
	Yellow     = RGB565(255, 255, 0)
	Orange     = RGB565(255, 165, 0)
	Cyan       = RGB565(0, 255, 255)
	Grey       = RGB565(128, 128, 128)
	LightGrey  = RGB565(192, 192, 192)
	DarkGrey   = RGB565(64, 64, 64)
	Pink       = RGB565(255, 105, 180)
	DarkGreen  = RGB565(0, 100, 0)
	SquixlBlue = RGB565(0, 40, 90)
)

// Rect is an axis-aligned rectangle in panel pixels. The origin is the
// top-left corner with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Pad returns r grown by n pixels on every side.
func (r Rect) Pad(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// TouchKind identifies a classified gesture.
type TouchKind uint8

const (
	TouchTap        TouchKind = iota // short, medium or long press without movement
	TouchDouble                      // reserved; never produced by the classifier
	TouchLong                        // reserved; never produced by the classifier
	TouchSwipeUp                     // vertical movement, upward dominant
	TouchSwipeRight                  // horizontal movement, rightward dominant
	TouchSwipeDown                   // vertical movement, downward dominant
	TouchSwipeLeft                   // horizontal movement, leftward dominant
	TouchDrag                        // in-contact movement; needs an intra-episode classifier
	TouchDragEnd                     // release after a drag
	TouchUnknown                     // unclassified
)

var touchKindNames = [...]string{
	TouchTap:        "tap",
	TouchDouble:     "double",
	TouchLong:       "long",
	TouchSwipeUp:    "swipe-up",
	TouchSwipeRight: "swipe-right",
	TouchSwipeDown:  "swipe-down",
	TouchSwipeLeft:  "swipe-left",
	TouchDrag:       "drag",
	TouchDragEnd:    "drag-end",
	TouchUnknown:    "unknown",
}

func (k TouchKind) String() string {
	if int(k) < len(touchKindNames) {
		return touchKindNames[k]
	}
	return "unknown"
}

// IsSwipe reports whether k is one of the four swipe directions.
func (k TouchKind) IsSwipe() bool {
	return k >= TouchSwipeUp && k <= TouchSwipeLeft
}

// TouchEvent is a classified gesture at a panel position. It is a plain value
// and lives for one dispatch.
type TouchEvent struct {
	Kind TouchKind
	X, Y int
}

// Align controls horizontal text alignment inside a widget.
type Align uint8

const (
	AlignLeft   Align = iota // text starts at the left edge (default)
	AlignCenter              // text centered on the widget width
	AlignRight               // text ends at the right edge
)
