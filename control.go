package touchui

// defaultTouchPadding is the margin added around every hit area to make
// imprecise finger presses land.
const defaultTouchPadding = 10

// Widget is the capability every control exposes to the Manager. The set of
// widgets is closed: implementations embed Control, which supplies the
// unexported binding method.
type Widget interface {
	// Draw paints the widget onto the manager's surface.
	Draw()
	// HitTest reports whether (x, y) falls inside the padded hit area.
	HitTest(x, y int) bool
	// HandleTouch reacts to evt and reports whether it was consumed.
	HandleTouch(evt TouchEvent) bool

	base() *Control
}

// Control holds the state shared by all widgets: bounds, colors, font and the
// handle back to the owning Manager. The handle and screen are assigned once
// by Manager.AddControl.
type Control struct {
	X, Y, W, H int
	Text       string

	FG        Color
	BG        Color
	TextColor Color

	// UseScreenBG makes text cells take the owning screen's background
	// instead of BG.
	UseScreenBG bool

	Align Align

	font   Writer
	mgr    *Manager
	screen string
}

func (c *Control) base() *Control { return c }

// Bounds returns the nominal (unpadded) rectangle.
func (c *Control) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// SetFont overrides the manager's default font for this widget.
func (c *Control) SetFont(w Writer) {
	c.font = w
}

// SetAlignment sets horizontal text alignment.
func (c *Control) SetAlignment(a Align) {
	c.Align = a
}

// SetBackground sets an explicit background and stops inheriting the screen's.
func (c *Control) SetBackground(bg Color) {
	c.BG = bg
	c.UseScreenBG = false
}

// Screen returns the name of the owning screen, or "" if unregistered.
func (c *Control) Screen() string {
	return c.screen
}

// Manager returns the owning Manager, or nil if unregistered.
func (c *Control) Manager() *Manager {
	return c.mgr
}

// HitTest reports whether (x, y) lies inside the bounds grown by the touch
// padding.
func (c *Control) HitTest(x, y int) bool {
	return c.within(x, y, c.W, c.H)
}

// HandleTouch declines every event; interactive widgets override it.
func (c *Control) HandleTouch(TouchEvent) bool {
	return false
}

// within tests (x, y) against a w by h area anchored at the widget origin,
// padded by the manager's touch padding.
func (c *Control) within(x, y, w, h int) bool {
	r := Rect{X: c.X, Y: c.Y, W: w, H: h}
	return r.Pad(c.padding()).Contains(x, y)
}

func (c *Control) padding() int {
	if c.mgr == nil {
		return defaultTouchPadding
	}
	return c.mgr.TouchPadding
}

// writer returns the widget font, falling back to the manager default.
func (c *Control) writer() Writer {
	if c.font != nil {
		return c.font
	}
	if c.mgr != nil {
		return c.mgr.font
	}
	return nil
}

// surface returns the surface to paint on, or nil when unregistered.
func (c *Control) surface() Surface {
	if c.mgr == nil {
		return nil
	}
	return c.mgr.surface
}

// backColor is the color painted behind text.
func (c *Control) backColor() Color {
	if c.UseScreenBG && c.mgr != nil {
		if s, ok := c.mgr.screens[c.screen]; ok {
			return s.BG
		}
	}
	return c.BG
}

// onActiveScreen reports whether mutations should repaint immediately.
func (c *Control) onActiveScreen() bool {
	return c.mgr != nil && c.mgr.current != "" && c.mgr.current == c.screen
}

// ready reports whether the widget can paint: registered and given a font.
func (c *Control) ready() bool {
	return c.mgr != nil && c.writer() != nil
}
