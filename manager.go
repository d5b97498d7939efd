package touchui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Registration errors. Manager methods wrap these with the offending name;
// test with errors.Is.
var (
	ErrUnknownScreen    = errors.New("touchui: unknown screen")
	ErrDuplicateScreen  = errors.New("touchui: screen already registered")
	ErrDuplicateControl = errors.New("touchui: control already on screen")
	ErrControlAssigned  = errors.New("touchui: control belongs to another screen")
)

// Screen is a named page: a background color and the widgets on it in
// registration order. That order is both the paint order (later widgets on
// top) and the touch priority (earlier widgets first).
type Screen struct {
	Name     string
	BG       Color
	controls []Widget
}

// Controls returns the screen's widgets. The returned slice MUST NOT be mutated.
func (s *Screen) Controls() []Widget {
	return s.controls
}

// Manager is the screen registry and touch dispatcher. It owns the drawing
// surface and every registered widget.
//
// A Manager is not safe for concurrent use. Run all calls, including widget
// mutators, on one goroutine; Loop does this for you.
type Manager struct {
	surface Surface
	font    Writer

	screens map[string]*Screen
	order   []string
	current string

	// TouchPadding is the margin added around widget hit areas.
	TouchPadding int

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	log   io.Writer
	debug bool
}

// NewManager creates a Manager painting on surface with font as the default
// Writer for widgets that do not set their own.
func NewManager(surface Surface, font Writer) *Manager {
	return &Manager{
		surface:       surface,
		font:          font,
		screens:       make(map[string]*Screen),
		TouchPadding:  defaultTouchPadding,
		ScreenshotDir: "screenshots",
		log:           os.Stderr,
	}
}

// Surface returns the drawing surface.
func (m *Manager) Surface() Surface {
	return m.surface
}

// Font returns the default Writer.
func (m *Manager) Font() Writer {
	return m.font
}

// AddScreen registers a screen. The first screen registered becomes the
// current one.
func (m *Manager) AddScreen(name string, bg Color) error {
	if _, ok := m.screens[name]; ok {
		return m.report(fmt.Errorf("%w: %q", ErrDuplicateScreen, name))
	}
	m.screens[name] = &Screen{Name: name, BG: bg}
	m.order = append(m.order, name)
	if m.current == "" {
		m.current = name
	}
	return nil
}

// SetScreen makes name the current screen. It does not repaint; call DrawAll.
func (m *Manager) SetScreen(name string) error {
	if _, ok := m.screens[name]; !ok {
		return m.report(fmt.Errorf("%w: %q", ErrUnknownScreen, name))
	}
	m.current = name
	return nil
}

// CurrentScreen returns the current screen name, or "" if none is registered.
func (m *Manager) CurrentScreen() string {
	return m.current
}

// Screen looks up a registered screen.
func (m *Manager) Screen(name string) (*Screen, bool) {
	s, ok := m.screens[name]
	return s, ok
}

// Screens returns screen names in registration order.
func (m *Manager) Screens() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Controls returns the widgets on the named screen, or nil if unknown.
func (m *Manager) Controls(screen string) []Widget {
	s, ok := m.screens[screen]
	if !ok {
		return nil
	}
	return s.controls
}

// AddControl appends w to the named screen and binds it to this manager. A
// widget can live on exactly one screen.
func (m *Manager) AddControl(screen string, w Widget) error {
	s, ok := m.screens[screen]
	if !ok {
		return m.report(fmt.Errorf("%w: %q", ErrUnknownScreen, screen))
	}
	for _, c := range s.controls {
		if c == w {
			return m.report(fmt.Errorf("%w: %q", ErrDuplicateControl, screen))
		}
	}
	b := w.base()
	if b.mgr != nil {
		return m.report(fmt.Errorf("%w: %q (already on %q)", ErrControlAssigned, screen, b.screen))
	}
	s.controls = append(s.controls, w)
	b.mgr = m
	b.screen = screen
	return nil
}

// DrawAll fills the surface with the current screen's background and paints
// every widget on it in registration order. No-op without a current screen.
func (m *Manager) DrawAll() {
	if m.current == "" {
		return
	}
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	s := m.screens[m.current]
	m.surface.Fill(s.BG)
	for _, w := range s.controls {
		w.Draw()
	}

	if m.debug {
		m.debugLog(debugStats{op: "draw", screen: s.Name, widgets: len(s.controls), elapsed: time.Since(t0)})
	}
}

// Dispatch offers evt to the current screen's widgets in registration order
// and stops at the first one that consumes it. It reports whether any did.
func (m *Manager) Dispatch(evt TouchEvent) bool {
	if m.current == "" {
		m.warnf("dispatch %s: no active screen", evt.Kind)
		return false
	}
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	s := m.screens[m.current]
	consumed := false
	offered := 0
	for _, w := range s.controls {
		offered++
		if w.HandleTouch(evt) {
			consumed = true
			break
		}
	}

	if m.debug {
		m.debugLog(debugStats{op: "dispatch " + evt.Kind.String(), screen: s.Name,
			widgets: offered, consumed: consumed, elapsed: time.Since(t0)})
	}
	return consumed
}
