package touchui

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// --- Label ---

func TestLabelAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		w     int
		wantX int
	}{
		{"left", AlignLeft, 100, 10},
		{"right", AlignRight, 100, 10 + 100 - 24},
		{"center", AlignCenter, 100, 10 + 50 - 12},
		{"right without width", AlignRight, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, font := newTestManager()
			l := NewLabel(10, 20, tt.w, 0, "abc", White)
			l.SetAlignment(tt.align)
			_ = m.AddControl("home", l)
			l.Draw()
			if got := font.last(); got.x != tt.wantX || got.y != 20 {
				t.Errorf("printed at (%d,%d), want (%d,20)", got.x, got.y, tt.wantX)
			}
		})
	}
}

func TestLabelSetTextErasesPrevious(t *testing.T) {
	m, surf, font := newTestManager()
	l := NewLabel(10, 20, 0, 0, "hello", White)
	_ = m.AddControl("home", l)
	l.Draw()
	surf.reset()

	l.SetText("hi")

	if len(surf.ops) != 1 {
		t.Fatalf("ops = %v, want one erase", surf.ops)
	}
	erase := surf.ops[0]
	if erase.name != "rect" || !erase.filled || erase.x != 10 || erase.w != 40 || erase.h != 10 || erase.c != Black {
		t.Errorf("erase = %v, want filled rect(10,20,40,10) in screen BG", erase)
	}
	if got := font.last(); got.s != "hi" || got.bg != Black {
		t.Errorf("print = %+v, want hi on screen BG", got)
	}
}

func TestLabelSetTextInactiveScreen(t *testing.T) {
	m, surf, font := newTestManager()
	_ = m.AddScreen("other", Black)
	l := NewLabel(0, 0, 0, 0, "a", White)
	_ = m.AddControl("other", l)

	l.SetText("b")

	if l.Text != "b" {
		t.Errorf("Text = %q, want b", l.Text)
	}
	if len(surf.ops) != 0 || len(font.prints) != 0 {
		t.Error("inactive label should not repaint")
	}
}

func TestUnregisteredDrawIsNoop(t *testing.T) {
	l := NewLabel(0, 0, 0, 0, "a", White)
	l.Draw()
	l.SetText("b")
	b := NewButton(0, 0, 10, 10, "x", White, Black, White, nil)
	b.Draw()
	s := NewSlider(0, 0, 10, 10, 0, 1, 0, White, Red, Black, nil)
	s.Draw()
	s.SetValue(1)
}

// --- TextBox ---

func TestTextBoxAlignment(t *testing.T) {
	tests := []struct {
		align Align
		wantX int
	}{
		{AlignLeft, 0 + 2},
		{AlignRight, 100 - 16 - 2},
		{AlignCenter, 50 - 8},
	}
	for _, tt := range tests {
		m, surf, font := newTestManager()
		b := NewTextBox(0, 0, 100, 30, "ab", White, Blue, White)
		b.SetAlignment(tt.align)
		_ = m.AddControl("home", b)
		b.Draw()

		if surf.count("roundrect") != 2 {
			t.Errorf("align %d: roundrects = %d, want 2", tt.align, surf.count("roundrect"))
		}
		got := font.last()
		if got.x != tt.wantX || got.y != 10 {
			t.Errorf("align %d: text at (%d,%d), want (%d,10)", tt.align, got.x, got.y, tt.wantX)
		}
	}
}

func TestTextBoxOverflow(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		text string
		want string
	}{
		{"too wide", 40, 30, "abcde", "text too long"},
		{"too tall", 100, 11, "a", "text too tall"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, surf, font := newTestManager()
			var buf bytes.Buffer
			m.SetLogOutput(&buf)
			b := NewTextBox(0, 0, tt.w, tt.h, tt.text, White, Blue, White)
			_ = m.AddControl("home", b)

			b.Draw()

			if len(font.prints) != 0 {
				t.Error("overflowing text should not be printed")
			}
			if surf.count("roundrect") != 2 {
				t.Error("frame should still be painted")
			}
			if !strings.Contains(buf.String(), "[touchui] warning: "+tt.want) {
				t.Errorf("log = %q, want %q warning", buf.String(), tt.want)
			}
		})
	}
}

// --- TextLog ---

func TestTextLogAppend(t *testing.T) {
	m, _, font := newTestManager()
	other := newFixedWriter()
	l := NewTextLog(10, 100, 30)
	_ = m.AddControl("home", l)

	l.Append("connecting", nil, Green)
	l.Append("connected", other, White)

	if got := strings.Join(l.Lines(), "|"); got != "connecting|connected" {
		t.Errorf("Lines() = %q", got)
	}
	if len(other.prints) != 1 || other.prints[0].y != 130 {
		t.Errorf("second line prints = %+v, want one at y=130", other.prints)
	}
	if p := font.last(); p.s != "connecting" || p.fg != Green {
		t.Errorf("default font last print = %+v", p)
	}
	if l.HandleTouch(TouchEvent{Kind: TouchTap, X: 10, Y: 100}) {
		t.Error("TextLog should never consume")
	}
}

// --- Button ---

func TestButtonPress(t *testing.T) {
	m, _, _ := newTestManager()
	var b *Button
	presses := 0
	flashedDuringCallback := false
	b = NewButton(20, 20, 100, 40, "Apply", White, DarkGreen, White, func() {
		presses++
		flashedDuringCallback = b.Flashing()
	})
	_ = m.AddControl("home", b)

	if !m.Dispatch(TouchEvent{Kind: TouchTap, X: 60, Y: 40}) {
		t.Fatal("tap inside button not consumed")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
	if !flashedDuringCallback {
		t.Error("button should flash while the callback runs")
	}
	if b.Flashing() {
		t.Error("flash should end after the callback")
	}
}

func TestButtonIgnores(t *testing.T) {
	m, _, _ := newTestManager()
	presses := 0
	b := NewButton(20, 20, 100, 40, "Apply", White, DarkGreen, White, func() { presses++ })
	_ = m.AddControl("home", b)

	if b.HandleTouch(TouchEvent{Kind: TouchSwipeUp, X: 60, Y: 40}) {
		t.Error("swipe should not be consumed")
	}
	if b.HandleTouch(TouchEvent{Kind: TouchTap, X: 300, Y: 300}) {
		t.Error("tap outside should not be consumed")
	}
	// inside the 10px padding
	if !b.HandleTouch(TouchEvent{Kind: TouchTap, X: 12, Y: 12}) {
		t.Error("tap within padding should be consumed")
	}
	if presses != 1 {
		t.Errorf("presses = %d, want 1", presses)
	}
}

func TestButtonFlashColors(t *testing.T) {
	m, surf, font := newTestManager()
	var b *Button
	b = NewButton(0, 0, 80, 40, "Go", White, Blue, Yellow, func() { b.Draw() })
	_ = m.AddControl("home", b)

	b.HandleTouch(TouchEvent{Kind: TouchTap, X: 10, Y: 10})

	if surf.ops[0].c != White {
		t.Errorf("flash fill = %#04x, want border color", uint16(surf.ops[0].c))
	}
	if p := font.last(); p.fg != Blue || p.bg != White {
		t.Errorf("flash text = fg %#04x bg %#04x, want fill on border", uint16(p.fg), uint16(p.bg))
	}
}

// --- Slider ---

func newTestSlider(onChange func(float64)) (*Slider, *Manager) {
	m, _, _ := newTestManager()
	m.TouchPadding = 0
	s := NewSlider(100, 50, 201, 20, 0, 100, 50, White, Red, Black, onChange)
	_ = m.AddControl("home", s)
	return s, m
}

func TestSliderTapEdges(t *testing.T) {
	tests := []struct {
		name string
		x    int
		want float64
	}{
		{"left edge", 100, 0},
		{"right edge", 300, 100},
		{"middle", 200, 50},
		{"quarter", 150, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []float64
			s, _ := newTestSlider(func(v float64) { got = append(got, v) })
			if !s.HandleTouch(TouchEvent{Kind: TouchTap, X: tt.x, Y: 60}) {
				t.Fatal("tap not consumed")
			}
			if s.Value() != tt.want {
				t.Errorf("Value() = %v, want %v", s.Value(), tt.want)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("OnChange got %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestSliderSetValueClamps(t *testing.T) {
	calls := 0
	s, _ := newTestSlider(func(float64) { calls++ })
	tests := []struct {
		in, want float64
	}{
		{150, 100},
		{-5, 0},
		{42, 42},
	}
	for _, tt := range tests {
		s.SetValue(tt.in)
		if s.Value() != tt.want {
			t.Errorf("SetValue(%v): Value() = %v, want %v", tt.in, s.Value(), tt.want)
		}
	}
	if calls != 0 {
		t.Errorf("SetValue fired OnChange %d times", calls)
	}
	if v := NewSlider(0, 0, 10, 10, 10, 20, 99, White, Red, Black, nil).Value(); v != 20 {
		t.Errorf("constructor clamp = %v, want 20", v)
	}
}

func TestSliderDragLifecycle(t *testing.T) {
	s, _ := newTestSlider(nil)

	if s.HandleTouch(TouchEvent{Kind: TouchDragEnd}) {
		t.Error("drag end without drag should not be consumed")
	}
	s.HandleTouch(TouchEvent{Kind: TouchDrag, X: 250, Y: 60})
	if !s.Dragging() {
		t.Fatal("expected dragging after drag")
	}
	if s.Value() != 75 {
		t.Errorf("Value() = %v, want 75", s.Value())
	}
	if !s.HandleTouch(TouchEvent{Kind: TouchDragEnd, X: 500, Y: 500}) {
		t.Error("drag end while dragging should be consumed")
	}
	if s.Dragging() {
		t.Error("drag end should clear dragging")
	}
}

func TestSliderZeroRange(t *testing.T) {
	m, surf, _ := newTestManager()
	s := NewSlider(0, 0, 100, 20, 5, 5, 5, White, Red, Black, nil)
	_ = m.AddControl("home", s)
	s.Draw()
	for _, o := range surf.ops {
		if o.name == "rect" && o.x != 0 {
			t.Errorf("knob at x=%d, want 0 for zero range", o.x)
		}
	}
	s.HandleTouch(TouchEvent{Kind: TouchTap, X: 50, Y: 10})
	if s.Value() != 5 {
		t.Errorf("Value() = %v, want 5", s.Value())
	}
}

func TestSliderKnobPosition(t *testing.T) {
	m, surf, _ := newTestManager()
	s := NewSlider(10, 0, 104, 20, 0, 100, 100, White, Red, Black, nil)
	_ = m.AddControl("home", s)
	s.Draw()
	for _, o := range surf.ops {
		if o.name == "rect" {
			if o.x != 10+100 || o.w != knobWidth {
				t.Errorf("knob = %v, want x=110 w=%d", o, knobWidth)
			}
			return
		}
	}
	t.Error("no knob painted")
}

// --- CheckBox ---

func TestCheckBoxTogglePair(t *testing.T) {
	m, _, _ := newTestManager()
	var states []bool
	c := NewCheckBox(20, 20, 30, "Wifi", false, White, Black, Green, White, func(v bool) {
		states = append(states, v)
	})
	_ = m.AddControl("home", c)

	tap := TouchEvent{Kind: TouchTap, X: 30, Y: 30}
	m.Dispatch(tap)
	if !c.Checked() {
		t.Fatal("first tap should check")
	}
	m.Dispatch(tap)
	if c.Checked() {
		t.Error("second tap should restore the original state")
	}
	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("OnToggle got %v, want [true false]", states)
	}
}

func TestCheckBoxHitArea(t *testing.T) {
	m, _, _ := newTestManager()
	m.TouchPadding = 0
	c := NewCheckBox(20, 20, 30, "Wifi", false, White, Black, Green, White, nil)
	_ = m.AddControl("home", c)

	if !c.HitTest(20+30+5, 25) {
		t.Error("label margin should be inside the hit area")
	}
	if c.HitTest(20+30+6, 25) {
		t.Error("beyond the label margin should miss")
	}
}

func TestCheckBoxDraw(t *testing.T) {
	m, surf, font := newTestManager()
	c := NewCheckBox(20, 20, 30, "Wifi", true, White, Black, Green, Yellow, nil)
	_ = m.AddControl("home", c)
	c.Draw()

	if surf.count("roundrect") != 3 {
		t.Fatalf("roundrects = %d, want 3 (fill, frame, mark)", surf.count("roundrect"))
	}
	mark := surf.ops[2]
	if mark.x != 26 || mark.w != 18 || mark.c != Green {
		t.Errorf("mark = %v, want inset 6 in check color", mark)
	}
	p := font.last()
	if p.x != 56 || p.y != 31 || p.fg != Yellow || p.bg != Black {
		t.Errorf("label = %+v, want at (56,31) yellow on black", p)
	}

	surf.reset()
	c.SetChecked(false)
	if surf.count("roundrect") != 2 {
		t.Errorf("unchecked roundrects = %d, want 2", surf.count("roundrect"))
	}
}

// --- Dial ---

func TestDialIgnoresNonFinite(t *testing.T) {
	m, surf, _ := newTestManager()
	d := NewDial(100, 100, 50, Black, White, White)
	_ = m.AddControl("home", d)
	d.SetValue(90)
	surf.reset()

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		d.SetValue(v)
		if got, ok := d.Value(); !ok || got != 90 {
			t.Errorf("SetValue(%v): Value() = %v,%v, want 90,true", v, got, ok)
		}
	}
	if len(surf.ops) != 0 {
		t.Errorf("ignored values painted %d ops, want 0", len(surf.ops))
	}
}

func TestDialSetValueNormalises(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{45, 45},
		{360, 0},
		{405, 45},
		{-90, 270},
	}
	for _, tt := range tests {
		d := NewDial(100, 100, 50, Black, White, White)
		d.SetValue(tt.in)
		got, ok := d.Value()
		if !ok || got != tt.want {
			t.Errorf("SetValue(%v): Value() = %v,%v, want %v,true", tt.in, got, ok, tt.want)
		}
	}
}

func TestDialNeedlePartialRepaint(t *testing.T) {
	m, surf, _ := newTestManager()
	d := NewDial(200, 200, 100, Black, White, White)
	_ = m.AddControl("home", d)

	d.SetValue(90)

	if surf.count("fill") != 0 {
		t.Error("needle update should not repaint the screen")
	}
	if len(surf.ops) != 3 {
		t.Fatalf("ops = %v, want erase, needle, boss", surf.ops)
	}
	if e := surf.ops[0]; e.name != "ellipse" || e.w != 80 || e.c != Black {
		t.Errorf("erase = %v, want face disk r=80", e)
	}
	needle := surf.ops[1]
	if needle.name != "polygon" || len(needle.points) != 4 {
		t.Fatalf("needle = %v, want 4-point polygon", needle)
	}
	if tip := needle.points[0]; tip.X != 270 || tip.Y != 200 {
		t.Errorf("tip = %v, want (270,200) at 90 degrees", tip)
	}
	if c := needle.points[2]; c.X != 200 || c.Y != 200 {
		t.Errorf("needle base = %v, want center", c)
	}
}

func TestDialInactiveNoPaint(t *testing.T) {
	m, surf, _ := newTestManager()
	_ = m.AddScreen("w_data", Black)
	d := NewDial(200, 200, 100, Black, White, White)
	_ = m.AddControl("w_data", d)

	d.SetValue(10)
	if len(surf.ops) != 0 {
		t.Errorf("inactive dial painted %v", surf.ops)
	}
}

func TestDialDrawTicksAndLegend(t *testing.T) {
	m, surf, font := newTestManager()
	d := NewDial(200, 200, 100, Black, White, Red)
	d.SmallTicks = 36
	d.BigTicks = 4
	d.Legend = []string{"N", "E", "S", "W"}
	_ = m.AddControl("home", d)

	d.Draw()

	if n := surf.count("line"); n != 40 {
		t.Errorf("tick lines = %d, want 40", n)
	}
	if len(font.prints) != 4 {
		t.Fatalf("legend prints = %d, want 4", len(font.prints))
	}
	// N sits straight up at radius+20, nudged left 5.
	if n := font.prints[0]; n.s != "N" || n.x != 195 || n.y != 80 {
		t.Errorf("N at (%d,%d), want (195,80)", n.x, n.y)
	}
	if d.HandleTouch(TouchEvent{Kind: TouchTap, X: 200, Y: 200}) {
		t.Error("dial should never consume")
	}
}

func TestDialHitTest(t *testing.T) {
	m, _, _ := newTestManager()
	m.TouchPadding = 0
	d := NewDial(200, 200, 50, Black, White, White)
	_ = m.AddControl("home", d)
	if !d.HitTest(151, 151) {
		t.Error("inside bounding square should hit")
	}
	if d.HitTest(251, 200) {
		t.Error("outside bounding square should miss")
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		angle  float64
		wx, wy int
	}{
		{0, 100, 50},
		{90, 150, 100},
		{180, 100, 150},
		{270, 50, 100},
	}
	for _, tt := range tests {
		x, y := polar(100, 100, 50, tt.angle)
		if x != tt.wx || y != tt.wy {
			t.Errorf("polar(%v) = (%d,%d), want (%d,%d)", tt.angle, x, y, tt.wx, tt.wy)
		}
	}
}

// --- ProgressBar ---

func TestProgressBarFill(t *testing.T) {
	tests := []struct {
		value float64
		wantW int // 0 means no inner bar
	}{
		{0, 0},
		{50, 49},
		{100, 98},
		{250, 98},
	}
	for _, tt := range tests {
		m, surf, _ := newTestManager()
		p := NewProgressBar(0, 0, 100, 20, 0, 100, 0, White, Green, Black)
		_ = m.AddControl("home", p)
		p.SetValue(tt.value)

		var inner *surfaceOp
		for i := range surf.ops {
			if surf.ops[i].c == Green {
				inner = &surf.ops[i]
			}
		}
		switch {
		case tt.wantW == 0 && inner != nil:
			t.Errorf("value %v: unexpected inner bar %v", tt.value, *inner)
		case tt.wantW > 0 && (inner == nil || inner.w != tt.wantW):
			t.Errorf("value %v: inner bar = %v, want width %d", tt.value, inner, tt.wantW)
		}
	}
}

func TestProgressBarZeroRange(t *testing.T) {
	p := NewProgressBar(0, 0, 100, 20, 3, 3, 3, White, Green, Black)
	if w := p.fillWidth(); w != 0 {
		t.Errorf("fillWidth = %d, want 0", w)
	}
}

func TestNonFiniteValuesClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), 0},
		{"+inf", math.Inf(1), 100},
		{"-inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, 20, 0, 100, 50, White, White, Black, nil)
			s.SetValue(tt.in)
			if got := s.Value(); got != tt.want {
				t.Errorf("Slider.Value() = %v, want %v", got, tt.want)
			}

			p := NewProgressBar(0, 0, 100, 20, 0, 100, 50, White, Green, Black)
			p.SetValue(tt.in)
			if got := p.Value(); got != tt.want {
				t.Errorf("ProgressBar.Value() = %v, want %v", got, tt.want)
			}

			if got := NewSlider(0, 0, 100, 20, 0, 100, tt.in, White, White, Black, nil).Value(); got != tt.want {
				t.Errorf("NewSlider initial = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCenterAlignOddTextWidth(t *testing.T) {
	m, _, font := newTestManager()
	font.w = 7

	l := NewLabel(0, 0, 440, 0, "a", White)
	l.SetAlignment(AlignCenter)
	_ = m.AddControl("home", l)
	l.Draw()
	if got := font.last().x; got != 216 {
		t.Errorf("label x = %d, want 216", got)
	}

	b := NewTextBox(0, 50, 100, 30, "a", White, Blue, White)
	b.SetAlignment(AlignCenter)
	_ = m.AddControl("home", b)
	b.Draw()
	if got := font.last().x; got != 46 {
		t.Errorf("text box x = %d, want 46", got)
	}
}
