package touchui

const (
	checkBoxRadius    = 5
	checkLabelMargin  = 6 // gap between box and label, also added to the hit area
	checkLabelGlyphsH = 8 // nominal glyph height used to center the label
)

// CheckBox is a square toggle with a label to its right.
type CheckBox struct {
	Control

	CheckColor Color

	// OnToggle receives the new state after every tap.
	OnToggle func(checked bool)

	checked bool
}

// NewCheckBox creates a size by size box at (x, y) labelled text.
func NewCheckBox(x, y, size int, text string, checked bool, fg, bg, check, label Color, onToggle func(bool)) *CheckBox {
	return &CheckBox{
		Control: Control{
			X: x, Y: y, W: size, H: size,
			Text:      text,
			FG:        fg,
			BG:        bg,
			TextColor: label,
		},
		CheckColor: check,
		OnToggle:   onToggle,
		checked:    checked,
	}
}

// Checked returns the current state.
func (c *CheckBox) Checked() bool {
	return c.checked
}

// Draw paints the box, the inner mark when checked, and the label.
func (c *CheckBox) Draw() {
	if !c.ready() {
		return
	}
	surf := c.surface()
	surf.RoundRect(c.X, c.Y, c.W, c.H, checkBoxRadius, c.BG, true)
	surf.RoundRect(c.X, c.Y, c.W, c.H, checkBoxRadius, c.FG, false)
	if c.checked {
		pad := max(3, c.W/5)
		surf.RoundRect(c.X+pad, c.Y+pad, c.W-2*pad, c.H-2*pad, 3, c.CheckColor, true)
	}
	ly := c.Y + (c.H-checkLabelGlyphsH)/2
	c.writer().Print(c.Text, c.X+c.W+checkLabelMargin, ly, c.TextColor, c.BG)
}

// HitTest covers the box plus the label margin.
func (c *CheckBox) HitTest(x, y int) bool {
	return c.within(x, y, c.W+checkLabelMargin, c.H)
}

// HandleTouch toggles on a tap inside the hit area.
func (c *CheckBox) HandleTouch(evt TouchEvent) bool {
	if evt.Kind != TouchTap || !c.HitTest(evt.X, evt.Y) {
		return false
	}
	c.checked = !c.checked
	c.Draw()
	if c.OnToggle != nil {
		c.OnToggle(c.checked)
	}
	return true
}

// SetChecked sets the state, repainting if the box's screen is current.
// OnToggle is not called.
func (c *CheckBox) SetChecked(checked bool) {
	c.checked = checked
	if c.onActiveScreen() {
		c.Draw()
	}
}
