package touchui

const buttonRadius = 10

// Button runs OnPress when tapped. While the callback runs the button is in
// its flash state, which swaps fill and text colors if painted.
type Button struct {
	Control

	OnPress func()

	flashing bool
}

// NewButton creates a button. border is the frame color, fill the body color.
func NewButton(x, y, w, h int, text string, border, fill, textColor Color, onPress func()) *Button {
	return &Button{
		Control: Control{
			X: x, Y: y, W: w, H: h,
			Text:      text,
			FG:        border,
			BG:        fill,
			TextColor: textColor,
		},
		OnPress: onPress,
	}
}

// Flashing reports whether the press callback is currently running.
func (b *Button) Flashing() bool {
	return b.flashing
}

// Draw paints the body, frame and centered text, inverted while flashing.
func (b *Button) Draw() {
	if !b.ready() {
		return
	}
	fill, border, text := b.BG, b.FG, b.TextColor
	if b.flashing {
		fill, border, text = b.FG, b.TextColor, b.BG
	}
	surf := b.surface()
	surf.RoundRect(b.X, b.Y, b.W, b.H, buttonRadius, fill, true)
	surf.RoundRect(b.X, b.Y, b.W, b.H, buttonRadius, border, false)

	font := b.writer()
	tx := b.X + (b.W-TextWidth(font, b.Text))/2
	ty := b.Y + (b.H-font.Height())/2
	font.Print(b.Text, tx, ty, text, fill)
}

// HandleTouch consumes a tap inside the padded bounds and runs OnPress
// synchronously.
func (b *Button) HandleTouch(evt TouchEvent) bool {
	if evt.Kind != TouchTap || !b.HitTest(evt.X, evt.Y) {
		return false
	}
	b.flashing = true
	defer func() { b.flashing = false }()
	if b.OnPress != nil {
		b.OnPress()
	}
	return true
}

// SetText replaces the caption, repainting if the button's screen is current.
func (b *Button) SetText(text string) {
	b.Text = text
	if b.onActiveScreen() {
		b.Draw()
	}
}
