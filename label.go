package touchui

// Label is a line of text. It never consumes touches.
type Label struct {
	Control

	// footprint of the last paint, erased before the next one
	paintedW      int
	paintedOffset int
}

// NewLabel creates a label at (x, y). w is only used for center and right
// alignment; h is unused. The background follows the screen until
// SetBackground is called.
func NewLabel(x, y, w, h int, text string, textColor Color) *Label {
	return &Label{Control: Control{
		X: x, Y: y, W: w, H: h,
		Text:        text,
		TextColor:   textColor,
		UseScreenBG: true,
	}}
}

// Draw erases the previously painted text and paints the current text.
func (l *Label) Draw() {
	if !l.ready() {
		return
	}
	font := l.writer()
	l.erase(font)

	l.paintedW = TextWidth(font, l.Text)
	l.paintedOffset = 0
	if l.Align != AlignLeft && l.W > 0 {
		switch l.Align {
		case AlignRight:
			l.paintedOffset = l.W - l.paintedW
		case AlignCenter:
			l.paintedOffset = (l.W - l.paintedW) / 2
		}
	}
	font.Print(l.Text, l.X+l.paintedOffset, l.Y, l.TextColor, l.backColor())
}

// erase covers the last painted footprint with the background color.
func (l *Label) erase(font Writer) {
	if l.paintedW <= 0 {
		return
	}
	l.surface().Rect(l.X+l.paintedOffset, l.Y, l.paintedW, font.Height(), l.backColor(), true)
}

// SetText replaces the text, repainting if the label's screen is current.
func (l *Label) SetText(text string) {
	l.Text = text
	if l.onActiveScreen() {
		l.Draw()
	}
}
