package touchui

const (
	defaultBorderClearance = 2
	textBoxRadius          = 4
)

// TextBox is a framed container with a single line of text centered
// vertically. Text that does not fit is skipped with a warning; the frame is
// still painted.
type TextBox struct {
	Control

	// Clearance keeps text off the frame, in pixels.
	Clearance int
}

// NewTextBox creates a text box with the given frame, fill and text colors.
func NewTextBox(x, y, w, h int, text string, border, fill, textColor Color) *TextBox {
	return &TextBox{
		Control: Control{
			X: x, Y: y, W: w, H: h,
			Text:      text,
			FG:        border,
			BG:        fill,
			TextColor: textColor,
		},
		Clearance: defaultBorderClearance,
	}
}

// Draw paints the container, then the text if it fits.
func (t *TextBox) Draw() {
	if !t.ready() {
		return
	}
	surf := t.surface()
	surf.RoundRect(t.X, t.Y, t.W, t.H, textBoxRadius, t.BG, true)
	surf.RoundRect(t.X, t.Y, t.W, t.H, textBoxRadius, t.FG, false)

	font := t.writer()
	if font.Height()+t.Clearance > t.H {
		t.mgr.warnf("text too tall for TextBox at (%d,%d): height %d + clearance %d > box height %d",
			t.X, t.Y, font.Height(), t.Clearance, t.H)
		return
	}
	ty := t.Y + (t.H-font.Height())/2

	offset := 0
	if t.W > 0 {
		tw := TextWidth(font, t.Text)
		if tw+t.Clearance >= t.W {
			t.mgr.warnf("text too long for TextBox at (%d,%d): width %d + clearance %d >= box width %d",
				t.X, t.Y, tw, t.Clearance, t.W)
			return
		}
		switch t.Align {
		case AlignLeft:
			offset = t.Clearance
		case AlignRight:
			offset = t.W - tw - t.Clearance
		case AlignCenter:
			offset = (t.W - tw) / 2
		}
	}
	font.Print(t.Text, t.X+offset, ty, t.TextColor, t.backColor())
}

// SetText replaces the text, repainting if the box's screen is current.
func (t *TextBox) SetText(text string) {
	t.Text = text
	if t.onActiveScreen() {
		t.Draw()
	}
}
