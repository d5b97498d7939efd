package touchui

// TextLog stacks status lines down the screen, each with its own font and
// color. Useful for boot progress. It never consumes touches.
type TextLog struct {
	Control

	// LineStep is the vertical distance between lines.
	LineStep int

	lines []logLine
}

type logLine struct {
	text  string
	x, y  int
	font  Writer
	color Color
}

// NewTextLog creates a log whose first line starts at (x, y).
func NewTextLog(x, y, lineStep int) *TextLog {
	return &TextLog{
		Control:  Control{X: x, Y: y, UseScreenBG: true},
		LineStep: lineStep,
	}
}

// Draw repaints every line.
func (l *TextLog) Draw() {
	if l.mgr == nil {
		return
	}
	bg := l.backColor()
	for _, ln := range l.lines {
		font := ln.font
		if font == nil {
			font = l.writer()
		}
		if font == nil {
			continue
		}
		font.Print(ln.text, ln.x, ln.y, ln.color, bg)
	}
}

// Append adds a line below the previous one. A nil font uses the widget or
// manager default.
func (l *TextLog) Append(text string, font Writer, c Color) {
	y := l.Y + len(l.lines)*l.LineStep
	l.lines = append(l.lines, logLine{text: text, x: l.X, y: y, font: font, color: c})
	if l.onActiveScreen() {
		l.Draw()
	}
}

// Lines returns the logged text in order.
func (l *TextLog) Lines() []string {
	out := make([]string, len(l.lines))
	for i, ln := range l.lines {
		out[i] = ln.text
	}
	return out
}
