package touchui

import "math"

// ProgressBar shows a value in [Min, Max] as a filled portion of a track.
// It does not react to touch.
type ProgressBar struct {
	Control

	Min, Max  float64
	FillColor Color

	value float64
}

// NewProgressBar creates a progress bar. The initial value is clamped.
func NewProgressBar(x, y, w, h int, min, max, value float64, track, fill, bg Color) *ProgressBar {
	return &ProgressBar{
		Control: Control{
			X: x, Y: y, W: w, H: h,
			FG:        track,
			BG:        bg,
			TextColor: track,
		},
		Min:       min,
		Max:       max,
		FillColor: fill,
		value:     clamp(value, min, max),
	}
}

// Value returns the current value.
func (p *ProgressBar) Value() float64 {
	return p.value
}

// fillWidth is the width of the inner bar for the current value.
func (p *ProgressBar) fillWidth() int {
	return int(math.Round(relative(p.value, p.Min, p.Max) * float64(p.W-2)))
}

// Draw paints the track, the fill and the frame.
func (p *ProgressBar) Draw() {
	if p.mgr == nil {
		return
	}
	surf := p.surface()
	surf.RoundRect(p.X, p.Y, p.W, p.H, trackRadius, p.BG, true)
	if fw := p.fillWidth(); fw > 0 {
		surf.RoundRect(p.X+1, p.Y+1, fw, p.H-2, trackRadius, p.FillColor, true)
	}
	surf.RoundRect(p.X, p.Y, p.W, p.H, trackRadius, p.FG, false)
}

// SetValue clamps v into [Min, Max], repainting if the bar's screen is current.
func (p *ProgressBar) SetValue(v float64) {
	p.value = clamp(v, p.Min, p.Max)
	if p.onActiveScreen() {
		p.Draw()
	}
}
