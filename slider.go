package touchui

import "math"

const (
	trackRadius = 5
	knobWidth   = 4
)

// Slider selects a value in [Min, Max] along a horizontal track.
type Slider struct {
	Control

	Min, Max  float64
	KnobColor Color

	// OnChange receives the new value after every touch that moves the knob.
	OnChange func(value float64)

	value    float64
	dragging bool
}

// NewSlider creates a slider. The initial value is clamped into [min, max].
func NewSlider(x, y, w, h int, min, max, value float64, track, knob, bg Color, onChange func(float64)) *Slider {
	s := &Slider{
		Control: Control{
			X: x, Y: y, W: w, H: h,
			FG:        track,
			BG:        bg,
			TextColor: track,
		},
		Min:       min,
		Max:       max,
		KnobColor: knob,
		OnChange:  onChange,
	}
	s.value = clamp(value, min, max)
	return s
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Dragging reports whether a touch-driven change is awaiting its drag end.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Draw paints the track, midline, knob and frame.
func (s *Slider) Draw() {
	if s.mgr == nil {
		return
	}
	surf := s.surface()
	surf.RoundRect(s.X, s.Y, s.W, s.H, trackRadius, s.BG, true)
	surf.HLine(s.X, s.Y+s.H/2, s.W, s.FG)
	kx := s.X + int(math.Round(relative(s.value, s.Min, s.Max)*float64(s.W-knobWidth)))
	surf.Rect(kx, s.Y+1, knobWidth, s.H-2, s.KnobColor, true)
	surf.RoundRect(s.X, s.Y, s.W, s.H, trackRadius, s.FG, false)
}

// HandleTouch maps a tap or drag inside the padded bounds to a value along
// the track. A drag end is consumed only while dragging.
func (s *Slider) HandleTouch(evt TouchEvent) bool {
	switch {
	case (evt.Kind == TouchTap || evt.Kind == TouchDrag) && s.HitTest(evt.X, evt.Y):
		span := float64(s.W - 1)
		if s.W <= 1 {
			span = 1
		}
		rel := clamp(float64(evt.X-s.X)/span, 0, 1)
		s.value = clamp(s.Min+rel*(s.Max-s.Min), s.Min, s.Max)
		s.dragging = true
		s.Draw()
		if s.OnChange != nil {
			s.OnChange(s.value)
		}
		return true
	case evt.Kind == TouchDragEnd && s.dragging:
		s.dragging = false
		s.Draw()
		return true
	}
	return false
}

// SetValue clamps v into [Min, Max], repainting if the slider's screen is
// current. OnChange is not called.
func (s *Slider) SetValue(v float64) {
	s.value = clamp(v, s.Min, s.Max)
	if s.onActiveScreen() {
		s.Draw()
	}
}

// relative maps v to [0, 1] over [min, max]. A zero-width range maps to 0.
func relative(v, min, max float64) float64 {
	if max == min {
		return 0
	}
	return clamp((v-min)/(max-min), 0, 1)
}

// clamp bounds v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
