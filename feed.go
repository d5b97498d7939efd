package touchui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ramp is a wrapping counter for demo feeds. Each Next returns the current
// value and then advances by Step, going back to Start once the value passes
// Limit (or reaches it, unless Inclusive).
type Ramp struct {
	Start, Step, Limit float64
	Inclusive          bool

	cur     float64
	started bool
}

// Next returns the current value and advances.
func (r *Ramp) Next() float64 {
	if !r.started {
		r.cur = r.Start
		r.started = true
	}
	v := r.cur
	r.cur += r.Step
	if r.cur > r.Limit || (!r.Inclusive && r.cur >= r.Limit) {
		r.cur = r.Start
	}
	return v
}

// Sweep eases a value back and forth between From and To, one leg per
// Duration seconds. Drive it with Update from a Loop.Every job.
type Sweep struct {
	From, To float32
	Duration float32
	Ease     ease.TweenFunc

	tween   *gween.Tween
	reverse bool
}

// NewSweep creates a sweep starting at from. A nil fn means ease.InOutQuad.
func NewSweep(from, to, duration float32, fn ease.TweenFunc) *Sweep {
	if fn == nil {
		fn = ease.InOutQuad
	}
	s := &Sweep{From: from, To: to, Duration: duration, Ease: fn}
	s.tween = gween.New(from, to, duration, fn)
	return s
}

// Update advances the sweep by dt seconds and returns the current value.
func (s *Sweep) Update(dt float32) float64 {
	val, finished := s.tween.Update(dt)
	if finished {
		s.reverse = !s.reverse
		from, to := s.From, s.To
		if s.reverse {
			from, to = to, from
		}
		s.tween = gween.New(from, to, s.Duration, s.Ease)
	}
	return float64(val)
}
