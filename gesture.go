package touchui

import (
	"context"
	"image"
	"time"
)

// --- Defaults ---

const (
	defaultPollInterval  = 100 * time.Millisecond
	defaultMediumTap     = 400 * time.Millisecond
	defaultLongTap       = 700 * time.Millisecond
	defaultMoveThreshold = 20 // pixels
)

// TouchPoint is one raw contact sample reported by a Sampler.
type TouchPoint struct {
	X, Y     int
	Pressure int
	Time     time.Time
}

// Sampler reports the contact points currently pressed on the panel.
// Only the first point is used; extra contacts are ignored.
type Sampler interface {
	ReadPoints() []TouchPoint
	ClearPoints()
}

// Clock abstracts time for the polling loop.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// WallClock is the real-time Clock.
var WallClock Clock = wallClock{}

// GestureConfig tunes the classifier. Zero fields take the defaults.
type GestureConfig struct {
	PollInterval  time.Duration
	MediumTap     time.Duration // presses at least this long report the release position
	LongTap       time.Duration
	MoveThreshold int

	// SymmetricSwipe compares |dx| instead of the raw dx against the
	// threshold, so short leftward movements also count as swipes.
	SymmetricSwipe bool
}

// DefaultGestureConfig returns the stock timings: 100ms polling, 400/700ms tap
// bands and a 20px movement threshold.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		PollInterval:  defaultPollInterval,
		MediumTap:     defaultMediumTap,
		LongTap:       defaultLongTap,
		MoveThreshold: defaultMoveThreshold,
	}
}

func (c GestureConfig) withDefaults() GestureConfig {
	d := DefaultGestureConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.MediumTap <= 0 {
		c.MediumTap = d.MediumTap
	}
	if c.LongTap <= 0 {
		c.LongTap = d.LongTap
	}
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = d.MoveThreshold
	}
	return c
}

// TapLength buckets a press without movement by its duration.
type TapLength uint8

const (
	TapShort  TapLength = iota // shorter than MediumTap
	TapMedium                  // MediumTap up to LongTap
	TapLong                    // LongTap or longer
)

// tapLength classifies d against the configured bands.
func (c GestureConfig) tapLength(d time.Duration) TapLength {
	switch {
	case d < c.MediumTap:
		return TapShort
	case d < c.LongTap:
		return TapMedium
	default:
		return TapLong
	}
}

// Classify turns one finished contact episode into an event.
//
// A swipe needs |dy| > T or dx > T, where dx is the raw signed value (so a
// leftward move alone never qualifies unless SymmetricSwipe is set). The
// dominant axis picks the direction. Everything else is a tap: short taps
// report the touch-down position, medium and long taps the release position.
// All tap lengths produce TouchTap.
func Classify(start, end image.Point, d time.Duration, cfg GestureConfig) TouchEvent {
	cfg = cfg.withDefaults()
	dx := end.X - start.X
	dy := end.Y - start.Y
	t := cfg.MoveThreshold

	moveX := dx > t
	if cfg.SymmetricSwipe {
		moveX = abs(dx) > t
	}
	if abs(dy) > t || moveX {
		kind := TouchSwipeLeft
		switch {
		case abs(dy) > abs(dx) && dy > 0:
			kind = TouchSwipeDown
		case abs(dy) > abs(dx):
			kind = TouchSwipeUp
		case dx > 0:
			kind = TouchSwipeRight
		}
		return TouchEvent{Kind: kind, X: end.X, Y: end.Y}
	}

	if cfg.tapLength(d) == TapShort {
		return TouchEvent{Kind: TouchTap, X: start.X, Y: start.Y}
	}
	return TouchEvent{Kind: TouchTap, X: end.X, Y: end.Y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// --- Classifier ---

// Classifier is the per-episode state machine. Feed it one sample set per
// poll with Sample, or let Run drive it from a Sampler.
type Classifier struct {
	cfg    GestureConfig
	active bool
	start  image.Point
	end    image.Point
	t0     time.Time

	// Clock drives Run. Defaults to WallClock.
	Clock Clock
}

// NewClassifier returns an idle classifier using cfg.
func NewClassifier(cfg GestureConfig) *Classifier {
	return &Classifier{cfg: cfg.withDefaults(), Clock: WallClock}
}

// Config returns the effective configuration.
func (c *Classifier) Config() GestureConfig {
	return c.cfg
}

// Active reports whether a contact episode is in progress.
func (c *Classifier) Active() bool {
	return c.active
}

// Sample advances the state machine with the points read at now. It returns
// an event only on the poll where contact ends.
func (c *Classifier) Sample(points []TouchPoint, now time.Time) (TouchEvent, bool) {
	if len(points) > 0 {
		p := image.Point{X: points[0].X, Y: points[0].Y}
		if !c.active {
			c.active = true
			c.start = p
			c.end = p
			c.t0 = now
			return TouchEvent{}, false
		}
		c.end = p
		return TouchEvent{}, false
	}
	if !c.active {
		return TouchEvent{}, false
	}
	c.active = false
	return Classify(c.start, c.end, now.Sub(c.t0), c.cfg), true
}

// Reset drops any in-progress episode.
func (c *Classifier) Reset() {
	c.active = false
}

// Run polls s every PollInterval until ctx is done, handing each classified
// event to emit. While idle it clears the sampler after every poll.
func (c *Classifier) Run(ctx context.Context, s Sampler, emit func(TouchEvent)) error {
	clock := c.Clock
	if clock == nil {
		clock = WallClock
	}
	for {
		if evt, ok := c.Sample(s.ReadPoints(), clock.Now()); ok {
			emit(evt)
		}
		if !c.active {
			s.ClearPoints()
		}
		if err := clock.Sleep(ctx, c.cfg.PollInterval); err != nil {
			return err
		}
	}
}
