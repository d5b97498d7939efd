package touchui

import (
	"math"
	"sync"
)

// InjectSampler is a Sampler fed by synthetic input. Each queued frame is
// what one poll sees: a pressed frame carries one point, a released frame
// none. With the queue empty the panel reads as released.
//
// It is safe for concurrent use, so tests can inject while a Classifier
// polls it from another goroutine.
type InjectSampler struct {
	mu     sync.Mutex
	frames [][]TouchPoint
}

// NewInjectSampler returns an empty sampler.
func NewInjectSampler() *InjectSampler {
	return &InjectSampler{}
}

// InjectPress queues one poll with the finger down at (x, y).
func (s *InjectSampler) InjectPress(x, y int) {
	s.push([]TouchPoint{{X: x, Y: y, Pressure: 1}})
}

// InjectMove queues one poll with the finger held at (x, y). Use it between
// InjectPress and InjectRelease to simulate movement.
func (s *InjectSampler) InjectMove(x, y int) {
	s.InjectPress(x, y)
}

// InjectRelease queues one poll with no contact.
func (s *InjectSampler) InjectRelease() {
	s.push(nil)
}

// InjectTap queues a press held for polls polls at (x, y), then a release.
// With the default 100ms poll, polls of 4 or more gives a medium tap.
func (s *InjectSampler) InjectTap(x, y, polls int) {
	if polls < 1 {
		polls = 1
	}
	for range polls {
		s.InjectPress(x, y)
	}
	s.InjectRelease()
}

// InjectSwipe queues a press at (fromX, fromY), linearly interpolated moves
// and a final contact at (toX, toY) over polls polls, then a release.
// Minimum polls is 2.
func (s *InjectSampler) InjectSwipe(fromX, fromY, toX, toY, polls int) {
	if polls < 2 {
		polls = 2
	}
	s.InjectPress(fromX, fromY)
	steps := polls - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + int(math.Round(float64(toX-fromX)*t))
		y := fromY + int(math.Round(float64(toY-fromY)*t))
		s.InjectMove(x, y)
	}
	s.InjectMove(toX, toY)
	s.InjectRelease()
}

// Pending returns the number of frames not yet read.
func (s *InjectSampler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// ReadPoints pops the next frame.
func (s *InjectSampler) ReadPoints() []TouchPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[0]
	copy(s.frames, s.frames[1:])
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// ClearPoints is a no-op: queued frames are future input, not stale samples.
func (s *InjectSampler) ClearPoints() {}

func (s *InjectSampler) push(points []TouchPoint) {
	s.mu.Lock()
	s.frames = append(s.frames, points)
	s.mu.Unlock()
}
