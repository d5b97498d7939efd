package ebitengine

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/touchui"
)

// Input is a touchui.Sampler over Ebitengine's pointer state. Update must be
// called once per tick from the game's Update; a Classifier may poll it from
// any goroutine.
//
// The first active touch wins; without touches the left mouse button acts as
// the finger. A press that starts and ends between two polls is latched so
// the next poll still sees it.
type Input struct {
	mu      sync.Mutex
	down    bool
	current touchui.TouchPoint
	latched *touchui.TouchPoint

	touchIDs []ebiten.TouchID
}

// NewInput returns an idle sampler.
func NewInput() *Input {
	return &Input{}
}

// Update records this tick's pointer state.
func (in *Input) Update() {
	x, y, down := in.poll()

	in.mu.Lock()
	defer in.mu.Unlock()
	in.down = down
	if !down {
		return
	}
	in.current = touchui.TouchPoint{X: x, Y: y, Pressure: 1, Time: time.Now()}
	p := in.current
	in.latched = &p
}

func (in *Input) poll() (x, y int, down bool) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(in.touchIDs[0])
		return x, y, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

// ReadPoints returns the held contact, or a latched one from a press that
// was released since the previous read.
func (in *Input) ReadPoints() []touchui.TouchPoint {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.down {
		in.latched = nil
		return []touchui.TouchPoint{in.current}
	}
	if in.latched != nil {
		p := *in.latched
		in.latched = nil
		return []touchui.TouchPoint{p}
	}
	return nil
}

// ClearPoints drops any latched press.
func (in *Input) ClearPoints() {
	in.mu.Lock()
	in.latched = nil
	in.mu.Unlock()
}
