package touchui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Screen string `json:"screen,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Polls  int    `json:"polls,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted touch session. It is itself a Sampler: hand it
// to Loop.Input and it injects taps and swipes poll by poll. Screen changes
// and screenshots are posted onto the loop once Attach has been called.
type TestRunner struct {
	mu        sync.Mutex
	input     *InjectSampler
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	finished  chan struct{}

	mgr  *Manager
	post func(func()) bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "tap", "swipe", "wait", "screen", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{
		input:    NewInjectSampler(),
		steps:    script.Steps,
		finished: make(chan struct{}),
	}, nil
}

// LoadTestScriptFile reads and parses a JSON test script file.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// Attach lets screen and screenshot steps act on m through post, which
// must run its argument on the goroutine that owns m (normally Loop.Post).
func (r *TestRunner) Attach(m *Manager, post func(func()) bool) {
	r.mu.Lock()
	r.mgr = m
	r.post = post
	r.mu.Unlock()
}

// Done reports whether all steps have run and their input has been read.
func (r *TestRunner) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// Finished is closed when Done becomes true.
func (r *TestRunner) Finished() <-chan struct{} {
	return r.finished
}

// ReadPoints advances the script by at most one step and returns the next
// injected frame.
func (r *TestRunner) ReadPoints() []TouchPoint {
	r.step()
	return r.input.ReadPoints()
}

// ClearPoints is a no-op; see InjectSampler.
func (r *TestRunner) ClearPoints() {}

func (r *TestRunner) step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		close(r.finished)
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		r.input.InjectTap(st.X, st.Y, max(st.Polls, 1))
	case "swipe":
		r.input.InjectSwipe(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Polls, 2))
	case "wait":
		if st.Polls > 0 {
			r.waitCount = st.Polls - 1 // this poll counts as one
		}
	case "screen":
		r.onLoop(func(m *Manager) {
			if m.SetScreen(st.Screen) == nil {
				m.DrawAll()
			}
		})
	case "screenshot":
		r.onLoop(func(m *Manager) {
			_, _ = m.Screenshot(st.Label)
		})
	}
}

// onLoop must be called with mu held.
func (r *TestRunner) onLoop(fn func(m *Manager)) {
	if r.mgr == nil || r.post == nil {
		return
	}
	m := r.mgr
	r.post(func() { fn(m) })
}
