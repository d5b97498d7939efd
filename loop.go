package touchui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Loop errors.
var (
	ErrLoopStarted   = errors.New("touchui: loop already started")
	ErrLoopStopped   = errors.New("touchui: loop stopped")
	ErrCallbackPanic = errors.New("touchui: callback panicked")
)

// Task is a long-running cooperative job. It must return when ctx is done.
type Task func(ctx context.Context) error

// --- Touch observers ---

type touchHandler struct {
	id uint32
	fn func(TouchEvent)
}

type handlerKind uint8

const (
	onTouch handlerKind = iota
	onUnhandled
)

type handlerRegistry struct {
	touch     []touchHandler
	unhandled []touchHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered touch observer.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters the observer so it no longer fires. Call it on the loop
// goroutine.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case onTouch:
		h.reg.touch = removeTouchHandler(h.reg.touch, h.id)
	case onUnhandled:
		h.reg.unhandled = removeTouchHandler(h.reg.unhandled, h.id)
	}
}

func removeTouchHandler(s []touchHandler, id uint32) []touchHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = touchHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Loop ---

// Loop serialises all access to a Manager. Widget mutators, dispatch and
// painting run as jobs on a single goroutine (the one calling Run, or the
// host's frame callback calling Step), so a paint is never interleaved with
// another mutation. Background tasks started with Go, Every and Input post
// their work back onto that goroutine.
//
// Any callback or task that panics stops the whole loop; Run (or Wait)
// returns the panic as an error wrapping ErrCallbackPanic.
type Loop struct {
	mgr      *Manager
	handlers handlerRegistry

	mu      sync.Mutex
	queue   []func()
	pending []Task
	group   *errgroup.Group
	ctx     context.Context
	started bool

	notify   chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop driving m.
func NewLoop(m *Manager) *Loop {
	return &Loop{
		mgr:     m,
		notify:  make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// Manager returns the driven Manager. Only touch it from the loop goroutine.
func (l *Loop) Manager() *Manager {
	return l.mgr
}

// OnTouch registers fn to observe every event before widgets see it.
func (l *Loop) OnTouch(fn func(TouchEvent)) CallbackHandle {
	l.handlers.nextID++
	id := l.handlers.nextID
	l.handlers.touch = append(l.handlers.touch, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &l.handlers, kind: onTouch}
}

// OnUnhandled registers fn for events no widget consumed, such as swipes used
// for screen navigation.
func (l *Loop) OnUnhandled(fn func(TouchEvent)) CallbackHandle {
	l.handlers.nextID++
	id := l.handlers.nextID
	l.handlers.unhandled = append(l.handlers.unhandled, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &l.handlers, kind: onUnhandled}
}

// Post queues fn to run on the loop goroutine. It is safe from any goroutine,
// never blocks, and reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	select {
	case <-l.stopped:
		l.mu.Unlock()
		return false
	default:
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
	return true
}

// Emit queues evt for dispatch.
func (l *Loop) Emit(evt TouchEvent) bool {
	return l.Post(func() { l.dispatch(evt) })
}

func (l *Loop) dispatch(evt TouchEvent) {
	for _, h := range l.handlers.touch {
		h.fn(evt)
	}
	if l.mgr.Dispatch(evt) {
		return
	}
	for _, h := range l.handlers.unhandled {
		h.fn(evt)
	}
}

// Go runs task in the background for the lifetime of the loop. Tasks added
// before Start are launched when it is called.
func (l *Loop) Go(task Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	select {
	case <-l.stopped:
		return
	default:
	}
	if !l.started {
		l.pending = append(l.pending, task)
		return
	}
	l.launch(task)
}

// launch must be called with mu held after Start.
func (l *Loop) launch(task Task) {
	ctx := l.ctx
	l.group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
			}
		}()
		return task(ctx)
	})
}

// Every posts fn onto the loop every interval.
func (l *Loop) Every(interval time.Duration, fn func()) {
	l.Go(func(ctx context.Context) error {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if !l.Post(fn) {
					return nil
				}
			}
		}
	})
}

// Input polls s in the background, classifies gestures with cfg and emits
// them onto the loop. The returned classifier belongs to that task; set its
// Clock before the loop starts if needed.
func (l *Loop) Input(s Sampler, cfg GestureConfig) *Classifier {
	c := NewClassifier(cfg)
	l.Go(func(ctx context.Context) error {
		return c.Run(ctx, s, func(evt TouchEvent) { l.Emit(evt) })
	})
	return c
}

// Start launches the background tasks without taking over the calling
// goroutine. Use it with Step when a host (such as a game engine) owns the
// frame loop.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return ErrLoopStarted
	}
	l.started = true
	l.group, l.ctx = errgroup.WithContext(ctx)
	for _, t := range l.pending {
		l.launch(t)
	}
	l.pending = nil
	return nil
}

// Step runs every queued job on the calling goroutine. It returns nil while
// the loop is healthy. Once the loop has been cancelled or a job or task
// failed, it stops the loop and returns the first error, or ErrLoopStopped if
// the stop was a plain cancellation.
func (l *Loop) Step() error {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return ErrLoopStopped
	}
	ctx := l.ctx
	l.mu.Unlock()

	if ctx.Err() == nil {
		if err := l.drain(); err != nil {
			l.fail(err)
			return l.Wait()
		}
	}
	if ctx.Err() != nil {
		if err := l.Wait(); err != nil {
			return err
		}
		return ErrLoopStopped
	}
	return nil
}

// Run starts the loop and processes jobs on the calling goroutine until ctx
// is done or something fails. Cancelling ctx is a clean stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(ctx); err != nil {
		return err
	}
	for {
		if err := l.drain(); err != nil {
			l.fail(err)
			return l.Wait()
		}
		select {
		case <-l.ctx.Done():
			return l.Wait()
		case <-l.notify:
		}
	}
}

// Wait stops accepting jobs and blocks until every background task has
// returned. Context cancellation is not reported as an error.
func (l *Loop) Wait() error {
	l.stop()
	l.mu.Lock()
	g := l.group
	l.mu.Unlock()
	if g == nil {
		return nil
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		close(l.stopped)
		l.queue = nil
		l.mu.Unlock()
	})
}

// fail records err as the loop's failure, cancelling every task.
func (l *Loop) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.group.Go(func() error { return err })
}

// drain runs queued jobs until the queue is empty, including jobs queued by
// the jobs themselves.
func (l *Loop) drain() error {
	for {
		l.mu.Lock()
		jobs := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(jobs) == 0 {
			return nil
		}
		for _, fn := range jobs {
			if err := call(fn); err != nil {
				return err
			}
		}
	}
}

func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
		}
	}()
	fn()
	return nil
}
