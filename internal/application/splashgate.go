package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beatzboy/site/internal/domain/model"
)

// Sentinel errors returned by SplashGate.
var (
	// ErrGateActivated indicates Activate was called on a gate that was already activated.
	ErrGateActivated = errors.New("splash gate already activated")

	// ErrGateNotActivated indicates Wait was called before Activate.
	ErrGateNotActivated = errors.New("splash gate not activated")
)

// Timer is a handle to a deferred callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks. SystemClock is backed by time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock is the wall-clock implementation of Clock.
var SystemClock Clock = systemClock{}

// SplashGate is the two-state loader machine for one page activation.
// It starts Loading, moves to Ready exactly once when its timer fires, and never
// moves again. Deactivate stops the timer; a deactivated gate never transitions.
type SplashGate struct {
	delay time.Duration
	clock Clock

	mu          sync.Mutex
	state       model.SplashState
	activated   bool
	deactivated bool
	timer       Timer
	ready       chan struct{}
}

// NewSplashGate creates a gate in the Loading state. A nil clock selects SystemClock.
func NewSplashGate(delay time.Duration, clock Clock) *SplashGate {
	if clock == nil {
		clock = SystemClock
	}
	return &SplashGate{
		delay: delay,
		clock: clock,
		state: model.SplashLoading,
		ready: make(chan struct{}),
	}
}

// Activate schedules the single Loading → Ready transition. A delay of zero or
// less transitions immediately. Calling Activate twice returns ErrGateActivated.
func (g *SplashGate) Activate() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.activated {
		return ErrGateActivated
	}
	g.activated = true

	if g.delay <= 0 {
		g.transitionLocked()
		return nil
	}

	g.timer = g.clock.AfterFunc(g.delay, g.expire)
	return nil
}

// Deactivate releases the timer. It is safe to call more than once and from
// any goroutine, including before Activate.
func (g *SplashGate) Deactivate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.deactivated = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// State returns the current state.
func (g *SplashGate) State() model.SplashState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Delay returns the configured splash duration.
func (g *SplashGate) Delay() time.Duration {
	return g.delay
}

// Ready returns a channel that is closed when the gate becomes Ready.
func (g *SplashGate) Ready() <-chan struct{} {
	return g.ready
}

// Wait blocks until the gate is Ready or ctx is done. When ctx ends first the
// gate is deactivated and ctx.Err() is returned.
func (g *SplashGate) Wait(ctx context.Context) error {
	g.mu.Lock()
	activated := g.activated
	g.mu.Unlock()
	if !activated {
		return ErrGateNotActivated
	}

	select {
	case <-g.ready:
		return nil
	case <-ctx.Done():
		g.Deactivate()
		return ctx.Err()
	}
}

func (g *SplashGate) expire() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deactivated || g.state == model.SplashReady {
		return
	}
	g.timer = nil
	g.transitionLocked()
}

func (g *SplashGate) transitionLocked() {
	g.state = model.SplashReady
	close(g.ready)
}
