// Package playback drives VCR-style playback over a recorded trace.
package playback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/llehouerou/stepviz/internal/clock"
	"github.com/llehouerou/stepviz/internal/trace"
)

// DefaultInterval is the delay between automatic advances when none is set.
const DefaultInterval = time.Second

// StepFunc renders a step. total is the trace length.
type StepFunc func(step trace.Step, position, total int)

// ProgressFunc reports the position for a progress indicator.
type ProgressFunc func(position, total int)

// CompleteFunc is called when the final step is reached.
type CompleteFunc func(final trace.Step)

// Options configures a Controller. Zero values pick the defaults.
type Options struct {
	Interval  time.Duration
	Scheduler clock.Scheduler
	Logger    *slog.Logger

	OnStep     StepFunc
	OnProgress ProgressFunc
	OnComplete CompleteFunc
}

// Controller owns one trace and a position into it.
//
// Every operation and timer tick runs under a single mutex, so callbacks
// for position k+1 never start before those for position k return.
// Callbacks run with the lock held and must not call the controller.
type Controller struct {
	mu    sync.Mutex
	sched clock.Scheduler
	log   *slog.Logger

	trace    *trace.Trace
	position int
	state    State
	interval time.Duration

	timer clock.Timer
	// gen is bumped whenever the pending timer is superseded; ticks carrying
	// an older generation are discarded.
	gen uint64

	onStep     StepFunc
	onProgress ProgressFunc
	onComplete CompleteFunc

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates an empty controller.
func New(opts Options) *Controller {
	c := &Controller{
		sched:      opts.Scheduler,
		log:        opts.Logger,
		interval:   opts.Interval,
		onStep:     opts.OnStep,
		onProgress: opts.OnProgress,
		onComplete: opts.OnComplete,
	}
	if c.sched == nil {
		c.sched = clock.Real()
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	return c
}

// OnStep replaces the render callback.
func (c *Controller) OnStep(fn StepFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStep = fn
}

// OnProgress replaces the progress callback.
func (c *Controller) OnProgress(fn ProgressFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onProgress = fn
}

// OnComplete replaces the completion callback.
func (c *Controller) OnComplete(fn CompleteFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onComplete = fn
}

// State returns the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsPlaying reports whether automatic advance is running.
func (c *Controller) IsPlaying() bool {
	return c.State() == StatePlaying
}

// Position returns the current step index.
func (c *Controller) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Len returns the length of the loaded trace, 0 when empty.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace.Len()
}

// Progress returns the position and the trace length.
func (c *Controller) Progress() (position, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position, c.trace.Len()
}

// Interval returns the delay between automatic advances.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Current returns the step at the current position.
func (c *Controller) Current() (trace.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace.Step(c.position)
}

// Trace returns the loaded trace, or nil.
func (c *Controller) Trace() *trace.Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trace
}

// Transport returns which transport operations would have an effect.
func (c *Controller) Transport() Transport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return transportFor(c.state, c.position, c.trace.Len())
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()

	sub := newSubscription()
	if closed {
		sub.close()
		return sub
	}
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	c.subs = append(c.subs, sub)
	return sub
}

// Close cancels any pending tick and closes every subscription.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.cancelTimerLocked()
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	c.log.Debug("playback closed")
	return nil
}

func (c *Controller) lastLocked() int {
	return c.trace.Len() - 1
}

func (c *Controller) loadedLocked() bool {
	return !c.closed && c.state.IsLoaded()
}

func (c *Controller) setStateLocked(s State) {
	if c.state == s {
		return
	}
	prev := c.state
	c.state = s
	c.log.Debug("playback state", "from", prev, "to", s, "position", c.position)
	c.broadcast(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: s})
	})
}

// moveLocked sets the position and renders it. Arriving at the final step
// from elsewhere stops playback and signals completion.
func (c *Controller) moveLocked(to int, prev int, manual bool) {
	c.position = to
	step, _ := c.trace.Step(to)
	total := c.trace.Len()

	if c.onStep != nil {
		c.onStep(step, to, total)
	}
	if c.onProgress != nil {
		c.onProgress(to, total)
	}
	c.broadcast(func(sub *Subscription) {
		sub.sendStep(StepChange{Step: step, Position: to, Previous: prev, Total: total, Manual: manual})
	})

	if prev < 0 || to != c.lastLocked() || prev == to {
		return
	}
	if c.state == StatePlaying {
		c.cancelTimerLocked()
		c.setStateLocked(StatePaused)
	}
	c.log.Debug("playback complete", "steps", total)
	if c.onComplete != nil {
		c.onComplete(step)
	}
	c.broadcast(func(sub *Subscription) {
		sub.sendCompleted(Completed{Step: step, Total: total})
	})
}

func (c *Controller) broadcast(send func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		send(sub)
	}
}
