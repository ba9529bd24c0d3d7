package playback

import (
	"time"

	"github.com/llehouerou/stepviz/internal/trace"
)

// Load replaces the trace, cancels any pending tick and renders step 0.
// The controller is left paused. A nil or empty trace is ignored.
func (c *Controller) Load(t *trace.Trace) {
	if t.Len() == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.cancelTimerLocked()
	c.trace = t
	c.log.Debug("playback load", "kind", t.Kind(), "steps", t.Len())
	c.setStateLocked(StatePaused)
	c.moveLocked(0, -1, false)
}

// Play starts automatic advance. It does nothing at the final step or
// while already playing.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadedLocked() || c.state == StatePlaying || c.position == c.lastLocked() {
		return
	}
	c.setStateLocked(StatePlaying)
	c.scheduleLocked()
}

// Pause stops automatic advance.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state != StatePlaying {
		return
	}
	c.cancelTimerLocked()
	c.setStateLocked(StatePaused)
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle() {
	if c.IsPlaying() {
		c.Pause()
		return
	}
	c.Play()
}

// StepForward advances one step. manual is reported on the StepChange
// event so a UI can refresh its buttons immediately. While playing, the
// pending tick restarts from zero.
func (c *Controller) StepForward(manual bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadedLocked() || c.position >= c.lastLocked() {
		return
	}
	c.moveLocked(c.position+1, c.position, manual)
	if c.state == StatePlaying {
		c.scheduleLocked()
	}
}

// StepBackward moves back one step.
func (c *Controller) StepBackward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadedLocked() || c.position == 0 {
		return
	}
	c.moveLocked(c.position-1, c.position, false)
	if c.state == StatePlaying {
		c.scheduleLocked()
	}
}

// SeekToStart pauses and renders step 0.
func (c *Controller) SeekToStart() {
	c.seek(func(int) int { return 0 })
}

// SeekToEnd pauses and renders the final step.
func (c *Controller) SeekToEnd() {
	c.seek(func(last int) int { return last })
}

// SeekTo pauses and renders step i, clamped to the trace.
func (c *Controller) SeekTo(i int) {
	c.seek(func(last int) int { return min(max(i, 0), last) })
}

func (c *Controller) seek(target func(last int) int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loadedLocked() {
		return
	}
	c.cancelTimerLocked()
	c.setStateLocked(StatePaused)
	c.moveLocked(target(c.lastLocked()), c.position, false)
}

// SetInterval changes the delay between automatic advances. While playing
// the pending tick is cancelled and rescheduled at the new interval.
// Non-positive intervals are ignored.
func (c *Controller) SetInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 || c.closed {
		return
	}
	c.interval = d
	c.log.Debug("playback interval", "interval", d)
	if c.state == StatePlaying {
		c.scheduleLocked()
	}
}

// scheduleLocked replaces the pending tick with one for the current step.
func (c *Controller) scheduleLocked() {
	c.cancelTimerLocked()
	gen := c.gen
	delay := c.trace.Delay(c.position, c.interval)
	c.timer = c.sched.AfterFunc(delay, func() { c.tick(gen) })
}

func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.closed || c.state != StatePlaying {
		return
	}
	c.timer = nil
	if c.position >= c.lastLocked() {
		c.setStateLocked(StatePaused)
		return
	}
	c.moveLocked(c.position+1, c.position, false)
	if c.state == StatePlaying {
		c.scheduleLocked()
	}
}
