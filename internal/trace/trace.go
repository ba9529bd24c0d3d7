package trace

import "time"

// Trace is the ordered, immutable sequence of steps for one algorithm run.
// A trace always holds at least one step.
type Trace struct {
	steps []Step
}

// Len returns the number of steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// Step returns the step at index i.
func (t *Trace) Step(i int) (Step, bool) {
	if t == nil || i < 0 || i >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[i], true
}

// First returns the initial step.
func (t *Trace) First() Step {
	return t.steps[0]
}

// Last returns the final step.
func (t *Trace) Last() Step {
	return t.steps[len(t.steps)-1]
}

// Steps returns a copy of all steps.
func (t *Trace) Steps() []Step {
	if t == nil {
		return nil
	}
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// Kind returns the snapshot kind of the first step, or "" when unknown.
func (t *Trace) Kind() string {
	if t.Len() == 0 || t.steps[0].Snapshot == nil {
		return ""
	}
	return t.steps[0].Snapshot.Kind()
}

// Delay returns how long playback waits on step i before advancing.
func (t *Trace) Delay(i int, interval time.Duration) time.Duration {
	s, ok := t.Step(i)
	if !ok || s.Hold <= 0 {
		return interval
	}
	return s.Hold
}

// TotalHold returns the accumulated dwell time of the steps before position.
func (t *Trace) TotalHold(position int, interval time.Duration) time.Duration {
	var total time.Duration
	for i := 0; i < position && i < t.Len(); i++ {
		total += t.Delay(i, interval)
	}
	return total
}
