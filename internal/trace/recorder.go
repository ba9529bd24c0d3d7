package trace

import "time"

// Recorder builds a Trace step by step. Indices are assigned in recording
// order. The zero value is ready to use.
type Recorder struct {
	steps    []Step
	finished bool
}

// NewRecorder returns a recorder with room for sizeHint steps.
func NewRecorder(sizeHint int) *Recorder {
	return &Recorder{steps: make([]Step, 0, max(sizeHint, 1))}
}

// Record appends a step and returns its index.
func (r *Recorder) Record(action Action, snap Snapshot, lines ...string) int {
	return r.RecordHold(action, snap, 0, lines...)
}

// RecordHold appends a step carrying its own dwell time.
func (r *Recorder) RecordHold(action Action, snap Snapshot, hold time.Duration, lines ...string) int {
	if r.finished {
		panic(ErrFinished)
	}
	explanation := make([]string, len(lines))
	copy(explanation, lines)
	idx := len(r.steps)
	r.steps = append(r.steps, Step{
		Index:       idx,
		Action:      action,
		Snapshot:    snap,
		Explanation: explanation,
		Hold:        hold,
	})
	return idx
}

// Explain appends explanation lines to the most recent step.
func (r *Recorder) Explain(lines ...string) {
	if len(r.steps) == 0 || r.finished {
		return
	}
	last := &r.steps[len(r.steps)-1]
	last.Explanation = append(last.Explanation, lines...)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Finish returns the recorded trace. It fails with ErrEmptyInput when
// nothing was recorded and with ErrMissingInitialize when the first step
// is not an initialize step. The recorder cannot be used afterwards.
func (r *Recorder) Finish() (*Trace, error) {
	if r.finished {
		return nil, ErrFinished
	}
	if len(r.steps) == 0 {
		return nil, ErrEmptyInput
	}
	if r.steps[0].Action != ActionInitialize {
		return nil, ErrMissingInitialize
	}
	r.finished = true
	t := &Trace{steps: r.steps}
	r.steps = nil
	return t, nil
}
