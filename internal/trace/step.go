package trace

import "time"

// Snapshot is the algorithm-specific state captured by a step.
// Concrete snapshots live next to the tracer that produces them.
type Snapshot interface {
	// Kind names the producing algorithm ("prefix-sum", "merge", ...).
	Kind() string
}

// Step is one recorded state of an algorithm run.
type Step struct {
	Index       int
	Action      Action
	Snapshot    Snapshot
	Explanation []string

	// Hold overrides the playback interval for the tick that leaves this
	// step. Zero means the controller interval applies.
	Hold time.Duration
}

// IsFirst reports whether the step opens its trace.
func (s Step) IsFirst() bool {
	return s.Index == 0
}
