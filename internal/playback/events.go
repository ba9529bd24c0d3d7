package playback

import "github.com/llehouerou/stepviz/internal/trace"

// StateChange is emitted when the controller state changes.
type StateChange struct {
	Previous State
	Current  State
}

// StepChange is emitted on every render of a step.
//
// Emitted by:
//   - Load: step 0 of the new trace
//   - ticks while playing
//   - StepForward/StepBackward/SeekTo and the seek operations
//
// Manual is true for StepForward(true) only. Previous is -1 after Load.
type StepChange struct {
	Step     trace.Step
	Position int
	Previous int
	Total    int
	Manual   bool
}

// Completed is emitted when the final step is reached.
type Completed struct {
	Step  trace.Step
	Total int
}
