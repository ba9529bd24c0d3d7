package playback

// State represents the controller state.
type State int

const (
	StateEmpty State = iota
	StatePaused
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if a trace is loaded (paused or playing).
func (s State) IsLoaded() bool {
	return s == StatePaused || s == StatePlaying
}

// Transport reports which transport buttons are enabled.
type Transport struct {
	CanPlay         bool
	CanPause        bool
	CanStepForward  bool
	CanStepBackward bool
	CanSeekStart    bool
	CanSeekEnd      bool
}

func transportFor(state State, position, total int) Transport {
	if !state.IsLoaded() || total == 0 {
		return Transport{}
	}
	atStart := position == 0
	atEnd := position == total-1
	return Transport{
		CanPlay:         state == StatePaused && !atEnd,
		CanPause:        state == StatePlaying,
		CanStepForward:  !atEnd,
		CanStepBackward: !atStart,
		CanSeekStart:    !atStart || state == StatePlaying,
		CanSeekEnd:      !atEnd,
	}
}
