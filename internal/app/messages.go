// Package app contains the terminal UI model.
package app

import "github.com/llehouerou/stepviz/internal/playback"

// StepChangedMsg is sent when the controller shows a new step.
type StepChangedMsg playback.StepChange

// StateChangedMsg is sent when the controller starts or stops playing.
type StateChangedMsg playback.StateChange

// CompletedMsg is sent when playback reaches the final step.
type CompletedMsg playback.Completed

// PlaybackClosedMsg is sent once the controller has been closed.
type PlaybackClosedMsg struct{}
