package trace

import "errors"

// ErrEmptyInput is returned by tracers asked to trace a zero-length input.
var ErrEmptyInput = errors.New("empty input")

// ErrFinished is returned when recording into a recorder that already
// produced its trace.
var ErrFinished = errors.New("trace already finished")

// ErrMissingInitialize is returned when a trace does not open with an
// initialize step.
var ErrMissingInitialize = errors.New("first step must be " + string(ActionInitialize))
