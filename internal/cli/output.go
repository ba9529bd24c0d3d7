package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/stepviz/internal/deck"
	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/prefixsum"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/twopointer"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Unexpected failure (terminal, log file, ...)
	ExitCommandError = 2 // Bad flags or input values
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed dump formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// TraceDump is the serialized form of a trace.
type TraceDump struct {
	Kind  string     `json:"kind" yaml:"kind"`
	Total int        `json:"total" yaml:"total"`
	Steps []StepDump `json:"steps" yaml:"steps"`
}

// StepDump is one serialized step.
type StepDump struct {
	Index       int            `json:"index" yaml:"index"`
	Action      string         `json:"action" yaml:"action"`
	Explanation []string       `json:"explanation" yaml:"explanation"`
	HoldMS      int64          `json:"hold_ms,omitempty" yaml:"hold_ms,omitempty"`
	State       map[string]any `json:"state" yaml:"state"`
}

// NewTraceDump converts t for serialization.
func NewTraceDump(t *trace.Trace) TraceDump {
	d := TraceDump{Kind: t.Kind(), Total: t.Len()}
	for _, s := range t.Steps() {
		d.Steps = append(d.Steps, StepDump{
			Index:       s.Index,
			Action:      s.Action.String(),
			Explanation: s.Explanation,
			HoldMS:      s.Hold.Milliseconds(),
			State:       snapshotState(s.Snapshot),
		})
	}
	return d
}

// snapshotState flattens a snapshot into stable snake_case keys.
func snapshotState(snap trace.Snapshot) map[string]any {
	switch s := snap.(type) {
	case prefixsum.Snapshot:
		return map[string]any{
			"prefix_sum":    s.PrefixSum,
			"current_index": s.CurrentIndex,
		}
	case twopointer.Snapshot:
		state := map[string]any{
			"a":         s.A,
			"b":         s.B,
			"output":    s.Output,
			"pointer_a": s.PointerA,
			"pointer_b": s.PointerB,
		}
		if s.From != "" {
			state["from"] = string(s.From)
		}
		return state
	case divisors.Snapshot:
		state := map[string]any{
			"n":         s.N,
			"divisors":  s.Divisors,
			"multiples": s.Multiples,
		}
		if s.Candidate > 0 {
			state["candidate"] = s.Candidate
			state["divides"] = s.Divides
		}
		return state
	case deck.Snapshot:
		return map[string]any{
			"slide":      string(s.Slide),
			"title":      s.Title,
			"body":       s.Body,
			"duration_s": s.Duration.Seconds(),
		}
	default:
		return map[string]any{}
	}
}

// WriteTrace writes t to w in format.
func WriteTrace(w io.Writer, t *trace.Trace, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewTraceDump(t))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewTraceDump(t)); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeTraceText(w, t)
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

func writeTraceText(w io.Writer, t *trace.Trace) error {
	var b strings.Builder
	for _, s := range t.Steps() {
		fmt.Fprintf(&b, "[%d/%d] %s\n", s.Index+1, t.Len(), s.Action)
		for _, line := range s.Explanation {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
