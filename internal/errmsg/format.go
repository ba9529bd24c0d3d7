// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Visualizations
	OpBuildTrace Op = "build trace"
	OpParseInput Op = "parse input"
	OpRangeQuery Op = "run range query"
	OpDumpTrace  Op = "dump trace"

	// Startup
	OpLoadConfig  Op = "load config"
	OpOpenLog     Op = "open log file"
	OpRunTerminal Op = "run terminal UI"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith adds the subject of the operation, such as a list name or a
// visualization, to the message.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s %q: %v", op, subject, err)
}
