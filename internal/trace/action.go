// Package trace holds the recorded steps of an algorithm run.
package trace

// Action classifies the semantic role of a step. Renderers use it to choose
// highlight styles; playback ignores it.
type Action string

const (
	ActionInitialize Action = "initialize"

	// Prefix sum
	ActionAccumulate Action = "accumulate"

	// Two-pointer merge
	ActionCompare        Action = "compare"
	ActionSelect         Action = "select"
	ActionRemainingStart Action = "remaining-start"
	ActionRemainingEnd   Action = "remaining-end"

	// Divisors
	ActionCheck    Action = "check"
	ActionDivisor  Action = "divisor"
	ActionMultiple Action = "multiple"

	// Slide deck
	ActionSlide Action = "slide"
)

// String returns the action tag.
func (a Action) String() string {
	return string(a)
}
