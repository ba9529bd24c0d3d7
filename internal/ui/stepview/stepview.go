// Package stepview renders one recorded step: the algorithm's arrays with
// per-action highlights, and the step's explanation.
package stepview

import (
	"strings"

	"github.com/llehouerou/stepviz/internal/deck"
	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/prefixsum"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/twopointer"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

// Render draws the step at position. The whole trace is needed because some
// rows (the prefix-sum input, the divisor candidates) are read from its
// final step.
func Render(p *i18n.Printer, t *trace.Trace, position, width int) string {
	if t == nil {
		return ""
	}
	step, ok := t.Step(position)
	if !ok {
		return ""
	}

	switch snap := step.Snapshot.(type) {
	case prefixsum.Snapshot:
		return renderPrefix(t, step, snap, width)
	case twopointer.Snapshot:
		return renderMerge(p, step, snap, position == t.Len()-1, width)
	case divisors.Snapshot:
		return renderDivisors(p, t, step, snap, width)
	case deck.Snapshot:
		return renderSlide(p, snap, width)
	default:
		return styles.T().S().Muted.Render(step.Action.String())
	}
}

// Title returns the localized name of the visualization that produced t.
func Title(p *i18n.Printer, t *trace.Trace) string {
	if t == nil {
		return p.Sprintf("screen.title")
	}
	switch t.Kind() {
	case prefixsum.Kind:
		return p.Sprintf("screen.prefix")
	case twopointer.Kind:
		return p.Sprintf("screen.merge")
	case divisors.Kind:
		return p.Sprintf("screen.divisors")
	case deck.Kind:
		return p.Sprintf("screen.deck")
	default:
		return p.Sprintf("screen.title")
	}
}

// Explanation renders the step's explanation lines as a wrapped bullet list
// under a muted action tag.
func Explanation(step trace.Step, width int) string {
	st := styles.T().S()
	lines := []string{st.Subtle.Render("[" + step.Action.String() + "]")}
	for i, line := range step.Explanation {
		style := st.Base
		if i == 0 {
			style = st.Title
		}
		wrapped := render.Wrap(line, max(width-2, 1))
		for j, part := range strings.Split(wrapped, "\n") {
			prefix := "• "
			if j > 0 {
				prefix = "  "
			}
			lines = append(lines, st.Accent.Render(prefix)+style.Render(part))
		}
	}
	return strings.Join(lines, "\n")
}
