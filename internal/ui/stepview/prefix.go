package stepview

import (
	"github.com/llehouerou/stepviz/internal/prefixsum"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

func renderPrefix(t *trace.Trace, step trace.Step, snap prefixsum.Snapshot, width int) string {
	st := styles.T().S()

	// The final step holds the complete S; A is recovered from it.
	sums := snap.PrefixSum
	if last, ok := t.Last().Snapshot.(prefixsum.Snapshot); ok {
		sums = last.PrefixSum
	}
	values := make([]int64, max(len(sums)-1, 0))
	for i := range values {
		values[i] = sums[i+1] - sums[i]
	}

	cur := snap.CurrentIndex
	accumulating := step.Action == trace.ActionAccumulate
	cols := len(values) + 1
	g := grid{cellW: render.CellWidth(values, sums)}

	g.add("i", cols, cur, func(col int) string {
		return indexCell(col, g.cellW)
	})
	g.add("A", cols, cur, func(col int) string {
		if col == 0 {
			return ""
		}
		style := st.Cell
		switch {
		case accumulating && col == cur:
			style = st.Select
		case col < cur:
			style = st.Muted
		}
		return numberCell(values[col-1], g.cellW, style)
	})
	g.add("S", cols, cur, func(col int) string {
		if col >= len(snap.PrefixSum) {
			return ""
		}
		style := st.Done
		switch {
		case col == cur:
			style = st.Select
		case accumulating && col == cur-1:
			style = st.Compare
		}
		return numberCell(snap.PrefixSum[col], g.cellW, style)
	})
	g.add("", cols, cur, func(col int) string {
		if col != cur {
			return ""
		}
		return pointerCell("", g.cellW)
	})
	return g.render(width)
}
