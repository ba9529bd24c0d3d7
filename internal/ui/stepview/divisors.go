package stepview

import (
	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

func renderDivisors(p *i18n.Printer, t *trace.Trace, step trace.Step, snap divisors.Snapshot, width int) string {
	st := styles.T().S()
	root := divisors.Root(snap.N)

	var all, multiples []int64
	if last, ok := t.Last().Snapshot.(divisors.Snapshot); ok {
		all, multiples = last.Divisors, last.Multiples
	}
	g := grid{cellW: render.CellWidth(all, multiples, []int64{snap.N})}

	// Past the scan every candidate has been checked.
	checkedUpTo := snap.Candidate
	if step.Action == trace.ActionMultiple {
		checkedUpTo = root + 1
	}

	g.add(p.Sprintf("view.candidates"), int(root), int(max(snap.Candidate-1, 0)), func(col int) string {
		d := int64(col + 1)
		style := st.Cell
		switch {
		case d == snap.Candidate && step.Action == trace.ActionDivisor:
			style = st.Select
		case d == snap.Candidate:
			style = st.Compare
		case d < checkedUpTo && snap.N%d == 0:
			style = st.Done
		case d < checkedUpTo:
			style = st.Subtle
		}
		return numberCell(d, g.cellW, style)
	})

	found := snap.Divisors
	g.add(p.Sprintf("view.divisors"), len(found), 0, func(col int) string {
		v := found[col]
		style := st.Done
		if step.Action == trace.ActionDivisor && (v == snap.Candidate || v*snap.Candidate == snap.N) {
			style = st.Select
		}
		return numberCell(v, g.cellW, style)
	})

	listed := snap.Multiples
	g.add(p.Sprintf("view.multiples"), len(listed), max(len(listed)-1, 0), func(col int) string {
		style := st.Remaining
		if step.Action == trace.ActionMultiple && col == len(listed)-1 {
			style = st.Select
		}
		return numberCell(listed[col], g.cellW, style)
	})

	header := st.Title.Render(p.Sprintf("view.n", render.Number(snap.N)))
	return header + "\n\n" + g.render(width)
}
