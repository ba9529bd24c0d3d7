package stepview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/trace"
	"github.com/llehouerou/stepviz/internal/twopointer"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

func renderMerge(p *i18n.Printer, step trace.Step, snap twopointer.Snapshot, final bool, width int) string {
	total := len(snap.A) + len(snap.B)
	g := grid{cellW: render.CellWidth(snap.A, snap.B)}

	listRows := func(name string, src twopointer.Source, list []int64, ptr int, ptrName string) {
		focus := min(ptr, len(list)-1)
		g.add(name, len(list), focus, func(col int) string {
			return numberCell(list[col], g.cellW, sourceStyle(step.Action, snap, src, col, ptr))
		})
		g.add("", len(list), focus, func(col int) string {
			if col != ptr {
				return ""
			}
			return pointerCell(ptrName, g.cellW)
		})
	}
	listRows("A", twopointer.SourceA, snap.A, snap.PointerA, "i")
	listRows("B", twopointer.SourceB, snap.B, snap.PointerB, "j")

	out := snap.Output
	remaining := make(map[int]bool, len(snap.RemainingIndices))
	for _, i := range snap.RemainingIndices {
		remaining[i] = true
	}
	g.add("C", total, max(len(out)-1, 0), func(col int) string {
		if col >= len(out) {
			return ""
		}
		st := styles.T().S()
		style := st.Done
		switch {
		case remaining[col]:
			style = st.Remaining
		case step.Action == trace.ActionSelect && col == len(out)-1:
			style = st.Select
		}
		return numberCell(out[col], g.cellW, style)
	})

	view := g.render(width)
	if final {
		result := p.Sprintf("result.final", i18n.List(out))
		view += "\n\n" + styles.T().S().Success.Render(render.Truncate(result, width))
	}
	return view
}

// sourceStyle picks the style of element col of an input list.
func sourceStyle(action trace.Action, snap twopointer.Snapshot, src twopointer.Source, col, ptr int) lipgloss.Style {
	st := styles.T().S()
	switch action {
	case trace.ActionCompare:
		if col == ptr {
			return st.Compare
		}
	case trace.ActionSelect:
		if snap.From == src && col == snap.PrevIndex {
			return st.Select
		}
	case trace.ActionRemainingStart, trace.ActionRemainingEnd:
		if snap.From == src && col >= snap.PrevIndex {
			return st.Remaining
		}
	}
	if col < ptr {
		return st.Subtle
	}
	return st.Cell
}
