package stepview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/stepviz/internal/icons"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

// gridRow is one labelled row of equal-width cells. Rows sharing cols and
// focus scroll together.
type gridRow struct {
	label string
	cols  int
	focus int
	cell  func(col int) string
}

// grid lays out array rows under a common label column, scrolling each row
// so its focus column stays visible.
type grid struct {
	cellW int
	rows  []gridRow
}

func (g *grid) add(label string, cols, focus int, cell func(col int) string) {
	g.rows = append(g.rows, gridRow{label: label, cols: cols, focus: focus, cell: cell})
}

func (g *grid) render(width int) string {
	labelW := 0
	for _, r := range g.rows {
		labelW = max(labelW, lipgloss.Width(r.label))
	}
	label := styles.T().S().Label
	fit := max((width-labelW-1)/(g.cellW+2), 1)

	lines := make([]string, 0, len(g.rows))
	for _, r := range g.rows {
		start, end := window(r.cols, r.focus, fit)
		var b strings.Builder
		b.WriteString(label.Render(render.Pad(r.label, labelW)))
		b.WriteByte(' ')
		for col := start; col < end; col++ {
			c := r.cell(col)
			if c == "" {
				c = render.BlankCell(g.cellW)
			}
			b.WriteString(c)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// window returns the [start, end) range of at most fit columns that keeps
// focus visible, centered when possible.
func window(cols, focus, fit int) (int, int) {
	if cols <= fit {
		return 0, cols
	}
	start := min(max(focus-fit/2, 0), cols-fit)
	return start, start + fit
}

// numberCell renders v right-aligned in the given style.
func numberCell(v int64, w int, style lipgloss.Style) string {
	return style.Render(render.Cell(render.Number(v), w))
}

// pointerCell renders the pointer glyph, optionally followed by a name.
func pointerCell(name string, w int) string {
	text := icons.Current().Pointer
	if name != "" {
		text += name
	}
	return styles.T().S().Pointer.Render(render.Cell(text, w))
}

// indexCell renders a muted column index.
func indexCell(i int, w int) string {
	return styles.T().S().Subtle.Render(render.Cell(render.Number(int64(i)), w))
}
