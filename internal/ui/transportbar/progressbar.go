package transportbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/stepviz/internal/icons"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  ▓▓▓▓▓░░░░░  Step 4 of 9
func RenderProgressBar(ratio float64, label string, width int, playing bool) string {
	status := icons.Status(playing)

	fixedWidth := lipgloss.Width(status) + 2 + 2 + lipgloss.Width(label)
	barWidth := width - fixedWidth
	if barWidth < 3 {
		return status + "  " + label
	}

	ratio = min(max(ratio, 0), 1)
	filled := min(int(float64(barWidth)*ratio+0.5), barWidth)

	ic := icons.Current()
	bar := strings.Repeat(ic.Filled, filled) + strings.Repeat(ic.Empty, barWidth-filled)

	return status + "  " + bar + "  " + label
}
