package playback

import "github.com/llehouerou/stepviz/internal/i18n"

// ProgressText renders "Step k of n", or "Completed: n steps" once the
// final step is shown.
func ProgressText(p *i18n.Printer, position, total int) string {
	if total > 0 && position == total-1 {
		return p.Sprintf("progress.completed", total)
	}
	return p.Sprintf("progress.step", position+1, total)
}

// Fraction returns the position as a ratio in [0, 1].
func Fraction(position, total int) float64 {
	if total <= 1 {
		if total == 1 {
			return 1
		}
		return 0
	}
	return float64(position) / float64(total-1)
}
