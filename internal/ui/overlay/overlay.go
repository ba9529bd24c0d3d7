// Package overlay draws a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center draws box over the middle of base, which is width columns wide.
// Blank box lines let base show through. Base grows when box is taller.
func Center(base, box string, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	top := max((len(baseLines)-len(boxLines))/2, 0)
	left := max((width-lipgloss.Width(box))/2, 0)
	for len(baseLines) < top+len(boxLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range boxLines {
		if strings.TrimSpace(ansi.Strip(line)) == "" {
			continue
		}
		row := top + i
		baseLines[row] = splice(baseLines[row], line, left)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces the cells of base starting at column at with s.
func splice(base, s string, at int) string {
	end := at + ansi.StringWidth(s)
	if w := ansi.StringWidth(base); w < end {
		base += strings.Repeat(" ", end-w)
	}
	return ansi.Cut(base, 0, at) + s + ansi.TruncateLeft(base, end, "")
}
