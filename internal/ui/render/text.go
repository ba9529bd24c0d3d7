// Package render provides text layout helpers for the terminal views.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Number formats a value with thousands separators ("12,345").
func Number(v int64) string {
	return humanize.Comma(v)
}

// CellWidth returns the width needed to show every value of the given rows
// as a number cell. The minimum is 3 so indices fit.
func CellWidth(rows ...[]int64) int {
	w := 3
	for _, row := range rows {
		for _, v := range row {
			w = max(w, runewidth.StringWidth(Number(v)))
		}
	}
	return w
}

// Cell right-aligns plain text in a cell of the given width, with one space
// of padding on each side.
func Cell(text string, width int) string {
	return " " + runewidth.FillLeft(text, width) + " "
}

// BlankCell is an empty cell of the same width as Cell.
func BlankCell(width int) string {
	return strings.Repeat(" ", width+2)
}

// Truncate shortens a possibly styled string to maxWidth columns, ending
// with an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Wrap word-wraps a possibly styled string to width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

// Pad fills a possibly styled string with spaces to reach width.
func Pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// TruncateAndPad returns s at exactly width columns.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right content on one line of the given width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
