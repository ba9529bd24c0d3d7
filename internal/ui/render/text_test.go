package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{-1234567, "-1,234,567"},
		{1_000_000_000, "1,000,000,000"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCellWidth(t *testing.T) {
	if got := CellWidth(); got != 3 {
		t.Errorf("CellWidth() = %d, want 3", got)
	}
	if got := CellWidth([]int64{1, 2}, []int64{12345}); got != 6 {
		t.Errorf("CellWidth = %d, want 6 for \"12,345\"", got)
	}
}

func TestCell(t *testing.T) {
	if got := Cell("7", 3); got != "   7 " {
		t.Errorf("Cell = %q", got)
	}
	if got := BlankCell(3); got != "     " {
		t.Errorf("BlankCell = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncate_Styled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := Truncate(styled, 6)
	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad = %q", got)
	}
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad should not cut, got %q", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, s := range []string{"a", "exactly10!", "much longer than ten"} {
		if w := lipgloss.Width(TruncateAndPad(s, 10)); w != 10 {
			t.Errorf("TruncateAndPad(%q) width = %d, want 10", s, w)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	for line := range strings.SplitSeq(got, "\n") {
		if lipgloss.Width(line) > 9 {
			t.Errorf("line %q wider than 9", line)
		}
	}
	if Wrap("x", 0) != "x" {
		t.Error("non-positive width should return input")
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("narrow Row = %q, want one-space gap", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}
