package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a \n\t b  c "); got != "a b c" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("ab\n\x1b[1mabcd\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[1msecond line\x1b[0m\nthird"
	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine = %q", got)
	}
	if ContainsLine(out, "fourth") {
		t.Error("ContainsLine matched a missing line")
	}
}

func TestCountLines(t *testing.T) {
	if got := CountLines("a\n\n  \nb\n"); got != 2 {
		t.Errorf("CountLines = %d, want 2", got)
	}
}
