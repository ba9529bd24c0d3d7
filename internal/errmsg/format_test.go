package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		op   Op
		err  error
		want string
	}{
		{OpDumpTrace, nil, ""},
		{OpDumpTrace, errors.New("broken pipe"), "Failed to dump trace: broken pipe"},
		{OpLoadConfig, errors.New("permission denied"), "Failed to load config: permission denied"},
		{OpRunTerminal, errors.New("no tty"), "Failed to run terminal UI: no tty"},
	}
	for _, tt := range tests {
		if got := Format(tt.op, tt.err); got != tt.want {
			t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.want)
		}
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		subject string
		err     error
		want    string
	}{
		{"nil error", OpParseInput, "L", nil, ""},
		{"quoted subject", OpParseInput, "L", errors.New("not a number"), `Failed to parse input "L": not a number`},
		{"visualization", OpBuildTrace, "merge", errors.New("list A: empty input"), `Failed to build trace "merge": list A: empty input`},
		{"no subject", OpRangeQuery, "", errors.New("want L:R"), "Failed to run range query: want L:R"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.subject, tt.err); got != tt.want {
				t.Errorf("FormatWith = %q, want %q", got, tt.want)
			}
		})
	}
}
