//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs",
			expected: filepath.Join(home, "logs"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/stepviz.log",
			expected: "/var/log/stepviz.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/stepviz.log",
			expected: "logs/stepviz.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "stepviz", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}

	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
language = "VI"
interval = "800ms"
icons = "ascii"

[prefix]
values = [5, 6, 7]
random_size = 4

[merge]
a = [1, 3]
b = [2]
strict = true

[divisors]
n = 36
multiples = 3

[deck]
durations = [2, 0, 4]

[log]
level = "debug"
file = "/tmp/stepviz-test.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GetLanguage() != "vi" {
		t.Errorf("GetLanguage() = %q, want vi", cfg.GetLanguage())
	}
	if cfg.GetInterval() != 800*time.Millisecond {
		t.Errorf("GetInterval() = %v, want 800ms", cfg.GetInterval())
	}
	if !cfg.ASCIIIcons() {
		t.Error("ASCIIIcons() = false, want true")
	}
	if p := cfg.GetPrefixConfig(); !slices.Equal(p.Values, []int64{5, 6, 7}) || p.RandomSize != 4 {
		t.Errorf("GetPrefixConfig() = %+v", p)
	}
	m := cfg.GetMergeConfig()
	if !slices.Equal(m.A, []int64{1, 3}) || !slices.Equal(m.B, []int64{2}) || !m.Strict {
		t.Errorf("GetMergeConfig() = %+v", m)
	}
	if d := cfg.GetDivisorsConfig(); d.N != 36 || d.Multiples != 3 {
		t.Errorf("GetDivisorsConfig() = %+v", d)
	}
	want := []time.Duration{2 * time.Second, 0, 4 * time.Second}
	if got := cfg.GetDeckDurations(); !slices.Equal(got, want) {
		t.Errorf("GetDeckDurations() = %v, want %v", got, want)
	}
	if l := cfg.GetLogConfig(); l.Level != "debug" || l.File != "/tmp/stepviz-test.log" {
		t.Errorf("GetLogConfig() = %+v", l)
	}
}

func TestLoad_IntervalMillisecondsWins(t *testing.T) {
	path := writeConfig(t, "interval = \"3s\"\ninterval_ms = 250\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetInterval() != 250*time.Millisecond {
		t.Errorf("GetInterval() = %v, want 250ms", cfg.GetInterval())
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, "language = [")
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestClampInterval(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"zero becomes default", 0, DefaultInterval},
		{"negative becomes default", -time.Second, DefaultInterval},
		{"below minimum", time.Millisecond, MinInterval},
		{"above maximum", time.Minute, MaxInterval},
		{"in range", 700 * time.Millisecond, 700 * time.Millisecond},
		{"at minimum", MinInterval, MinInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInterval(tt.in); got != tt.want {
				t.Errorf("ClampInterval(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetters_Defaults(t *testing.T) {
	cfg := Config{}

	if cfg.GetLanguage() != "en" {
		t.Errorf("GetLanguage() = %q, want en", cfg.GetLanguage())
	}
	if cfg.GetInterval() != DefaultInterval {
		t.Errorf("GetInterval() = %v, want %v", cfg.GetInterval(), DefaultInterval)
	}
	if cfg.ASCIIIcons() {
		t.Error("ASCIIIcons() = true, want false")
	}

	p := cfg.GetPrefixConfig()
	if !slices.Equal(p.Values, []int64{1, 2, 3, 4}) || p.RandomSize != 8 || p.RandomMin != 1 || p.RandomMax != 10 {
		t.Errorf("GetPrefixConfig() = %+v", p)
	}

	m := cfg.GetMergeConfig()
	if !slices.Equal(m.A, []int64{1, 2, 3}) || !slices.Equal(m.B, []int64{2, 4}) || m.RandomSize != 5 {
		t.Errorf("GetMergeConfig() = %+v", m)
	}
	if m.RandomMin != -100 || m.RandomMax != 100 || m.Strict {
		t.Errorf("GetMergeConfig() = %+v", m)
	}

	d := cfg.GetDivisorsConfig()
	if d.N != 12 || d.Multiples != 5 {
		t.Errorf("GetDivisorsConfig() = %+v", d)
	}

	if len(cfg.GetDeckDurations()) != 0 {
		t.Errorf("GetDeckDurations() = %v, want empty", cfg.GetDeckDurations())
	}

	l := cfg.GetLogConfig()
	if l.Level != "warn" {
		t.Errorf("GetLogConfig().Level = %q, want warn", l.Level)
	}
	if l.File != filepath.Join(xdg.StateHome, "stepviz", "stepviz.log") {
		t.Errorf("GetLogConfig().File = %q", l.File)
	}
}

func TestGetters_InvalidValues(t *testing.T) {
	cfg := Config{
		Prefix:   PrefixConfig{RandomSize: 25},
		Merge:    MergeConfig{RandomSize: -1},
		Divisors: DivisorsConfig{N: -3, Multiples: 100},
	}

	if got := cfg.GetPrefixConfig().RandomSize; got != 8 {
		t.Errorf("prefix RandomSize with invalid value = %d, want 8", got)
	}
	if got := cfg.GetMergeConfig().RandomSize; got != 5 {
		t.Errorf("merge RandomSize with invalid value = %d, want 5", got)
	}
	if d := cfg.GetDivisorsConfig(); d.N != 12 || d.Multiples != 5 {
		t.Errorf("GetDivisorsConfig() with invalid values = %+v", d)
	}
}
