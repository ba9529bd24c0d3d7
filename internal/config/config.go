package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "stepviz"

// Playback interval bounds and default.
const (
	DefaultInterval = time.Second
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = 10 * time.Second
)

type Config struct {
	Language   string        `koanf:"language"`    // "en" or "vi"
	Interval   time.Duration `koanf:"interval"`    // duration string, e.g. "800ms"
	IntervalMS int           `koanf:"interval_ms"` // milliseconds, wins over interval when > 0
	Icons      string        `koanf:"icons"`       // "unicode" or "ascii"

	Prefix   PrefixConfig   `koanf:"prefix"`
	Merge    MergeConfig    `koanf:"merge"`
	Divisors DivisorsConfig `koanf:"divisors"`
	Deck     DeckConfig     `koanf:"deck"`
	Log      LogConfig      `koanf:"log"`
}

// PrefixConfig holds the prefix-sum input defaults.
type PrefixConfig struct {
	Values     []int64 `koanf:"values"`
	RandomSize int     `koanf:"random_size"` // 1-20, default 8
	RandomMin  int64   `koanf:"random_min"`
	RandomMax  int64   `koanf:"random_max"`
}

// MergeConfig holds the two-pointer merge input defaults.
type MergeConfig struct {
	A          []int64 `koanf:"a"`
	B          []int64 `koanf:"b"`
	RandomSize int     `koanf:"random_size"` // 1-20, default 5
	RandomMin  int64   `koanf:"random_min"`
	RandomMax  int64   `koanf:"random_max"`
	Strict     bool    `koanf:"strict"` // reject unsorted lists
}

// DivisorsConfig holds the divisor lesson defaults.
type DivisorsConfig struct {
	N         int64 `koanf:"n"`
	Multiples int   `koanf:"multiples"`
}

// DeckConfig holds slide durations in seconds.
type DeckConfig struct {
	Durations []int `koanf:"durations"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
	File  string `koanf:"file"`  // default $XDG_STATE_HOME/stepviz/stepviz.log
}

// Load reads the config files in priority order (last wins). An explicit
// path is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s: %w", path, fs.ErrNotExist)
			}
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/stepviz/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetInterval returns the playback interval clamped to
// [MinInterval, MaxInterval]. interval_ms wins over interval.
func (c *Config) GetInterval() time.Duration {
	d := c.Interval
	if c.IntervalMS > 0 {
		d = time.Duration(c.IntervalMS) * time.Millisecond
	}
	return ClampInterval(d)
}

// ClampInterval bounds d, mapping non-positive values to DefaultInterval.
func ClampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultInterval
	}
	return min(max(d, MinInterval), MaxInterval)
}

// GetLanguage returns the configured language, "en" when unset.
func (c *Config) GetLanguage() string {
	if c.Language == "" {
		return "en"
	}
	return c.Language
}

// ASCIIIcons reports whether transport icons should avoid unicode.
func (c *Config) ASCIIIcons() bool {
	return strings.EqualFold(c.Icons, "ascii")
}

// GetPrefixConfig returns the prefix-sum configuration with defaults applied.
func (c *Config) GetPrefixConfig() PrefixConfig {
	cfg := c.Prefix
	if len(cfg.Values) == 0 {
		cfg.Values = []int64{1, 2, 3, 4}
	}
	if cfg.RandomSize <= 0 || cfg.RandomSize > 20 {
		cfg.RandomSize = 8
	}
	if cfg.RandomMin == 0 && cfg.RandomMax == 0 {
		cfg.RandomMin, cfg.RandomMax = 1, 10
	}
	return cfg
}

// GetMergeConfig returns the merge configuration with defaults applied.
func (c *Config) GetMergeConfig() MergeConfig {
	cfg := c.Merge
	if len(cfg.A) == 0 {
		cfg.A = []int64{1, 2, 3}
	}
	if len(cfg.B) == 0 {
		cfg.B = []int64{2, 4}
	}
	if cfg.RandomSize <= 0 || cfg.RandomSize > 20 {
		cfg.RandomSize = 5
	}
	if cfg.RandomMin == 0 && cfg.RandomMax == 0 {
		cfg.RandomMin, cfg.RandomMax = -100, 100
	}
	return cfg
}

// GetDivisorsConfig returns the divisor configuration with defaults applied.
func (c *Config) GetDivisorsConfig() DivisorsConfig {
	cfg := c.Divisors
	if cfg.N <= 0 {
		cfg.N = 12
	}
	if cfg.Multiples <= 0 || cfg.Multiples > 20 {
		cfg.Multiples = 5
	}
	return cfg
}

// GetDeckDurations returns the slide durations; non-positive entries are
// left as zero so the deck default applies.
func (c *Config) GetDeckDurations() []time.Duration {
	out := make([]time.Duration, len(c.Deck.Durations))
	for i, secs := range c.Deck.Durations {
		if secs > 0 {
			out[i] = time.Duration(secs) * time.Second
		}
	}
	return out
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}
