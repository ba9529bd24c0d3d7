// Package cli implements the stepviz command line.
package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/stepviz/internal/app"
	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/icons"
	"github.com/llehouerou/stepviz/internal/logging"
)

// RootOptions holds global flags and the state they resolve to.
type RootOptions struct {
	Lang       string
	Interval   time.Duration
	Debug      bool
	ConfigPath string

	// Resolved by the root pre-run.
	Config  *config.Config
	Printer *i18n.Printer

	// RunUI runs the terminal UI. Tests replace it to capture the options.
	RunUI func(opts *RootOptions, ao app.Options) error
	// Rand seeds random inputs; nil uses the time.
	Rand *rand.Rand
}

// NewRootCommand creates the root command. Without a subcommand it opens
// the interactive visualizer.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{RunUI: runTerminal})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stepviz",
		Short: "Step-by-step algorithm visualizer",
		Long: `Watch classic algorithms run one recorded step at a time.

Visualizations: prefix sums with range queries, the two-pointer merge,
divisors and multiples, and a timed number theory slide deck.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.RunUI(opts, app.Options{})
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "explanation language (en|vi)")
	cmd.PersistentFlags().DurationVar(&opts.Interval, "interval", 0, "playback interval, e.g. 800ms")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewPrefixCommand(opts))
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewDivisorsCommand(opts))
	cmd.AddCommand(NewDeckCommand(opts))
	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

// setup loads the config, applies flag overrides and configures logging to
// errOut. The terminal UI later redirects logs to a file.
func (o *RootOptions) setup(errOut io.Writer) error {
	if err := logging.Configure(o.logLevel(nil), errOut); err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, errmsg.Format(errmsg.OpLoadConfig, err), nil)
	}

	if o.Lang != "" {
		lang := strings.ToLower(strings.TrimSpace(o.Lang))
		if !i18n.Default().Has(lang) {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("unsupported language %q (available: %s)", o.Lang, languageCodes()))
		}
		cfg.Language = lang
	}
	if o.Interval != 0 {
		if o.Interval < config.MinInterval || o.Interval > config.MaxInterval {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("interval %v out of range [%v, %v]", o.Interval, config.MinInterval, config.MaxInterval))
		}
		cfg.Interval = o.Interval
		cfg.IntervalMS = 0
	}

	style := icons.StyleUnicode
	if cfg.ASCIIIcons() {
		style = icons.StyleASCII
	}
	icons.Init(string(style))

	if err := logging.Configure(o.logLevel(cfg), errOut); err != nil {
		return WrapExitError(ExitCommandError, "configure logging", err)
	}

	o.Config = cfg
	o.Printer = i18n.NewPrinter(cfg.GetLanguage())
	return nil
}

// logLevel is debug with --debug, else the configured level.
func (o *RootOptions) logLevel(cfg *config.Config) string {
	if o.Debug {
		return logging.LevelDebug
	}
	if cfg == nil {
		return logging.LevelWarn
	}
	return cfg.GetLogConfig().Level
}

func (o *RootOptions) rand() *rand.Rand {
	if o.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		o.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return o.Rand
}

func languageCodes() string {
	langs := i18n.Default().Languages()
	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = l.Code
	}
	return strings.Join(codes, ", ")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
