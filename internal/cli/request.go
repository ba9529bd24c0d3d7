package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/llehouerou/stepviz/internal/divisors"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/lesson"
)

// InputFlags holds the per-visualization input flags. Unset fields keep
// the configured defaults.
type InputFlags struct {
	A, B      string
	Sort      bool
	Strict    bool
	Random    int
	Multiples int
	Durations []time.Duration
}

func (f *InputFlags) bindMerge(fs *pflag.FlagSet) {
	fs.StringVar(&f.A, "a", "", "list A, e.g. 1,3,5")
	fs.StringVar(&f.B, "b", "", "list B, e.g. 2,4")
	fs.BoolVar(&f.Sort, "sort", false, "sort both lists before merging")
	fs.BoolVar(&f.Strict, "strict", false, "reject unsorted lists")
}

func (f *InputFlags) bindRandom(fs *pflag.FlagSet) {
	fs.IntVar(&f.Random, "random", 0, "use N random values instead of the given ones")
}

func (f *InputFlags) bindDivisors(fs *pflag.FlagSet) {
	fs.IntVar(&f.Multiples, "multiples", -1, "number of multiples to list (default from config)")
}

func (f *InputFlags) bindDeck(fs *pflag.FlagSet) {
	fs.DurationSliceVar(&f.Durations, "durations", nil, "per-slide durations, e.g. 8s,10s")
}

// request assembles the inputs of kind from the config, positional args
// and flags. Positional args are the values for prefix and n for divisors.
func (o *RootOptions) request(kind lesson.Kind, args []string, f InputFlags) (lesson.Request, error) {
	req := lesson.FromConfig(o.Config, kind)

	switch kind {
	case lesson.KindPrefix:
		switch {
		case f.Random > 0:
			pc := o.Config.GetPrefixConfig()
			req.Values = input.Random(o.rand(), f.Random, pc.RandomMin, pc.RandomMax)
		case len(args) > 0:
			values, err := input.Parse("A", strings.Join(args, ","))
			if err != nil {
				return req, err
			}
			req.Values = values
		}

	case lesson.KindMerge:
		if len(args) > 0 {
			return req, fmt.Errorf("merge takes --a and --b, not arguments")
		}
		mc := o.Config.GetMergeConfig()
		if f.Random > 0 {
			req.A = input.Sorted(input.Random(o.rand(), f.Random, mc.RandomMin, mc.RandomMax))
			req.B = input.Sorted(input.Random(o.rand(), f.Random, mc.RandomMin, mc.RandomMax))
		}
		if f.A != "" {
			values, err := input.Parse("A", f.A)
			if err != nil {
				return req, err
			}
			req.A = values
		}
		if f.B != "" {
			values, err := input.Parse("B", f.B)
			if err != nil {
				return req, err
			}
			req.B = values
		}
		if f.Sort {
			req.A, req.B = input.Sorted(req.A), input.Sorted(req.B)
		}
		req.Strict = req.Strict || f.Strict

	case lesson.KindDivisors:
		if len(args) > 1 {
			return req, fmt.Errorf("divisors takes one number, got %d", len(args))
		}
		if len(args) == 1 {
			n, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return req, fmt.Errorf("n %q: %w", args[0], divisors.ErrNotPositive)
			}
			req.N = n
		}
		if f.Multiples >= 0 {
			req.Multiples = f.Multiples
		}

	case lesson.KindDeck:
		if len(f.Durations) > 0 {
			req.Durations = f.Durations
		}
	}
	return req, lesson.Validate(req)
}

// session builds the trace of req. Input errors become localized command
// errors.
func (o *RootOptions) session(req lesson.Request) (*lesson.Session, error) {
	s, err := lesson.Build(o.Printer, req)
	if err != nil {
		return nil, o.inputError(err)
	}
	return s, nil
}

func (o *RootOptions) inputError(err error) error {
	return WrapExitError(ExitCommandError, lesson.Message(o.Printer, err), nil)
}
