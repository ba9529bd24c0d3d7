package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/llehouerou/stepviz/internal/app"
	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/lesson"
)

// NewPlayCommand creates the play command: the input form, optionally on a
// given visualization.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play [prefix|merge|divisors|deck]",
		Short: "Open the interactive visualizer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ao := app.Options{}
			if len(args) == 1 {
				kind, err := lesson.ParseKind(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "play", err)
				}
				ao.Kind = kind
			}
			return rootOpts.RunUI(rootOpts, ao)
		},
	}
}

// NewPrefixCommand creates the prefix command.
func NewPrefixCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags InputFlags
		query string
		dump  bool
	)

	cmd := &cobra.Command{
		Use:   "prefix [values...]",
		Short: "Visualize a prefix-sum computation",
		Long: `Visualize the prefix-sum array S of a list A, where S[0] = 0 and
S[i] = S[i-1] + A[i].

Examples:
  stepviz prefix 3 1 4 1 5
  stepviz prefix 1,2,3,4 --query 2:3
  stepviz prefix --random 8 --dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rootOpts.request(lesson.KindPrefix, args, flags)
			if err != nil {
				return rootOpts.inputError(err)
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}

			switch {
			case query != "":
				left, right, err := parseRange(query)
				if err != nil {
					return NewExitError(ExitCommandError, errmsg.Format(errmsg.OpRangeQuery, err))
				}
				return rootOpts.printQuery(cmd, s, left, right)
			case dump:
				return WriteTrace(cmd.OutOrStdout(), s.Trace, FormatText)
			default:
				return rootOpts.play(s)
			}
		},
	}

	flags.bindRandom(cmd.Flags())
	cmd.Flags().StringVar(&query, "query", "", "print the sum of A[L..R] (1-based), e.g. 2:5")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the steps instead of opening the player")

	return cmd
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	var flags InputFlags

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Visualize the two-pointer merge of two sorted lists",
		Long: `Visualize merging two sorted lists A and B into C with one pointer
per list. On equal values the element of B is taken first.

Examples:
  stepviz merge --a 1,3,5 --b 2,4
  stepviz merge --a 5,1,3 --b 4,2 --sort
  stepviz merge --random 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rootOpts.request(lesson.KindMerge, args, flags)
			if err != nil {
				return rootOpts.inputError(err)
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}
			return rootOpts.play(s)
		},
	}

	flags.bindMerge(cmd.Flags())
	flags.bindRandom(cmd.Flags())

	return cmd
}

// NewDivisorsCommand creates the divisors command.
func NewDivisorsCommand(rootOpts *RootOptions) *cobra.Command {
	var flags InputFlags

	cmd := &cobra.Command{
		Use:   "divisors [n]",
		Short: "Visualize the divisor search and the first multiples of n",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rootOpts.request(lesson.KindDivisors, args, flags)
			if err != nil {
				return rootOpts.inputError(err)
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}
			return rootOpts.play(s)
		},
	}

	flags.bindDivisors(cmd.Flags())

	return cmd
}

// NewDeckCommand creates the deck command.
func NewDeckCommand(rootOpts *RootOptions) *cobra.Command {
	var flags InputFlags

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Play the timed number theory slides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rootOpts.request(lesson.KindDeck, args, flags)
			if err != nil {
				return rootOpts.inputError(err)
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}
			return rootOpts.play(s)
		},
	}

	flags.bindDeck(cmd.Flags())

	return cmd
}

// play opens the player on s and starts it.
func (o *RootOptions) play(s *lesson.Session) error {
	slog.Debug("cli open", "kind", string(s.Request.Kind), "steps", s.Trace.Len())
	return o.RunUI(o, app.Options{Kind: s.Request.Kind, Session: s, Autoplay: true})
}

func (o *RootOptions) printQuery(cmd *cobra.Command, s *lesson.Session, left, right int) error {
	q := s.Prefix.QueryWith(o.Printer, left, right)
	if !q.Valid {
		return NewExitError(ExitCommandError, q.Message)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, o.Printer.Sprintf("query.result", left, right, i18n.Num(q.RangeSum)))
	fmt.Fprintln(out, q.Formula)
	return nil
}
