package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/input"
	"github.com/llehouerou/stepviz/internal/lesson"
)

// NewQueryCommand creates the query command: a prefix-sum range query
// answered in constant time after one pass.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	var values string

	cmd := &cobra.Command{
		Use:   "query L R",
		Short: "Print the sum of A[L..R] using prefix sums",
		Long: `Print the sum of A[L..R] (1-based, inclusive) and the formula
S[R] - S[L-1] that produces it.

Examples:
  stepviz query --values 1,2,3,4 2 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := strconv.Atoi(args[0])
			if err != nil {
				return NewExitError(ExitCommandError, errmsg.FormatWith(errmsg.OpParseInput, "L", err))
			}
			right, err := strconv.Atoi(args[1])
			if err != nil {
				return NewExitError(ExitCommandError, errmsg.FormatWith(errmsg.OpParseInput, "R", err))
			}

			req := lesson.FromConfig(rootOpts.Config, lesson.KindPrefix)
			if values != "" {
				if req.Values, err = input.Parse("A", values); err != nil {
					return rootOpts.inputError(err)
				}
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}
			return rootOpts.printQuery(cmd, s, left, right)
		},
	}

	cmd.Flags().StringVar(&values, "values", "", "list A (default from config)")

	return cmd
}

// parseRange reads "L:R".
func parseRange(s string) (left, right int, err error) {
	l, r, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: want L:R", s)
	}
	if left, err = strconv.Atoi(strings.TrimSpace(l)); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	if right, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, fmt.Errorf("range %q: %w", s, err)
	}
	return left, right, nil
}
