package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/llehouerou/stepviz/internal/errmsg"
	"github.com/llehouerou/stepviz/internal/lesson"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flags  InputFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "dump <prefix|merge|divisors|deck> [args...]",
		Short: "Print every step of a trace without the player",
		Long: `Record a trace and print its steps, explanations and state.

Examples:
  stepviz dump prefix 1 2 3 4
  stepviz dump merge --a 1,3,5 --b 2,4 --format json
  stepviz dump divisors 36 --multiples 3 --format yaml
  stepviz dump deck --lang vi`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lesson.ParseKind(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "dump", err)
			}
			req, err := rootOpts.request(kind, args[1:], flags)
			if err != nil {
				return rootOpts.inputError(err)
			}
			s, err := rootOpts.session(req)
			if err != nil {
				return err
			}

			slog.Debug("dump trace", "kind", string(kind), "steps", s.Trace.Len(), "format", format)
			if err := WriteTrace(cmd.OutOrStdout(), s.Trace, format); err != nil {
				return WrapExitError(ExitFailure, errmsg.Format(errmsg.OpDumpTrace, err), nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatText, "output format (text|json|yaml)")
	flags.bindMerge(cmd.Flags())
	flags.bindDivisors(cmd.Flags())
	flags.bindDeck(cmd.Flags())

	return cmd
}
