package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tod/foundation/core/log"
	"github.com/msto63/tod/foundation/utils/timex"
)

func newParseCommand(opts *options) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "parse <time>...",
		Short: "Validate times and print their canonical form",
		Long: `Parses each argument as HH:MM or HH:MM:SS and prints it in canonical form.

Stops at the first invalid value and exits with status 2.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := opts.timeFormat(short)
			for _, arg := range args {
				t, err := timex.Parse(arg)
				if err != nil {
					return opts.fail(err)
				}
				opts.logger.Debug("parsed", log.Fields{"input": arg, "ms": t.Milliseconds()})
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(format))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print HH:MM")
	return cmd
}

// timeFormat returns the output format name, short when forced by a flag.
func (o *options) timeFormat(short bool) string {
	if short {
		return timex.FormatShort
	}
	return o.cfg.Output.Format
}
