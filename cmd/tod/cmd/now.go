package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tod/foundation/utils/timex"
)

func newNowCommand(opts *options) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time of day",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), timex.Now(opts.clock).Format(opts.timeFormat(short)))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print HH:MM")
	return cmd
}
