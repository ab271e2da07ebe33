package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	coreerr "github.com/msto63/tod/foundation/core/error"
	"github.com/msto63/tod/foundation/utils/timex"
)

type stepFlags struct {
	unit  string
	count int
	short bool
}

func newNextCommand(opts *options) *cobra.Command {
	return newStepCommand(opts, "next", "Step forward from a time", "+1 day", timex.TimeOfDay.Next)
}

func newPrevCommand(opts *options) *cobra.Command {
	return newStepCommand(opts, "prev", "Step backward from a time", "-1 day", timex.TimeOfDay.Previous)
}

func newStepCommand(opts *options, name, short, dayMark string,
	step func(timex.TimeOfDay, timex.Unit) (timex.TimeOfDay, bool)) *cobra.Command {
	flags := &stepFlags{}

	cmd := &cobra.Command{
		Use:   name + " <time>",
		Short: short,
		Long: fmt.Sprintf(`Prints the value reached after each of --count steps of one --unit.

Steps that cross midnight are marked with (%s).`, dayMark),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timex.Parse(args[0])
			if err != nil {
				return opts.fail(err)
			}
			unit, err := timex.ParseUnit(flags.unit)
			if err != nil {
				return opts.fail(err)
			}
			if flags.count < 1 {
				return opts.fail(coreerr.Newf("--count must be at least 1, got %d", flags.count).
					WithCode(coreerr.CodeInvalidInput).
					WithOperation("tod." + name))
			}

			format := opts.timeFormat(flags.short)
			for i := 0; i < flags.count; i++ {
				var crossed bool
				t, crossed = step(t, unit)
				if crossed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t.Format(format), dayMark)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.unit, "unit", "u", timex.DefaultStepUnit.String(), "step unit: hours, minutes, seconds")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 1, "number of steps")
	cmd.Flags().BoolVarP(&flags.short, "short", "s", false, "print HH:MM")
	return cmd
}
