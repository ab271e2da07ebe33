package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tod/foundation/core/log"
	"github.com/msto63/tod/foundation/utils/timex"
)

type rangeFlags struct {
	unit            string
	step            int
	excludeExtremes bool
	pretty          bool
	short           bool
}

func newRangeCommand(opts *options) *cobra.Command {
	flags := &rangeFlags{}

	cmd := &cobra.Command{
		Use:   "range [start] [end]",
		Short: "List the times between two bounds",
		Long: `Lists the times from start to end, one unit apart, or every --step units.

Bounds, unit, step and extremes default to the [range] section of the
config file, which in turn defaults to the whole day by hours.`,
		Example: `  tod range 08:00 12:00
  tod range 09:00 17:00 --unit minutes --step 30
  tod range --unit seconds 00:00 00:01 --exclude-extremes`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := opts.cfg.Range
			start, end := rc.StartTime(), rc.EndTime()

			var err error
			if len(args) > 0 {
				if start, err = timex.Parse(args[0]); err != nil {
					return opts.fail(err)
				}
			}
			if len(args) > 1 {
				if end, err = timex.Parse(args[1]); err != nil {
					return opts.fail(err)
				}
			}

			step := rc.Step
			if cmd.Flags().Changed("step") {
				step = flags.step
				rc.Step = step
			}
			unit := rc.StepUnit()
			if cmd.Flags().Changed("unit") {
				if unit, err = timex.ParseUnit(flags.unit); err != nil {
					return opts.fail(err)
				}
			}
			includeExtremes := rc.Extremes()
			if cmd.Flags().Changed("exclude-extremes") {
				includeExtremes = !flags.excludeExtremes
			}

			timer := opts.logger.StartTimer("range").
				WithField("unit", unit.String()).
				WithField("step", step)

			var ts []timex.TimeOfDay
			if step == 1 {
				ts, err = timex.BuildArray(start, end, unit, includeExtremes)
			} else {
				ts, err = timex.BuildArrayBySteps(start, end, step, unit, includeExtremes)
			}
			if err != nil {
				timer.StopWithError(err)
				return opts.fail(err)
			}
			timer.WithField("count", len(ts)).Stop()

			pretty := opts.cfg.Output.Pretty || flags.pretty
			title := fmt.Sprintf("%s - %s every %d %s", start, end, step, unit)
			printTimes(cmd.OutOrStdout(), ts, opts.timeFormat(flags.short), pretty, title)

			opts.logger.Info("range built", log.Fields{
				"start": start.String(),
				"end":   end.String(),
				"count": len(ts),
			})
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.unit, "unit", "u", "", "step unit: hours, minutes, seconds")
	cmd.Flags().IntVar(&flags.step, "step", 1, "keep every n-th value")
	cmd.Flags().BoolVar(&flags.excludeExtremes, "exclude-extremes", false, "omit start and end")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "styled grid output")
	cmd.Flags().BoolVarP(&flags.short, "short", "s", false, "print HH:MM")
	return cmd
}
