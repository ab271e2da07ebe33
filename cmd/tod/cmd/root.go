package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	coreerr "github.com/msto63/tod/foundation/core/error"
	"github.com/msto63/tod/foundation/core/config"
	"github.com/msto63/tod/foundation/core/log"
	"github.com/msto63/tod/foundation/utils/timex"
)

// options holds global flags and the state resolved from them before a
// subcommand runs.
type options struct {
	cfgFile   string
	verbose   bool
	logFormat string

	clock  timex.Clock
	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the complete tod command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{clock: timex.RealClock{}})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tod",
		Short: "tod - time of day toolkit",
		Long: `tod parses, steps and enumerates wall-clock times of day.

Commands:
  parse  - validate and normalize times
  next   - step forward by hours, minutes or seconds
  prev   - step backward by hours, minutes or seconds
  range  - list the times between two bounds
  now    - print the current time of day`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $TOD_CONFIG or ./tod.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text, json, console, logfmt")

	rootCmd.AddCommand(
		newParseCommand(opts),
		newNextCommand(opts),
		newPrevCommand(opts),
		newRangeCommand(opts),
		newNowCommand(opts),
		newVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		return exitCode(err)
	}
	return 0
}

func (o *options) setup(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(o.cfg.General.LogLevel)
	if err != nil {
		return err
	}
	if o.verbose {
		level = log.LevelDebug
	}

	formatName := o.cfg.General.LogFormat
	if o.logFormat != "" {
		formatName = o.logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return coreerr.Wrap(err, "invalid --log-format").
			WithCode(coreerr.CodeInvalidInput).
			WithOperation("tod.setup")
	}

	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "tod",
	}).WithCorrelationID(uuid.New().String())

	o.logger.Debug("configuration loaded", log.Fields{
		"command": cmd.Name(),
		"config":  o.cfg.FilePath(),
	})
	return nil
}

// fail logs err and returns it so RunE can propagate it.
func (o *options) fail(err error) error {
	if o.logger != nil {
		o.logger.LogError(err)
	}
	return err
}

func exitCode(err error) int {
	return coreerr.GetCode(err).ExitCode()
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
