package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/romdo/go-debounced"
)

type rootFlags struct {
	verbose bool
	noColor bool
	conf    demoConfig
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "debounce-demo",
		Short: "Simulate button clicks through a debouncer",
		Long: `Simulate a burst of button clicks on a manual clock, and log which
clicks were executed and which were debounced.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	pf.IntVarP(&f.conf.clicks, "clicks", "n", 10, "number of clicks")
	pf.DurationVarP(
		&f.conf.interval, "interval", "i", 100*time.Millisecond,
		"time between clicks",
	)

	cmd.AddCommand(newActionCmd(f), newIdentityCmd(f))

	return cmd
}

func newActionCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Debounce clicks with a timeout since the last execution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f, runAction)
		},
	}

	cmd.Flags().DurationVarP(
		&f.conf.timeout, "timeout", "t", debounce.DefaultTimeout,
		"minimum time between executions",
	)

	return cmd
}

func newIdentityCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Debounce clicks until work started by a click is released",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f, runIdentity)
		},
	}

	fl := cmd.Flags()
	fl.DurationVarP(
		&f.conf.work, "work", "w", 250*time.Millisecond,
		"time until work started by a click is done",
	)
	fl.DurationVarP(
		&f.conf.releaseIn, "release-in", "r", 0,
		"extra delay after work is done before the next click is accepted",
	)

	return cmd
}

func run(
	cmd *cobra.Command,
	f *rootFlags,
	demo func(zerolog.Logger, demoConfig) (summary, error),
) error {
	logger := setupLogging(cmd.ErrOrStderr(), f.verbose, f.noColor)

	sum, err := demo(logger, f.conf)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)

	return err
}
