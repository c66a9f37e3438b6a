package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/config"
	"github.com/alexisbeaulieu97/granular/internal/export"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/tui/timepicker"
	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

type timeOptions struct {
	initial   string
	use24Hour bool
	step      int
}

func newTimeCmd(flags *rootFlags) *cobra.Command {
	opts := timeOptions{}

	cmd := &cobra.Command{
		Use:   "time",
		Short: "Pick a time of day",
		Long:  `Open the time picker and print the confirmed time. Cancelling exits with an error.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, "command.time")
			if err != nil {
				return err
			}
			defer app.Close()

			return runTime(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.initial, "initial", "", "Initial time (HH:MM or 3:04 PM), defaults to now")
	cmd.Flags().BoolVar(&opts.use24Hour, "24h", false, "Use a 24-hour clock")
	cmd.Flags().IntVar(&opts.step, "step", 0, "Minute step; must divide 60")

	return cmd
}

func runTime(cmd *cobra.Command, app *appContext, opts timeOptions) error {
	if app.format == export.FormatICS {
		return granularerrors.NewValidationError("format", "ics output is only available for dates", nil)
	}

	cfg := app.cfg
	if opts.initial != "" {
		t, err := calendar.ParseTimeOfDay(opts.initial)
		if err != nil {
			return err
		}
		cfg.Time.Initial = &t
	}
	if cmd.Flags().Changed("24h") {
		cfg.Time.Use24Hour = opts.use24Hour
	}
	if opts.step != 0 {
		cfg.Time.MinuteStep = opts.step
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	if err := app.requireTerminal("time"); err != nil {
		return err
	}

	app.log.Info("opening time picker")
	res, err := runPicker(cmd.Context(), timepicker.New(picker.TimeOptions{
		Initial:    cfg.Time.Initial,
		Use24Hour:  cfg.Time.Use24Hour,
		MinuteStep: cfg.Time.MinuteStep,
		Clock:      clock,
		Logger:     app.log,
	}, cfg.Theme))
	if err != nil {
		app.log.Error(err, "time picker failed")
		return err
	}
	if err := res.Err(); err != nil {
		app.log.Info("time picker cancelled")
		return err
	}

	return writeResult(cmd, app, export.TimeSelection(res.Time, cfg.Time.Use24Hour))
}
