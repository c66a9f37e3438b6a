package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/config"
	"github.com/alexisbeaulieu97/granular/internal/export"
	"github.com/alexisbeaulieu97/granular/internal/picker"
	"github.com/alexisbeaulieu97/granular/internal/tui/datepicker"
)

type dateOptions struct {
	initial string
	minYear int
	maxYear int
}

func newDateCmd(flags *rootFlags) *cobra.Command {
	opts := dateOptions{}

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Pick a calendar date",
		Long:  `Open the date picker and print the confirmed date. Cancelling exits with an error.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, "command.date")
			if err != nil {
				return err
			}
			defer app.Close()

			return runDate(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.initial, "initial", "", "Initial date (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&opts.minYear, "min-year", 0, "Earliest selectable year")
	cmd.Flags().IntVar(&opts.maxYear, "max-year", 0, "Latest selectable year")

	return cmd
}

func runDate(cmd *cobra.Command, app *appContext, opts dateOptions) error {
	cfg := app.cfg
	if opts.initial != "" {
		d, err := calendar.ParseDate(opts.initial)
		if err != nil {
			return err
		}
		cfg.Date.Initial = &d
	}
	if opts.minYear != 0 {
		cfg.Date.MinYear = opts.minYear
	}
	if opts.maxYear != 0 {
		cfg.Date.MaxYear = opts.maxYear
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	if err := app.requireTerminal("date"); err != nil {
		return err
	}

	pickerOpts := picker.DateOptions{
		MinYear: cfg.Date.MinYear,
		MaxYear: cfg.Date.MaxYear,
		Clock:   clock,
		Logger:  app.log,
	}
	if cfg.Date.Initial != nil {
		pickerOpts.Initial = *cfg.Date.Initial
	}

	app.log.Info("opening date picker")
	res, err := runPicker(cmd.Context(), datepicker.New(pickerOpts, cfg.Theme))
	if err != nil {
		app.log.Error(err, "date picker failed")
		return err
	}
	if err := res.Err(); err != nil {
		app.log.Info("date picker cancelled")
		return err
	}

	return writeResult(cmd, app, export.DateSelection(res.Date))
}
