package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/granular/internal/tui/host"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the demo app with both pickers",
		Long:  `Launch a small app whose buttons open the date and time pickers in modals.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, "command.demo")
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.requireTerminal("demo"); err != nil {
				return err
			}

			app.log.Info("launching demo")
			final, err := runDemo(cmd.Context(), host.NewDemo(host.DemoOptions{
				Theme:      app.cfg.Theme,
				MinYear:    app.cfg.Date.MinYear,
				MaxYear:    app.cfg.Date.MaxYear,
				Use24Hour:  app.cfg.Time.Use24Hour,
				MinuteStep: app.cfg.Time.MinuteStep,
				Clock:      clock,
				Logger:     app.log,
			}))
			if err != nil {
				app.log.Error(err, "demo failed")
				return err
			}

			app.log.WithFields(map[string]any{
				"date": final.Date().String(),
				"time": final.Time().String(),
			}).Info("demo closed")
			return nil
		},
	}

	return cmd
}
