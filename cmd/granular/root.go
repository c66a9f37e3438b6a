package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	format     string
	output     string
	logLevel   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "granular",
		Short:         "Granular picks dates and times in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVarP(&flags.format, "format", "f", "text", "Output format: text, json, yaml or ics")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDateCmd(flags))
	cmd.AddCommand(newTimeCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
