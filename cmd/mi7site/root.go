package main

import (
	"github.com/spf13/cobra"

	"github.com/gx1727/mi7site/internal/route"
)

type rootFlags struct {
	configPath      string
	lang            string
	verbose         bool
	logFile         string
	simulateFailure bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mi7site",
		Short:         "Browse the mi7soft-daemon site in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand opens the home page
			return runBrowse(cmd, flags, route.Home)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "Initial language (en or zh)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVar(&flags.simulateFailure, "simulate-failure", false, "Make every contact form submission fail")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
