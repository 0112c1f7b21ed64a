package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workhours",
		Short: "Work hours tracker: clock sessions, earnings reports and a calendar feed",
		Long: `workhours records worked hours per owner, computes earnings from hourly rates
and publishes the logs as a subscribable iCalendar feed.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newExportCmd(),
		newTokenCmd(),
		newWorkerCmd(),
	)

	return rootCmd
}
