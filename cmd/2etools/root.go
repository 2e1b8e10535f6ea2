package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "2etools",
		Short: "Scrape Pathfinder 2e rule pages into 2eTools collections",
		Long: `2etools downloads Pathfinder 2e detail pages (creatures, traits, ancestries),
extracts structured records from them and replaces the matching collection
in the local 2eTools database.

Fetched pages are cached on disk, so later runs can rebuild a collection
without touching the network (see "2etools run --cache-only").`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewDBCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
