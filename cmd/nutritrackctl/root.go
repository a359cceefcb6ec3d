package main

import (
	"fmt"
	"os"

	"nutritrack/config"
	"nutritrack/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nutritrackctl",
	Short: "Operational tooling for the nutritrack backend",
	Long:  "nutritrackctl seeds test data and exports nutrition report JSON against the configured database.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withStore opens the configured database, migrates it, and hands the
// store to fn.
func withStore(fn func(st *store.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := config.Open(cfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	return fn(store.New(db))
}
