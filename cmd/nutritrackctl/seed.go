package main

import (
	"context"
	"fmt"

	"nutritrack/services"
	"nutritrack/store"

	"github.com/spf13/cobra"
)

var (
	seedDays  int
	seedUsers int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with generated test data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Generating %d days of test data for %d users...\n", seedDays, seedUsers)

			data, err := services.GenerateTestData(context.Background(), st, seedUsers, seedDays)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %d users\n", len(data.Users))
			for _, u := range data.Users {
				fmt.Fprintf(cmd.OutOrStdout(), "  ID: %d, Username: %s\n", u.ID, u.Username)
			}
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 30, "Number of days of data to generate")
	seedCmd.Flags().IntVar(&seedUsers, "users", 3, "Number of users to create")
	rootCmd.AddCommand(seedCmd)
}
