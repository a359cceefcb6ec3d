package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"nutritrack/services"
	"nutritrack/store"

	"github.com/spf13/cobra"
)

var (
	exportUserID uint
	exportDays   int
	exportOutput string
	listUsers    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's nutrition report as JSON (for graphing)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			ctx := context.Background()

			if listUsers {
				users, err := st.ListUsers(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d users:\n", len(users))
				for _, u := range users {
					fmt.Fprintf(cmd.OutOrStdout(), "  ID: %d, Username: %s\n", u.ID, u.Username)
				}
				return nil
			}

			end := time.Now().UTC()
			start := end.AddDate(0, 0, -exportDays)

			svc := services.NewNutritionService(st)
			report, err := svc.UserNutritionReport(ctx, exportUserID, &start, &end)
			if err != nil {
				return err
			}
			if report == nil {
				return fmt.Errorf("user with ID %d not found", exportUserID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Retrieved data for user ID: %d (%s), %d days of data\n",
				report.UserID, report.Username, len(report.DailyData))

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			if exportOutput == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			if err := os.WriteFile(exportOutput, out, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Data saved to %s\n", exportOutput)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().UintVar(&exportUserID, "user", 1, "User ID to export")
	exportCmd.Flags().IntVar(&exportDays, "days", 30, "Number of days of data to retrieve")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file (JSON); stdout when empty")
	exportCmd.Flags().BoolVar(&listUsers, "list-users", false, "List all users in the database")
	rootCmd.AddCommand(exportCmd)
}
