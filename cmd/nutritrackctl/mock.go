package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"nutritrack/services"

	"github.com/spf13/cobra"
)

var (
	mockUserID uint
	mockDays   int
	mockOutput string
	mockSeed   int64
)

// mock fabricates a report without a database; handy for front-end
// work against a realistic document.
var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Generate a sample nutrition report without a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := mockSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		report := services.NewSampleDataGenerator(seed).GenerateUserData(mockUserID, mockDays)

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if mockOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		if err := os.WriteFile(mockOutput, out, 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Data saved to %s\n", mockOutput)
		return nil
	},
}

func init() {
	mockCmd.Flags().UintVar(&mockUserID, "user", 1, "User ID to label the data with")
	mockCmd.Flags().IntVar(&mockDays, "days", 30, "Number of days of data to generate")
	mockCmd.Flags().StringVar(&mockOutput, "output", "", "Output file (JSON); stdout when empty")
	mockCmd.Flags().Int64Var(&mockSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(mockCmd)
}
