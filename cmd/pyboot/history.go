package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pyboot/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent bootstrap runs from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := journal.Open(cfg.JournalDir)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			fmt.Printf("%s  %-15s  %-8s  %3d reqs  %6dms  %s\n",
				r.StartedAt.Format(time.RFC3339), r.Outcome, r.Interpreter,
				r.Requirements, r.DurationMS, r.ManifestPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}
