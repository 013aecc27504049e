package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scoutops/scoutmetrics/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived processing runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No runs archived yet. Run 'scoutmetrics process' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-24s  %5s  %7s  %5s\n",
		"RUN", "CREATED", "INPUT", "FILES", "RECORDS", "TEAMS")
	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-24s  %5s  %7s  %5s\n",
		"──────────────", "────────────────────", "────────────────────────", "─────", "───────", "─────")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-24s  %5d  %7d  %5d\n",
			r.RunID[:12], r.CreatedAt, r.InputDir, r.FileCount, r.RecordCount, r.TeamCount)
	}
	return nil
}
