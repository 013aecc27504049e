package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scoutops/scoutmetrics/internal/report"
	"github.com/scoutops/scoutmetrics/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <run-prefix>",
	Short: "Show the team summary of an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	run, err := db.GetRunByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "No run found with id prefix %q\n", prefix)
		return nil
	}

	teams, err := db.GetTeamSummaries(run.RunID)
	if err != nil {
		return fmt.Errorf("get team summaries: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Run %s  created %s  input %s  (%d files, %d records, %d teams)\n",
		run.RunID[:12], run.CreatedAt, run.InputDir,
		run.FileCount, run.RecordCount, run.TeamCount)
	report.PrintTeamTable(os.Stdout, teams)
	return nil
}
