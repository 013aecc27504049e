package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scoutops/scoutmetrics/internal/report"
)

var rankCmd = &cobra.Command{
	Use:   "rank [summary.csv]",
	Short: "Print the team ranking from a score summary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	path := filepath.Join("reports", "team_score_summary.csv")
	if len(args) == 1 {
		path = args[0]
	}

	s, err := report.LoadSummary(path)
	if err != nil {
		return fmt.Errorf("load summary: %w", err)
	}
	return report.PrintRanking(os.Stdout, os.Stderr, s)
}
