package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scoutops/scoutmetrics/internal/aggregator"
	"github.com/scoutops/scoutmetrics/internal/config"
	"github.com/scoutops/scoutmetrics/internal/csvio"
	"github.com/scoutops/scoutmetrics/internal/model"
	"github.com/scoutops/scoutmetrics/internal/normalize"
	"github.com/scoutops/scoutmetrics/internal/report"
	"github.com/scoutops/scoutmetrics/internal/storage"
)

var (
	inputDir  string
	outputDir string
	noStore   bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process scouting CSV files and write score artifacts",
	Args:  cobra.NoArgs,
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&inputDir, "input", ".", "directory holding scouting CSV exports")
	processCmd.Flags().StringVar(&outputDir, "output", "reports", "directory for generated artifacts")
	processCmd.Flags().BoolVar(&noStore, "no-store", false, "skip archiving the run to the database")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	raws, files, err := csvio.LoadDir(inputDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Processed %d record(s) from %d file(s) in %s\n",
		len(raws), len(files), inputDir)

	records := normalize.Records(raws, cfg.Scoring)
	teams := aggregator.Aggregate(records, cfg.Scoring)

	summaryPath, detailPath, err := csvio.WriteArtifacts(outputDir, teams, records, cfg.Output)
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	if !noStore {
		if err := storeRun(files, records, teams); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
	}

	report.PrintTeamTable(os.Stdout, teams)
	fmt.Fprintf(os.Stderr, "Saved summary: %s\n", summaryPath)
	fmt.Fprintf(os.Stderr, "Saved detailed records: %s\n", detailPath)
	return nil
}

func storeRun(files []string, records []model.Record, teams []model.TeamSummary) error {
	runID, err := runFingerprint(files)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	exists, err := db.RunExists(runID)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(os.Stderr, "Run %s already archived.\n", runID[:12])
		return nil
	}

	run := model.RunSummary{
		RunID:       runID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		InputDir:    inputDir,
		FileCount:   len(files),
		RecordCount: len(records),
		TeamCount:   len(teams),
	}
	if err := db.InsertRun(run); err != nil {
		return err
	}
	if err := db.InsertTeamSummaries(runID, teams); err != nil {
		return err
	}
	if err := db.InsertMatchRecords(runID, records); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Archived run %s\n", runID[:12])
	return nil
}

// runFingerprint hashes the input file contents in discovery order, so the
// same inputs always map to the same run id.
func runFingerprint(files []string) (string, error) {
	h := sha256.New()
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("hash %s: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("hash %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
