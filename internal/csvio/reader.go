// Package csvio reads scouting CSV exports and writes the two output
// artifacts. Discovery order is lexicographic by filename so that every
// downstream artifact is reproducible.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scoutops/scoutmetrics/internal/model"
)

// Column names in the scouting export header.
const (
	colMatchNumber = "Match Number"
	colTeamNumber  = "Team Number"
	colAutoNear    = "Auto Scored At Near"
	colAutoFar     = "Auto Scored At Far"
	colTeleNear    = "Tele-Op Scored At Near"
	colTeleFar     = "Tele-Op Scored At Far"
	colAutoCycles  = "Auto Cycles"
	colTeleCycles  = "Tele-Op Cycles"
	colTotalCycles = "Total Cycles"
	colEndGame     = "End Game"
)

var requiredColumns = []string{
	colMatchNumber, colTeamNumber,
	colAutoNear, colAutoFar, colTeleNear, colTeleFar,
	colEndGame,
}

// Discover returns the CSV files directly under dir, sorted by filename.
// No matching files is an error: a run must fail before any processing
// rather than silently produce empty artifacts.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}
	return matches, nil
}

// LoadDir reads every discovered file and concatenates the rows in
// file-then-row order. Returns the rows and the files they came from.
func LoadDir(dir string) ([]model.RawRecord, []string, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, nil, err
	}

	var all []model.RawRecord
	for _, f := range files {
		rows, err := ReadFile(f)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, rows...)
	}
	return all, files, nil
}

// ReadFile reads one scouting export. The header row is mapped by column
// name, so column order does not matter; the optional cycle columns read as
// empty cells when absent.
func ReadFile(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows happen; missing cells read as empty

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: missing header row", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", filepath.Base(path), err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", filepath.Base(path), col)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	base := filepath.Base(path)
	var out []model.RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", base, err)
		}
		out = append(out, model.RawRecord{
			SourceFile:  base,
			MatchNumber: cell(row, colMatchNumber),
			TeamNumber:  cell(row, colTeamNumber),
			AutoNear:    cell(row, colAutoNear),
			AutoFar:     cell(row, colAutoFar),
			TeleNear:    cell(row, colTeleNear),
			TeleFar:     cell(row, colTeleFar),
			AutoCycles:  cell(row, colAutoCycles),
			TeleCycles:  cell(row, colTeleCycles),
			TotalCycles: cell(row, colTotalCycles),
			EndGame:     cell(row, colEndGame),
		})
	}
	return out, nil
}
