package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// rankColumn is the required sort key of the ranking view.
const rankColumn = "total_score_avg"

// displayColumns is the ranking view's column selection, in display order.
// Columns present in the summary are shown; absent ones are warned about
// and omitted, so summaries from older exports still render.
var displayColumns = []string{
	"Team Number", "matches",
	"auto_near_avg", "auto_far_avg", "tele_near_avg", "tele_far_avg",
	"auto_cycles_avg", "tele_cycles_avg", "total_cycles_avg",
	"auto_hit_rate", "tele_hit_rate",
	"end_score_avg", "total_score_avg",
}

var displayNames = map[string]string{
	"Team Number":      "TEAM",
	"matches":          "PLAYED",
	"auto_near_avg":    "AUTO_NEAR",
	"auto_far_avg":     "AUTO_FAR",
	"tele_near_avg":    "TELE_NEAR",
	"tele_far_avg":     "TELE_FAR",
	"auto_cycles_avg":  "AUTO_CYC",
	"tele_cycles_avg":  "TELE_CYC",
	"total_cycles_avg": "TOTAL_CYC",
	"auto_hit_rate":    "AUTO_HIT",
	"tele_hit_rate":    "TELE_HIT",
	"end_score_avg":    "END_AVG",
	"total_score_avg":  "TOTAL_AVG",
}

// hit-rate columns render as percentages in the ranking view.
var percentColumns = map[string]bool{
	"auto_hit_rate": true,
	"tele_hit_rate": true,
}

// Summary is a loaded team summary artifact: its column names plus rows of
// raw cells, kept as strings so unknown columns pass through untouched.
type Summary struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of a named column.
func (s *Summary) Column(name string) (int, bool) {
	for i, c := range s.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// LoadSummary reads a team summary CSV. The total_score_avg column is
// required: the ranking view cannot order teams without it.
func LoadSummary(path string) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty summary file", filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read summary header: %w", err)
	}

	s := &Summary{Columns: make([]string, len(header))}
	for i, name := range header {
		s.Columns[i] = strings.TrimSpace(name)
	}
	if _, ok := s.Column(rankColumn); !ok {
		return nil, fmt.Errorf("%s: required column %q not found", filepath.Base(path), rankColumn)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read summary rows: %w", err)
		}
		s.Rows = append(s.Rows, row)
	}
	return s, nil
}

// Ranked returns the rows sorted descending by total_score_avg. Rows whose
// sort cell does not parse sort as zero rather than failing the view.
func (s *Summary) Ranked() [][]string {
	col, _ := s.Column(rankColumn)
	score := func(row []string) float64 {
		if col >= len(row) {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return 0
		}
		return v
	}

	ranked := make([][]string, len(s.Rows))
	copy(ranked, s.Rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked
}

// PrintRanking renders the ranking table: rows sorted descending by
// total_score_avg with a 1-based RANK column prepended. Missing optional
// display columns produce a warning on warnW and are omitted.
func PrintRanking(w, warnW io.Writer, s *Summary) error {
	var available, missing []string
	for _, c := range displayColumns {
		if _, ok := s.Column(c); ok {
			available = append(available, c)
		} else {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(warnW, "warn: summary is missing columns (older data format?): %s\n",
			strings.Join(missing, ", "))
	}

	table := newTable(w)
	header := make([]any, 0, len(available)+1)
	header = append(header, "RANK")
	for _, c := range available {
		header = append(header, displayNames[c])
	}
	table.Header(header...)

	for i, row := range s.Ranked() {
		cells := make([]any, 0, len(available)+1)
		cells = append(cells, strconv.Itoa(i+1))
		for _, c := range available {
			idx, _ := s.Column(c)
			cell := ""
			if idx < len(row) {
				cell = strings.TrimSpace(row[idx])
			}
			cells = append(cells, formatCell(c, cell))
		}
		table.Append(cells...)
	}
	table.Render()
	return nil
}

// formatCell pretty-prints numeric cells; anything unparseable passes
// through as-is.
func formatCell(column, cell string) string {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return cell
	}
	if percentColumns[column] {
		return fmt.Sprintf("%.2f%%", v*100)
	}
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.2f", v)
}
