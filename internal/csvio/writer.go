package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/scoutops/scoutmetrics/internal/config"
	"github.com/scoutops/scoutmetrics/internal/model"
)

// SummaryColumns is the canonical column order of the team summary
// artifact. The ranking view keys off these names, so the order and
// spelling are part of the output contract.
var SummaryColumns = []string{
	"Team Number", "matches",
	"auto_near_avg", "auto_far_avg", "tele_near_avg", "tele_far_avg",
	"auto_cycles_avg", "tele_cycles_avg", "total_cycles_avg",
	"auto_hit_rate", "tele_hit_rate",
	"end_score_avg", "total_score_avg",
	"auto_near_sum", "auto_far_sum", "tele_near_sum", "tele_far_sum",
	"auto_cycles_sum", "tele_cycles_sum", "total_cycles_sum",
	"end_score_sum", "total_score_sum",
}

// DetailColumns is the column order of the detail artifact: the normalized
// input fields plus every derived field, one row per input row.
var DetailColumns = []string{
	"Match Number", "Team Number",
	"Auto Scored At Near", "Auto Scored At Far",
	"Tele-Op Scored At Near", "Tele-Op Scored At Far",
	"Auto Near Attempts", "Auto Far Attempts",
	"Tele-Op Near Attempts", "Tele-Op Far Attempts",
	"Auto Off Target", "Tele-Op Off Target",
	"Auto Cycles", "Tele-Op Cycles", "Total Cycles",
	"End Game", "End Game (Norm)",
	"end_game_score", "piece_score", "total_score",
}

// WriteArtifacts writes the summary and detail CSVs into outDir, creating
// it if needed. Both artifacts are encoded in memory first and only then
// written, so a failed run never leaves a partial file behind.
func WriteArtifacts(outDir string, teams []model.TeamSummary, records []model.Record, out config.Output) (summaryPath, detailPath string, err error) {
	summary, err := EncodeSummary(teams)
	if err != nil {
		return "", "", fmt.Errorf("encode summary: %w", err)
	}
	detail, err := EncodeDetail(records)
	if err != nil {
		return "", "", fmt.Errorf("encode detail: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}
	summaryPath = filepath.Join(outDir, out.SummaryFile)
	detailPath = filepath.Join(outDir, out.DetailFile)

	if err := os.WriteFile(summaryPath, summary, 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", summaryPath, err)
	}
	if err := os.WriteFile(detailPath, detail, 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", detailPath, err)
	}
	return summaryPath, detailPath, nil
}

// EncodeSummary renders the team summary artifact, one row per team in the
// order given (ascending team number from the aggregator).
func EncodeSummary(teams []model.TeamSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(SummaryColumns); err != nil {
		return nil, err
	}
	for i := range teams {
		s := &teams[i]
		row := []string{
			strconv.Itoa(s.TeamNumber),
			strconv.Itoa(s.Matches),
			formatFloat(s.AutoNearAvg()),
			formatFloat(s.AutoFarAvg()),
			formatFloat(s.TeleNearAvg()),
			formatFloat(s.TeleFarAvg()),
			formatFloat(s.AutoCyclesAvg()),
			formatFloat(s.TeleCyclesAvg()),
			formatFloat(s.TotalCyclesAvg()),
			formatFloat(s.AutoHitRate),
			formatFloat(s.TeleHitRate),
			formatFloat(s.EndScoreAvg()),
			formatFloat(s.TotalScoreAvg()),
			strconv.Itoa(s.AutoNearSum),
			strconv.Itoa(s.AutoFarSum),
			strconv.Itoa(s.TeleNearSum),
			strconv.Itoa(s.TeleFarSum),
			strconv.Itoa(s.AutoCyclesSum),
			strconv.Itoa(s.TeleCyclesSum),
			strconv.Itoa(s.TotalCyclesSum),
			strconv.Itoa(s.EndScoreSum),
			strconv.Itoa(s.TotalScoreSum),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// EncodeDetail renders the detail artifact in original row order.
func EncodeDetail(records []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(DetailColumns); err != nil {
		return nil, err
	}
	for i := range records {
		r := &records[i]
		row := []string{
			strconv.Itoa(r.MatchNumber),
			strconv.Itoa(r.TeamNumber),
			strconv.Itoa(r.AutoNearScore),
			strconv.Itoa(r.AutoFarScore),
			strconv.Itoa(r.TeleNearScore),
			strconv.Itoa(r.TeleFarScore),
			r.AutoNear.String(),
			r.AutoFar.String(),
			r.TeleNear.String(),
			r.TeleFar.String(),
			strconv.Itoa(r.AutoOffTarget),
			strconv.Itoa(r.TeleOffTarget),
			strconv.Itoa(r.AutoCycles),
			strconv.Itoa(r.TeleCycles),
			strconv.Itoa(r.TotalCycles),
			r.EndGameRaw,
			r.EndGame,
			strconv.Itoa(r.EndGameScore),
			strconv.Itoa(r.PieceScore),
			strconv.Itoa(r.TotalScore),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// formatFloat uses the shortest exact representation so identical inputs
// always produce byte-identical artifacts.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
