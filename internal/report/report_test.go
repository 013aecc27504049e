package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scoutops/scoutmetrics/internal/model"
)

func writeSummary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team_score_summary.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSummary_RequiresTotalScoreAvg(t *testing.T) {
	path := writeSummary(t, "Team Number,matches\n100,2\n")

	_, err := LoadSummary(path)
	if err == nil {
		t.Fatal("expected error for summary without total_score_avg")
	}
	if !strings.Contains(err.Error(), "total_score_avg") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestLoadSummary_RowsPreserved(t *testing.T) {
	path := writeSummary(t, "Team Number,matches,total_score_avg\n100,2,30\n200,1,12.5\n")

	s, err := LoadSummary(path)
	if err != nil {
		t.Fatalf("LoadSummary: %v", err)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(s.Rows))
	}
	if _, ok := s.Column("matches"); !ok {
		t.Error("matches column not found")
	}
}

func TestRanked_DescendingByTotalScoreAvg(t *testing.T) {
	path := writeSummary(t,
		"Team Number,total_score_avg\n100,12.5\n200,30\n300,junk\n400,21\n")

	s, err := LoadSummary(path)
	if err != nil {
		t.Fatal(err)
	}

	ranked := s.Ranked()
	wantOrder := []string{"200", "400", "100", "300"} // junk sorts as 0
	for i, want := range wantOrder {
		if ranked[i][0] != want {
			t.Fatalf("rank %d = team %s, want %s", i+1, ranked[i][0], want)
		}
	}
	// The loaded rows keep their original order.
	if s.Rows[0][0] != "100" {
		t.Error("Ranked must not mutate the loaded rows")
	}
}

func TestPrintRanking_WarnsOnMissingOptionalColumns(t *testing.T) {
	path := writeSummary(t, "Team Number,matches,total_score_avg\n100,2,30\n")

	s, err := LoadSummary(path)
	if err != nil {
		t.Fatal(err)
	}

	var out, warn bytes.Buffer
	if err := PrintRanking(&out, &warn, s); err != nil {
		t.Fatalf("PrintRanking: %v", err)
	}

	if !strings.Contains(warn.String(), "auto_hit_rate") {
		t.Errorf("expected warning naming missing columns, got %q", warn.String())
	}
	if strings.Contains(out.String(), "AUTO_HIT") {
		t.Error("missing column must be omitted from the table")
	}
	for _, want := range []string{"RANK", "TEAM", "PLAYED", "TOTAL_AVG", "100"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestPrintRanking_FullSummary(t *testing.T) {
	path := writeSummary(t,
		"Team Number,matches,auto_near_avg,auto_far_avg,tele_near_avg,tele_far_avg,"+
			"auto_cycles_avg,tele_cycles_avg,total_cycles_avg,auto_hit_rate,tele_hit_rate,"+
			"end_score_avg,total_score_avg\n"+
			"100,2,4.5,1.5,1.5,0,1.5,0.5,2,0.6667,1,7.5,30\n")

	s, err := LoadSummary(path)
	if err != nil {
		t.Fatal(err)
	}

	var out, warn bytes.Buffer
	if err := PrintRanking(&out, &warn, s); err != nil {
		t.Fatal(err)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %q", warn.String())
	}
	if !strings.Contains(out.String(), "66.67%") {
		t.Errorf("hit rate should render as a percentage, got:\n%s", out.String())
	}
}

func TestPrintTeamTable_RankedByTotalScore(t *testing.T) {
	teams := []model.TeamSummary{
		{TeamNumber: 100, Matches: 1, TotalScoreSum: 10},
		{TeamNumber: 200, Matches: 1, TotalScoreSum: 40},
	}

	var out bytes.Buffer
	PrintTeamTable(&out, teams)

	text := out.String()
	if !strings.Contains(text, "200") || !strings.Contains(text, "100") {
		t.Fatalf("both teams should appear:\n%s", text)
	}
	if strings.Index(text, "200") > strings.Index(text, "100") {
		t.Errorf("team 200 should rank above team 100:\n%s", text)
	}
	// Canonical input order must survive the ranked rendering.
	if teams[0].TeamNumber != 100 {
		t.Error("PrintTeamTable must not reorder its input")
	}
}
