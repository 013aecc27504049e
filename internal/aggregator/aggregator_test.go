package aggregator

import (
	"math"
	"testing"

	"github.com/scoutops/scoutmetrics/internal/config"
	"github.com/scoutops/scoutmetrics/internal/model"
	"github.com/scoutops/scoutmetrics/internal/normalize"
)

func defaultScoring() config.Scoring {
	return config.New().Scoring
}

// rawRow builds a RawRecord for the end-to-end aggregation tests; running
// rows through normalize keeps the fixtures honest about derivation.
func rawRow(match, team, autoNear, autoFar, teleNear, teleFar, endGame string) model.RawRecord {
	return model.RawRecord{
		MatchNumber: match,
		TeamNumber:  team,
		AutoNear:    autoNear,
		AutoFar:     autoFar,
		TeleNear:    teleNear,
		TeleFar:     teleFar,
		EndGame:     endGame,
	}
}

func aggregate(t *testing.T, raws ...model.RawRecord) []model.TeamSummary {
	t.Helper()
	sc := defaultScoring()
	return Aggregate(normalize.Records(raws, sc), sc)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestAggregate_WorkedExample pins the two-row scenario: team 100 scores
// piece totals of 27 and 18 plus endgame bonuses of 10 and 5, for a total
// score sum of 60 across 2 matches.
func TestAggregate_WorkedExample(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "100", "3,3", "0", "3", "0", "Fully"),
		rawRow("2", "100", "3", "3", "0", "0", "Partially"),
	)

	if len(teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(teams))
	}
	s := teams[0]
	if s.TeamNumber != 100 {
		t.Errorf("TeamNumber = %d, want 100", s.TeamNumber)
	}
	if s.Matches != 2 {
		t.Errorf("Matches = %d, want 2", s.Matches)
	}
	if s.TotalScoreSum != 60 {
		t.Errorf("TotalScoreSum = %d, want 60", s.TotalScoreSum)
	}
	if !almostEqual(s.TotalScoreAvg(), 30) {
		t.Errorf("TotalScoreAvg = %f, want 30", s.TotalScoreAvg())
	}
	if s.EndScoreSum != 15 {
		t.Errorf("EndScoreSum = %d, want 15", s.EndScoreSum)
	}
	if s.AutoNearSum != 9 || s.AutoFarSum != 3 || s.TeleNearSum != 3 || s.TeleFarSum != 0 {
		t.Errorf("zone sums = %d/%d/%d/%d, want 9/3/3/0",
			s.AutoNearSum, s.AutoFarSum, s.TeleNearSum, s.TeleFarSum)
	}
}

func TestAggregate_AveragesAreSumOverMatches(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "100", "3,3", "0", "3", "0", "Fully"),
		rawRow("2", "100", "3", "3", "0", "0", "Partially"),
		rawRow("1", "200", "3", "", "", "", ""),
	)

	for _, s := range teams {
		if !almostEqual(s.TotalScoreAvg(), float64(s.TotalScoreSum)/float64(s.Matches)) {
			t.Errorf("team %d: TotalScoreAvg %f != sum/matches", s.TeamNumber, s.TotalScoreAvg())
		}
		if !almostEqual(s.AutoNearAvg(), float64(s.AutoNearSum)/float64(s.Matches)) {
			t.Errorf("team %d: AutoNearAvg %f != sum/matches", s.TeamNumber, s.AutoNearAvg())
		}
		if !almostEqual(s.EndScoreAvg(), float64(s.EndScoreSum)/float64(s.Matches)) {
			t.Errorf("team %d: EndScoreAvg %f != sum/matches", s.TeamNumber, s.EndScoreAvg())
		}
	}
}

// TestAggregate_DuplicateMatchCountsOnce pins the dedup-of-count-only
// behavior: two submissions for the same (team, match) both add to the
// sums, but the match denominator stays 1.
func TestAggregate_DuplicateMatchCountsOnce(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "100", "3", "", "", "", "Partially"),
		rawRow("1", "100", "3", "", "", "", "Partially"),
	)

	s := teams[0]
	if s.Matches != 1 {
		t.Errorf("Matches = %d, want 1 (distinct match numbers)", s.Matches)
	}
	if s.AutoNearSum != 6 {
		t.Errorf("AutoNearSum = %d, want 6 (sums are not deduplicated)", s.AutoNearSum)
	}
	if s.TotalScoreSum != 28 {
		t.Errorf("TotalScoreSum = %d, want (9+5)*2 = 28", s.TotalScoreSum)
	}
}

func TestAggregate_HitRates(t *testing.T) {
	// 3 auto cycles scoring 6 points against a 9-point maximum.
	teams := aggregate(t,
		rawRow("1", "100", "3,0", "3", "", "", ""),
	)

	s := teams[0]
	if !almostEqual(s.AutoHitRate, 6.0/9.0) {
		t.Errorf("AutoHitRate = %f, want %f", s.AutoHitRate, 6.0/9.0)
	}
	if s.TeleHitRate != 0 {
		t.Errorf("TeleHitRate = %f, want 0 for zero tele cycles", s.TeleHitRate)
	}
}

func TestAggregate_HitRateZeroGuard(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "100", "", "", "", "", "Fully"),
	)

	s := teams[0]
	if s.AutoHitRate != 0 || s.TeleHitRate != 0 {
		t.Errorf("hit rates = %f/%f, want 0/0 when cycle sums are 0", s.AutoHitRate, s.TeleHitRate)
	}
	if math.IsNaN(s.AutoHitRate) || math.IsInf(s.AutoHitRate, 0) {
		t.Error("hit rate must never be NaN or Inf")
	}
}

func TestAggregate_SortedByTeamNumber(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "300", "3", "", "", "", ""),
		rawRow("1", "100", "3", "", "", "", ""),
		rawRow("1", "200", "3", "", "", "", ""),
	)

	want := []int{100, 200, 300}
	for i, s := range teams {
		if s.TeamNumber != want[i] {
			t.Fatalf("team order = %v..., want ascending %v", s.TeamNumber, want)
		}
	}
}

func TestAggregate_CycleSums(t *testing.T) {
	teams := aggregate(t,
		rawRow("1", "100", "3,0", "3", "3,3", "", ""), // auto 3, tele 2
		rawRow("2", "100", "3", "", "0,3", "", ""),    // auto 1, tele 2
	)

	s := teams[0]
	if s.AutoCyclesSum != 4 || s.TeleCyclesSum != 4 || s.TotalCyclesSum != 8 {
		t.Errorf("cycle sums = %d/%d/%d, want 4/4/8",
			s.AutoCyclesSum, s.TeleCyclesSum, s.TotalCyclesSum)
	}
	if !almostEqual(s.TotalCyclesAvg(), 4) {
		t.Errorf("TotalCyclesAvg = %f, want 4", s.TotalCyclesAvg())
	}
}

func TestAggregate_Empty(t *testing.T) {
	teams := Aggregate(nil, defaultScoring())
	if len(teams) != 0 {
		t.Errorf("expected no teams for no records, got %d", len(teams))
	}
}
