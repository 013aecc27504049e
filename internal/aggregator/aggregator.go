// Package aggregator rolls normalized match records up into per-team
// summary statistics.
package aggregator

import (
	"sort"

	"github.com/scoutops/scoutmetrics/internal/config"
	"github.com/scoutops/scoutmetrics/internal/model"
)

// Aggregate groups records by team number and computes one TeamSummary per
// team, ordered by ascending team number.
//
// The match count is the number of distinct match numbers seen for the
// team; duplicate submissions for the same match still add to every sum,
// only the averaging denominator collapses them. Output order is the
// canonical artifact order; the ranking view re-sorts a copy downstream.
func Aggregate(records []model.Record, sc config.Scoring) []model.TeamSummary {
	type accum struct {
		summary model.TeamSummary
		matches map[int]struct{}
	}

	byTeam := make(map[int]*accum)
	for _, r := range records {
		acc := byTeam[r.TeamNumber]
		if acc == nil {
			acc = &accum{
				summary: model.TeamSummary{TeamNumber: r.TeamNumber},
				matches: make(map[int]struct{}),
			}
			byTeam[r.TeamNumber] = acc
		}
		acc.matches[r.MatchNumber] = struct{}{}

		s := &acc.summary
		s.AutoNearSum += r.AutoNearScore
		s.AutoFarSum += r.AutoFarScore
		s.TeleNearSum += r.TeleNearScore
		s.TeleFarSum += r.TeleFarScore
		s.AutoCyclesSum += r.AutoCycles
		s.TeleCyclesSum += r.TeleCycles
		s.TotalCyclesSum += r.TotalCycles
		s.EndScoreSum += r.EndGameScore
		s.TotalScoreSum += r.TotalScore
	}

	out := make([]model.TeamSummary, 0, len(byTeam))
	for _, acc := range byTeam {
		s := acc.summary
		s.Matches = len(acc.matches)
		s.AutoHitRate = hitRate(s.AutoNearSum+s.AutoFarSum, s.AutoCyclesSum, sc.PointsPerPiece)
		s.TeleHitRate = hitRate(s.TeleNearSum+s.TeleFarSum, s.TeleCyclesSum, sc.PointsPerPiece)
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TeamNumber < out[j].TeamNumber
	})
	return out
}

// hitRate is scored points over the maximum attainable across all cycles.
// A team with no recorded cycles gets 0 rather than a division by zero.
func hitRate(scored, cycleSum, maxPoints int) float64 {
	denom := cycleSum * maxPoints
	if denom == 0 {
		return 0
	}
	return float64(scored) / float64(denom)
}
