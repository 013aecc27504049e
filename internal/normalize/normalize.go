// Package normalize derives scored match records from raw scouting rows.
package normalize

import (
	"strconv"
	"strings"

	"github.com/scoutops/scoutmetrics/internal/config"
	"github.com/scoutops/scoutmetrics/internal/model"
	"github.com/scoutops/scoutmetrics/internal/sequence"
)

// Records derives one model.Record per raw row, preserving input order.
// Rows are never dropped: unparseable identifiers and counts default to
// zero, so the output length always equals the input length.
func Records(raws []model.RawRecord, sc config.Scoring) []model.Record {
	out := make([]model.Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, record(raw, sc))
	}
	return out
}

func record(raw model.RawRecord, sc config.Scoring) model.Record {
	r := model.Record{
		MatchNumber: toCount(raw.MatchNumber),
		TeamNumber:  toCount(raw.TeamNumber),
		AutoNear:    sequence.Parse(raw.AutoNear),
		AutoFar:     sequence.Parse(raw.AutoFar),
		TeleNear:    sequence.Parse(raw.TeleNear),
		TeleFar:     sequence.Parse(raw.TeleFar),
		EndGameRaw:  raw.EndGame,
	}

	r.AutoNearScore = r.AutoNear.Sum()
	r.AutoFarScore = r.AutoFar.Sum()
	r.TeleNearScore = r.TeleNear.Sum()
	r.TeleFarScore = r.TeleFar.Sum()

	r.AutoOffTarget = offTarget(sc.PointsPerPiece, r.AutoNear, r.AutoFar)
	r.TeleOffTarget = offTarget(sc.PointsPerPiece, r.TeleNear, r.TeleFar)

	r.AutoCycles = cycleCount(raw.AutoCycles, len(r.AutoNear)+len(r.AutoFar))
	r.TeleCycles = cycleCount(raw.TeleCycles, len(r.TeleNear)+len(r.TeleFar))
	r.TotalCycles = cycleCount(raw.TotalCycles, r.AutoCycles+r.TeleCycles)

	r.EndGame = endgameCategory(raw.EndGame)
	r.EndGameScore = sc.EndgameScore(r.EndGame)

	r.PieceScore = (r.AutoNearScore + r.AutoFarScore + r.TeleNearScore + r.TeleFarScore) * sc.PointsPerPiece
	r.TotalScore = r.PieceScore + r.EndGameScore
	return r
}

// toCount coerces a raw numeric cell to a non-negative integer.
// Missing, unparseable, and negative values all coerce to 0.
func toCount(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

// cycleCount prefers the explicit cycle column when it holds a valid
// non-negative number, and falls back to the inferred attempt count.
func cycleCount(raw string, inferred int) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return inferred
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return inferred
	}
	return int(v)
}

// offTarget sums each attempt's shortfall against the per-piece maximum.
// An attempt value above the maximum yields a negative shortfall that flows
// into the total unclamped: such values signal a data-entry error, and the
// totals keep it visible instead of papering over it.
func offTarget(maxPoints int, seqs ...sequence.Attempts) int {
	total := 0
	for _, seq := range seqs {
		for _, v := range seq {
			total += maxPoints - v
		}
	}
	return total
}

// endgameCategory reduces a multi-select endgame cell to its first
// non-empty semicolon-delimited label. First-wins is the scoring policy for
// multi-selects, not a parsing shortcut: the scouter's primary selection
// comes first in every known export.
func endgameCategory(raw string) string {
	for _, part := range strings.Split(raw, ";") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	return ""
}
