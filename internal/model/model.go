package model

import "github.com/scoutops/scoutmetrics/internal/sequence"

// ---- Raw rows as read from the input files ----

// RawRecord is one scouting submission exactly as it appears in an input
// file. Every field holds the raw cell text; coercion and derivation happen
// in the normalize package.
type RawRecord struct {
	SourceFile string

	MatchNumber string
	TeamNumber  string

	AutoNear string
	AutoFar  string
	TeleNear string
	TeleFar  string

	// Optional explicit cycle counts; empty when the column is absent.
	AutoCycles  string
	TeleCycles  string
	TotalCycles string

	EndGame string
}

// ---- Normalized per-match records ----

// Record is a fully derived match record. It is created once per raw row
// and never mutated or merged afterwards.
type Record struct {
	MatchNumber int
	TeamNumber  int

	AutoNear sequence.Attempts
	AutoFar  sequence.Attempts
	TeleNear sequence.Attempts
	TeleFar  sequence.Attempts

	AutoNearScore int
	AutoFarScore  int
	TeleNearScore int
	TeleFarScore  int

	// Shortfall against the per-piece maximum, summed over a phase's
	// attempts. Goes negative when an attempt value exceeds the maximum.
	AutoOffTarget int
	TeleOffTarget int

	AutoCycles  int
	TeleCycles  int
	TotalCycles int

	EndGameRaw   string // original multi-select cell
	EndGame      string // first label only
	EndGameScore int

	PieceScore int
	TotalScore int
}

// ---- Per-team aggregates ----

// TeamSummary rolls up every record for one team. Matches counts distinct
// match numbers, so the average methods divide by played matches even when
// duplicate submissions inflate the sums.
type TeamSummary struct {
	TeamNumber int
	Matches    int

	AutoNearSum int
	AutoFarSum  int
	TeleNearSum int
	TeleFarSum  int

	AutoCyclesSum  int
	TeleCyclesSum  int
	TotalCyclesSum int

	EndScoreSum   int
	TotalScoreSum int

	// Scored points over maximum attainable points; 0 when no cycles.
	AutoHitRate float64
	TeleHitRate float64
}

func (s *TeamSummary) AutoNearAvg() float64 {
	return float64(s.AutoNearSum) / float64(s.Matches)
}

func (s *TeamSummary) AutoFarAvg() float64 {
	return float64(s.AutoFarSum) / float64(s.Matches)
}

func (s *TeamSummary) TeleNearAvg() float64 {
	return float64(s.TeleNearSum) / float64(s.Matches)
}

func (s *TeamSummary) TeleFarAvg() float64 {
	return float64(s.TeleFarSum) / float64(s.Matches)
}

func (s *TeamSummary) AutoCyclesAvg() float64 {
	return float64(s.AutoCyclesSum) / float64(s.Matches)
}

func (s *TeamSummary) TeleCyclesAvg() float64 {
	return float64(s.TeleCyclesSum) / float64(s.Matches)
}

func (s *TeamSummary) TotalCyclesAvg() float64 {
	return float64(s.TotalCyclesSum) / float64(s.Matches)
}

func (s *TeamSummary) EndScoreAvg() float64 {
	return float64(s.EndScoreSum) / float64(s.Matches)
}

func (s *TeamSummary) TotalScoreAvg() float64 {
	return float64(s.TotalScoreSum) / float64(s.Matches)
}

// RunSummary identifies one archived processing run.
type RunSummary struct {
	RunID       string // SHA-256 over the input file contents in discovery order
	CreatedAt   string // RFC 3339 UTC
	InputDir    string
	FileCount   int
	RecordCount int
	TeamCount   int
}
