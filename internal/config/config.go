// Package config defines the scoring rules and output naming for a
// processing run. The point values live here, not in the scoring code, so a
// season rule change is a config edit rather than an aggregation change.
package config

// Config carries everything a processing run needs beyond its input files.
type Config struct {
	Scoring Scoring `koanf:"scoring"`
	Output  Output  `koanf:"output"`
}

// Scoring holds the fixed point-scoring rule set.
type Scoring struct {
	// PointsPerPiece is awarded for every scored piece and doubles as the
	// per-attempt maximum used by the off-target and hit-rate math.
	PointsPerPiece int `koanf:"points_per_piece"`

	// EndgamePoints maps a normalized endgame category to its bonus.
	EndgamePoints map[string]int `koanf:"endgame_points"`
}

// Output names the two artifacts written into the output folder.
type Output struct {
	SummaryFile string `koanf:"summary_file"`
	DetailFile  string `koanf:"detail_file"`
}

// New returns a Config with the current season's defaults.
func New() *Config {
	return &Config{
		Scoring: Scoring{
			PointsPerPiece: 3,
			EndgamePoints: map[string]int{
				"Partially":               5,
				"Fully":                   10,
				"Double Park Beneficiary": 10,
				"Double Park Dealer":      20,
			},
		},
		Output: Output{
			SummaryFile: "team_score_summary.csv",
			DetailFile:  "all_records_with_scores.csv",
		},
	}
}

// EndgameScore returns the bonus for a normalized endgame category.
// Unknown and empty categories score zero.
func (s Scoring) EndgameScore(category string) int {
	return s.EndgamePoints[category]
}
