package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/scoutops/scoutmetrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintTeamTable renders the per-team summary ranked by average total
// score, the same default ordering the ranking view uses. The input slice
// is not mutated; the canonical artifact keeps its ascending team order.
func PrintTeamTable(w io.Writer, teams []model.TeamSummary) {
	ranked := make([]model.TeamSummary, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScoreAvg() > ranked[j].TotalScoreAvg()
	})

	table := newTable(w)
	table.Header(
		"RANK", "TEAM", "PLAYED",
		"AUTO_NEAR", "AUTO_FAR", "TELE_NEAR", "TELE_FAR",
		"CYCLES", "AUTO_HIT", "TELE_HIT",
		"END_AVG", "TOTAL_AVG",
	)

	for i := range ranked {
		s := &ranked[i]
		table.Append(
			strconv.Itoa(i+1),
			strconv.Itoa(s.TeamNumber),
			strconv.Itoa(s.Matches),
			fmt.Sprintf("%.2f", s.AutoNearAvg()),
			fmt.Sprintf("%.2f", s.AutoFarAvg()),
			fmt.Sprintf("%.2f", s.TeleNearAvg()),
			fmt.Sprintf("%.2f", s.TeleFarAvg()),
			fmt.Sprintf("%.2f", s.TotalCyclesAvg()),
			fmt.Sprintf("%.2f%%", s.AutoHitRate*100),
			fmt.Sprintf("%.2f%%", s.TeleHitRate*100),
			fmt.Sprintf("%.2f", s.EndScoreAvg()),
			fmt.Sprintf("%.2f", s.TotalScoreAvg()),
		)
	}
	table.Render()
}
