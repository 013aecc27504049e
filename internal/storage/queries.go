package storage

import (
	"database/sql"
	"fmt"

	"github.com/scoutops/scoutmetrics/internal/model"
	"github.com/scoutops/scoutmetrics/internal/sequence"
)

// RunExists returns true when a run with the given id is already archived.
func (db *DB) RunExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM runs WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertRun archives a run header. INSERT OR REPLACE keeps re-processing
// identical inputs idempotent.
func (db *DB) InsertRun(run model.RunSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO runs(id, created_at, input_dir, file_count, record_count, team_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.CreatedAt, run.InputDir,
		run.FileCount, run.RecordCount, run.TeamCount,
	)
	return err
}

// InsertTeamSummaries bulk-inserts the per-team rollups in a transaction.
func (db *DB) InsertTeamSummaries(runID string, teams []model.TeamSummary) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO team_summaries(
			run_id, team_number, matches,
			auto_near_sum, auto_far_sum, tele_near_sum, tele_far_sum,
			auto_cycles_sum, tele_cycles_sum, total_cycles_sum,
			end_score_sum, total_score_sum,
			auto_hit_rate, tele_hit_rate
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range teams {
		_, err = stmt.Exec(
			runID, s.TeamNumber, s.Matches,
			s.AutoNearSum, s.AutoFarSum, s.TeleNearSum, s.TeleFarSum,
			s.AutoCyclesSum, s.TeleCyclesSum, s.TotalCyclesSum,
			s.EndScoreSum, s.TotalScoreSum,
			s.AutoHitRate, s.TeleHitRate,
		)
		if err != nil {
			return fmt.Errorf("insert team_summaries for %d: %w", s.TeamNumber, err)
		}
	}
	return tx.Commit()
}

// InsertMatchRecords bulk-inserts the normalized detail rows in a
// transaction. Attempt sequences are stored in their comma-delimited
// canonical encoding.
func (db *DB) InsertMatchRecords(runID string, records []model.Record) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO match_records(
			run_id, row_index, match_number, team_number,
			auto_near, auto_far, tele_near, tele_far,
			auto_off_target, tele_off_target,
			auto_cycles, tele_cycles, total_cycles,
			end_game_raw, end_game, end_game_score,
			piece_score, total_score
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		_, err = stmt.Exec(
			runID, i, r.MatchNumber, r.TeamNumber,
			r.AutoNear.String(), r.AutoFar.String(),
			r.TeleNear.String(), r.TeleFar.String(),
			r.AutoOffTarget, r.TeleOffTarget,
			r.AutoCycles, r.TeleCycles, r.TotalCycles,
			r.EndGameRaw, r.EndGame, r.EndGameScore,
			r.PieceScore, r.TotalScore,
		)
		if err != nil {
			return fmt.Errorf("insert match_records row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns all archived runs, newest first.
func (db *DB) ListRuns() ([]model.RunSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, created_at, input_dir, file_count, record_count, team_count
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunSummary
	for rows.Next() {
		var r model.RunSummary
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.InputDir,
			&r.FileCount, &r.RecordCount, &r.TeamCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRunByPrefix finds the first run whose id starts with the given prefix.
func (db *DB) GetRunByPrefix(prefix string) (*model.RunSummary, error) {
	var r model.RunSummary
	err := db.conn.QueryRow(`
		SELECT id, created_at, input_dir, file_count, record_count, team_count
		FROM runs WHERE id LIKE ? LIMIT 1`, prefix+"%").
		Scan(&r.RunID, &r.CreatedAt, &r.InputDir,
			&r.FileCount, &r.RecordCount, &r.TeamCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetTeamSummaries returns the archived per-team rollups for a run,
// ascending by team number (the canonical artifact order).
func (db *DB) GetTeamSummaries(runID string) ([]model.TeamSummary, error) {
	rows, err := db.conn.Query(`
		SELECT team_number, matches,
		       auto_near_sum, auto_far_sum, tele_near_sum, tele_far_sum,
		       auto_cycles_sum, tele_cycles_sum, total_cycles_sum,
		       end_score_sum, total_score_sum,
		       auto_hit_rate, tele_hit_rate
		FROM team_summaries WHERE run_id = ?
		ORDER BY team_number ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TeamSummary
	for rows.Next() {
		var s model.TeamSummary
		if err := rows.Scan(
			&s.TeamNumber, &s.Matches,
			&s.AutoNearSum, &s.AutoFarSum, &s.TeleNearSum, &s.TeleFarSum,
			&s.AutoCyclesSum, &s.TeleCyclesSum, &s.TotalCyclesSum,
			&s.EndScoreSum, &s.TotalScoreSum,
			&s.AutoHitRate, &s.TeleHitRate,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetMatchRecords returns the archived detail rows for a run in original
// row order.
func (db *DB) GetMatchRecords(runID string) ([]model.Record, error) {
	rows, err := db.conn.Query(`
		SELECT match_number, team_number,
		       auto_near, auto_far, tele_near, tele_far,
		       auto_off_target, tele_off_target,
		       auto_cycles, tele_cycles, total_cycles,
		       end_game_raw, end_game, end_game_score,
		       piece_score, total_score
		FROM match_records WHERE run_id = ?
		ORDER BY row_index ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var r model.Record
		var autoNear, autoFar, teleNear, teleFar string
		if err := rows.Scan(
			&r.MatchNumber, &r.TeamNumber,
			&autoNear, &autoFar, &teleNear, &teleFar,
			&r.AutoOffTarget, &r.TeleOffTarget,
			&r.AutoCycles, &r.TeleCycles, &r.TotalCycles,
			&r.EndGameRaw, &r.EndGame, &r.EndGameScore,
			&r.PieceScore, &r.TotalScore,
		); err != nil {
			return nil, err
		}
		r.AutoNear = sequence.Parse(autoNear)
		r.AutoFar = sequence.Parse(autoFar)
		r.TeleNear = sequence.Parse(teleNear)
		r.TeleFar = sequence.Parse(teleFar)
		r.AutoNearScore = r.AutoNear.Sum()
		r.AutoFarScore = r.AutoFar.Sum()
		r.TeleNearScore = r.TeleNear.Sum()
		r.TeleFarScore = r.TeleFar.Sum()
		out = append(out, r)
	}
	return out, rows.Err()
}
