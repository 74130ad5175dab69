package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/memory-match/internal/memory"
)

// Ensure Store satisfies the engine's persistence boundary.
var _ memory.Scorekeeper = (*Store)(nil)

// BestScore returns the best time for a difficulty. ok is false when no game
// at that difficulty has been completed.
func (s *Store) BestScore(d memory.Difficulty) (memory.BestScore, bool, error) {
	var b memory.BestScore
	err := s.db.QueryRow(
		"SELECT time_secs, moves FROM best_scores WHERE difficulty = ?",
		string(d),
	).Scan(&b.Seconds, &b.Moves)

	if errors.Is(err, sql.ErrNoRows) {
		return memory.BestScore{}, false, nil
	}
	if err != nil {
		return memory.BestScore{}, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return b, true, nil
}

// SetBestScore replaces the best time for a difficulty. Whether b is better
// than what is stored is the caller's decision.
func (s *Store) SetBestScore(d memory.Difficulty, b memory.BestScore) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (difficulty, time_secs, moves, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
		   time_secs = excluded.time_secs,
		   moves = excluded.moves,
		   updated_at = excluded.updated_at`,
		string(d), b.Seconds, b.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// BestScores returns every recorded best time keyed by difficulty.
func (s *Store) BestScores() (map[memory.Difficulty]memory.BestScore, error) {
	rows, err := s.db.Query("SELECT difficulty, time_secs, moves FROM best_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[memory.Difficulty]memory.BestScore)
	for rows.Next() {
		var d string
		var b memory.BestScore
		if err := rows.Scan(&d, &b.Seconds, &b.Moves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[memory.Difficulty(d)] = b
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// AppendScoreEntry adds a finished game to the history. An empty ID gets a
// fresh UUID and a zero date is stamped with the current time.
func (s *Store) AppendScoreEntry(e memory.ScoreEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO score_entries
		 (id, mode, difficulty, moves, time_secs, player1_score, player2_score, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		string(e.Mode),
		string(e.Difficulty),
		e.Moves,
		e.Seconds,
		e.Player1Score,
		e.Player2Score,
		formatTime(e.Date),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score entry: %w", err)
	}
	return nil
}

// ScoreHistory returns the most recent games, newest first. An empty mode
// returns every mode.
func (s *Store) ScoreHistory(mode memory.Mode, limit int) ([]memory.ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, moves, time_secs, player1_score, player2_score, played_at
		 FROM score_entries
		 WHERE ? = '' OR mode = ?
		 ORDER BY played_at DESC, rowid DESC
		 LIMIT ?`,
		string(mode), string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query score history: %w", err)
	}
	return scanEntries(rows)
}

// TopTimes returns the fastest games at a difficulty.
func (s *Store) TopTimes(d memory.Difficulty, limit int) ([]memory.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, difficulty, moves, time_secs, player1_score, player2_score, played_at
		 FROM score_entries
		 WHERE difficulty = ?
		 ORDER BY time_secs ASC, moves ASC, played_at ASC
		 LIMIT ?`,
		string(d), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top times: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]memory.ScoreEntry, error) {
	defer rows.Close()

	var entries []memory.ScoreEntry
	for rows.Next() {
		var e memory.ScoreEntry
		var mode, difficulty string
		var playedAt any
		if err := rows.Scan(
			&e.ID,
			&mode,
			&difficulty,
			&e.Moves,
			&e.Seconds,
			&e.Player1Score,
			&e.Player2Score,
			&playedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Mode = memory.Mode(mode)
		e.Difficulty = memory.Difficulty(difficulty)
		e.Date = parseTime(playedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode        memory.Mode
	Games       int
	BestSeconds int
	AvgSeconds  float64
	AvgMoves    float64
	LastPlayed  time.Time
}

// Stats retrieves statistics for every mode that has been played.
func (s *Store) Stats() (map[memory.Mode]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MIN(time_secs), AVG(time_secs), AVG(moves), MAX(played_at)
		 FROM score_entries
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[memory.Mode]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var mode string
		var lastPlayed any
		if err := rows.Scan(&mode, &st.Games, &st.BestSeconds, &st.AvgSeconds, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Mode = memory.Mode(mode)
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearScores deletes every best time and history entry. Settings are kept.
func (s *Store) ClearScores() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"best_scores", "score_entries"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
