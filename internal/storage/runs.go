package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("storage: not found")

// Outcome values stored for finished runs.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Run is one finished game from its start level to a win or a loss.
type Run struct {
	ID           string
	GameID       string
	StartLevel   int
	LevelReached int
	Outcome      string
	Moves        int
	Path         string // moves in letter notation, e.g. "LLBR"
	CreatedAt    time.Time
}

// SaveRun records a finished run and its score. A missing ID is filled
// with a new UUID, which is returned.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, game_id, start_level, level_reached, outcome, moves, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.StartLevel, r.LevelReached, r.Outcome, r.Moves, r.Path,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		r.GameID, r.Moves,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, game_id, start_level, level_reached, outcome, moves, path, created_at`

// BestRuns returns won runs with the fewest moves first.
func (s *Store) BestRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE game_id = ? AND outcome = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT ?`,
		gameID, OutcomeWon, limit,
	)
}

// RecentRuns returns the latest runs of any outcome, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RunByID returns a single run, or ErrNotFound.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: run %s", ErrNotFound, id)
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.StartLevel, &r.LevelReached, &r.Outcome, &r.Moves, &r.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GameStats aggregates every finished run of a game.
type GameStats struct {
	GameID     string
	Runs       int
	Wins       int
	BestMoves  int // fewest moves in a won run, 0 if none
	AvgMoves   float64
	TotalMoves int64
	LastPlayed time.Time
}

// Stats returns aggregated statistics for gameID. Totals come from the
// scores table; wins and best come from runs.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.AvgMoves, &stats.TotalMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	var best sql.NullInt64
	err = s.db.QueryRow(
		`SELECT COUNT(*), MIN(moves) FROM runs WHERE game_id = ? AND outcome = ?`,
		gameID, OutcomeWon,
	).Scan(&stats.Wins, &best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get win stats: %w", err)
	}
	if best.Valid {
		stats.BestMoves = int(best.Int64)
	}
	return stats, nil
}

// Clear deletes every run and score of gameID.
func (s *Store) Clear(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM runs WHERE game_id = ?",
		"DELETE FROM scores WHERE game_id = ?",
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear scores: %w", err)
		}
	}
	return tx.Commit()
}
