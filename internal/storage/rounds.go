package storage

import (
	"fmt"
	"time"
)

// RoundResult is one finished round of the maze chase.
type RoundResult struct {
	ID             int64
	GameID         string
	Winner         string // "seeker" or "pursuers"
	Score          int    // seeker score
	Remaining      int    // collectibles left when the round ended
	PursuersCaught int
	Duration       float64 // simulation seconds
	CustomMaze     bool    // played on an edited maze
	CreatedAt      time.Time
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.Winner == "" {
		return 0, fmt.Errorf("storage: round without a winner")
	}
	custom := 0
	if r.CustomMaze {
		custom = 1
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (game_id, winner, score, remaining, pursuers_caught, duration_secs, custom_maze)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Winner, r.Score, r.Remaining, r.PursuersCaught, r.Duration, custom,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRounds retrieves the latest rounds for the given game, newest first.
// A limit of zero or less returns every round.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundResult, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, winner, score, remaining, pursuers_caught, duration_secs, custom_maze, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var custom int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Winner, &r.Score, &r.Remaining,
			&r.PursuersCaught, &r.Duration, &custom, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		r.CustomMaze = custom != 0
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinCounts returns how many rounds each side has won.
func (s *Store) WinCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*) FROM rounds WHERE game_id = ? GROUP BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan win count: %w", err)
		}
		counts[winner] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return counts, nil
}
