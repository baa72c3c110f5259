package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ResultRepository {
	return &dbResult{
		db: db,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT OR REPLACE INTO results (game_id, human, winner, moves, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query, result.GameID, result.Human, result.Winner, result.Moves, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) Stats(ctx context.Context) (*entity.Stats, error) {
	query := `SELECT
		COUNT(*),
		COALESCE(SUM(CASE WHEN winner = human THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN winner <> human AND winner <> ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0)
	FROM results`

	var stats entity.Stats

	row := that.db.QueryRowContext(ctx, query, entity.PlayerTie, entity.PlayerTie)
	if err := row.Scan(&stats.Games, &stats.HumanWins, &stats.EngineWins, &stats.Draws); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	return &stats, nil
}
