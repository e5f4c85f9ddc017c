package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// RosterRepository handles roster database operations
type RosterRepository struct {
	db *Database
}

const upsertRosterEntryQuery = `
	INSERT INTO rosters (
		team_id, player_id, season, position, depth, injury_status, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (team_id, player_id, season) DO UPDATE SET
		position = EXCLUDED.position,
		depth = EXCLUDED.depth,
		injury_status = EXCLUDED.injury_status,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates roster entries in one round trip
func (r *RosterRepository) UpsertBatch(ctx context.Context, entries []*models.RosterEntry) (int, error) {
	b := &pgx.Batch{}
	for _, e := range entries {
		b.Queue(upsertRosterEntryQuery,
			e.TeamID, e.PlayerID, e.Season, e.Position, e.Depth,
			e.InjuryStatus, e.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// Count returns the total number of roster entries
func (r *RosterRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM rosters`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roster entries: %w", err)
	}
	return count, nil
}
