package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// PlayerRepository handles player database operations
type PlayerRepository struct {
	db *Database
}

// is_active is deliberately absent from the update set: the flag is owned by
// the active-players refresh and a full re-ingest must not reset it.
const upsertPlayerQuery = `
	INSERT INTO players (
		player_id, first_name, last_name, position, position_abbreviation,
		height, weight, jersey_number, college, experience, age, team_id,
		updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (player_id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		position = EXCLUDED.position,
		position_abbreviation = EXCLUDED.position_abbreviation,
		height = EXCLUDED.height,
		weight = EXCLUDED.weight,
		jersey_number = EXCLUDED.jersey_number,
		college = EXCLUDED.college,
		experience = EXCLUDED.experience,
		age = EXCLUDED.age,
		team_id = EXCLUDED.team_id,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates players in one round trip
func (r *PlayerRepository) UpsertBatch(ctx context.Context, players []*models.Player) (int, error) {
	b := &pgx.Batch{}
	for _, p := range players {
		b.Queue(upsertPlayerQuery,
			p.PlayerID, p.FirstName, p.LastName, p.Position,
			p.PositionAbbreviation, p.Height, p.Weight, p.JerseyNumber,
			p.College, p.Experience, p.Age, p.TeamID, p.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// MarkActive flips is_active on for the given provider player ids
func (r *PlayerRepository) MarkActive(ctx context.Context, playerIDs []int) (int64, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}

	result, err := r.db.Pool.Exec(ctx,
		`UPDATE players SET is_active = TRUE, updated_at = NOW() WHERE player_id = ANY($1)`,
		playerIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark players active: %w", err)
	}

	log.Debug().
		Int("requested", len(playerIDs)).
		Int64("updated", result.RowsAffected()).
		Msg("Marked players active")

	return result.RowsAffected(), nil
}

// GetByPlayerID retrieves a player by its provider PlayerID
func (r *PlayerRepository) GetByPlayerID(ctx context.Context, playerID int) (*models.Player, error) {
	query := `
		SELECT id, player_id, first_name, last_name, position,
		       position_abbreviation, height, weight, jersey_number, college,
		       experience, age, team_id, is_active, created_at, updated_at
		FROM players
		WHERE player_id = $1
	`

	var p models.Player
	err := r.db.Pool.QueryRow(ctx, query, playerID).Scan(
		&p.ID, &p.PlayerID, &p.FirstName, &p.LastName, &p.Position,
		&p.PositionAbbreviation, &p.Height, &p.Weight, &p.JerseyNumber,
		&p.College, &p.Experience, &p.Age, &p.TeamID, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("player not found: player_id=%d", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &p, nil
}

// Count returns the total number of players
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}
