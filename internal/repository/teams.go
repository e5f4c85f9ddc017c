package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// TeamRepository handles team database operations
type TeamRepository struct {
	db *Database
}

const upsertTeamQuery = `
	INSERT INTO teams (
		team_id, name, full_name, abbreviation, conference, division,
		location, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (team_id) DO UPDATE SET
		name = EXCLUDED.name,
		full_name = EXCLUDED.full_name,
		abbreviation = EXCLUDED.abbreviation,
		conference = EXCLUDED.conference,
		division = EXCLUDED.division,
		location = EXCLUDED.location,
		updated_at = EXCLUDED.updated_at
`

// Upsert inserts or updates a single team
func (r *TeamRepository) Upsert(ctx context.Context, team *models.Team) error {
	_, err := r.db.Pool.Exec(
		ctx, upsertTeamQuery,
		team.TeamID, team.Name, team.FullName, team.Abbreviation,
		team.Conference, team.Division, team.Location, team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team: %w", err)
	}
	return nil
}

// UpsertBatch inserts or updates teams in one round trip
func (r *TeamRepository) UpsertBatch(ctx context.Context, teams []*models.Team) (int, error) {
	b := &pgx.Batch{}
	for _, team := range teams {
		b.Queue(upsertTeamQuery,
			team.TeamID, team.Name, team.FullName, team.Abbreviation,
			team.Conference, team.Division, team.Location, team.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// GetByTeamID retrieves a team by its provider TeamID
func (r *TeamRepository) GetByTeamID(ctx context.Context, teamID int) (*models.Team, error) {
	query := `
		SELECT id, team_id, name, full_name, abbreviation, conference,
		       division, location, created_at, updated_at
		FROM teams
		WHERE team_id = $1
	`

	var team models.Team
	err := r.db.Pool.QueryRow(ctx, query, teamID).Scan(
		&team.ID, &team.TeamID, &team.Name, &team.FullName,
		&team.Abbreviation, &team.Conference, &team.Division,
		&team.Location, &team.CreatedAt, &team.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("team not found: team_id=%d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

// List retrieves all teams
func (r *TeamRepository) List(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, team_id, name, full_name, abbreviation, conference,
		       division, location, created_at, updated_at
		FROM teams
		ORDER BY full_name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var team models.Team
		err := rows.Scan(
			&team.ID, &team.TeamID, &team.Name, &team.FullName,
			&team.Abbreviation, &team.Conference, &team.Division,
			&team.Location, &team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	return teams, nil
}

// ListTeamIDs retrieves every provider team id
func (r *TeamRepository) ListTeamIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT team_id FROM teams ORDER BY team_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list team ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team ids: %w", err)
	}

	return ids, nil
}

// Count returns the total number of teams
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}
