package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// StandingRepository handles standings database operations
type StandingRepository struct {
	db *Database
}

const upsertStandingQuery = `
	INSERT INTO standings (
		team_id, season, wins, losses, ties,
		points_for, points_against, point_differential, playoff_seed,
		overall_record, conference_record, division_record,
		home_record, road_record, win_streak,
		updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
	)
	ON CONFLICT (team_id, season) DO UPDATE SET
		wins = EXCLUDED.wins,
		losses = EXCLUDED.losses,
		ties = EXCLUDED.ties,
		points_for = EXCLUDED.points_for,
		points_against = EXCLUDED.points_against,
		point_differential = EXCLUDED.point_differential,
		playoff_seed = EXCLUDED.playoff_seed,
		overall_record = EXCLUDED.overall_record,
		conference_record = EXCLUDED.conference_record,
		division_record = EXCLUDED.division_record,
		home_record = EXCLUDED.home_record,
		road_record = EXCLUDED.road_record,
		win_streak = EXCLUDED.win_streak,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates standings in one round trip
func (r *StandingRepository) UpsertBatch(ctx context.Context, standings []*models.Standing) (int, error) {
	b := &pgx.Batch{}
	for _, s := range standings {
		b.Queue(upsertStandingQuery,
			s.TeamID, s.Season, s.Wins, s.Losses, s.Ties,
			s.PointsFor, s.PointsAgainst, s.PointDifferential, s.PlayoffSeed,
			s.OverallRecord, s.ConferenceRecord, s.DivisionRecord,
			s.HomeRecord, s.RoadRecord, s.WinStreak,
			s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// GetByTeamSeason retrieves a team's standing for one season
func (r *StandingRepository) GetByTeamSeason(ctx context.Context, teamID, season int) (*models.Standing, error) {
	query := `
		SELECT id, team_id, season, wins, losses, ties,
		       points_for, points_against, point_differential, playoff_seed,
		       overall_record, conference_record, division_record,
		       home_record, road_record, win_streak,
		       created_at, updated_at
		FROM standings
		WHERE team_id = $1 AND season = $2
	`

	var s models.Standing
	err := r.db.Pool.QueryRow(ctx, query, teamID, season).Scan(
		&s.ID, &s.TeamID, &s.Season, &s.Wins, &s.Losses, &s.Ties,
		&s.PointsFor, &s.PointsAgainst, &s.PointDifferential, &s.PlayoffSeed,
		&s.OverallRecord, &s.ConferenceRecord, &s.DivisionRecord,
		&s.HomeRecord, &s.RoadRecord, &s.WinStreak,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("standing not found: team_id=%d season=%d", teamID, season)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standing: %w", err)
	}

	return &s, nil
}

// Count returns the total number of standings rows
func (r *StandingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM standings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count standings: %w", err)
	}
	return count, nil
}
