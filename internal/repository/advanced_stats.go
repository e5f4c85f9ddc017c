package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// AdvancedStatsRepository handles tracking-derived player stat operations
type AdvancedStatsRepository struct {
	db *Database
}

const upsertAdvancedReceivingQuery = `
	INSERT INTO advanced_receiving_stats (
		player_id, season, week, postseason,
		receptions, targets, yards,
		avg_yac, avg_expected_yac, avg_yac_above_expectation,
		catch_percentage, avg_cushion, avg_separation,
		percent_share_of_intended_air_yards, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (player_id, season, week, postseason) DO UPDATE SET
		receptions = EXCLUDED.receptions,
		targets = EXCLUDED.targets,
		yards = EXCLUDED.yards,
		avg_yac = EXCLUDED.avg_yac,
		avg_expected_yac = EXCLUDED.avg_expected_yac,
		avg_yac_above_expectation = EXCLUDED.avg_yac_above_expectation,
		catch_percentage = EXCLUDED.catch_percentage,
		avg_cushion = EXCLUDED.avg_cushion,
		avg_separation = EXCLUDED.avg_separation,
		percent_share_of_intended_air_yards = EXCLUDED.percent_share_of_intended_air_yards,
		updated_at = EXCLUDED.updated_at
`

// UpsertReceivingBatch inserts or updates advanced receiving lines in one round trip
func (r *AdvancedStatsRepository) UpsertReceivingBatch(ctx context.Context, stats []*models.AdvancedReceivingStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertAdvancedReceivingQuery,
			s.PlayerID, s.Season, s.Week, s.Postseason,
			s.Receptions, s.Targets, s.Yards,
			s.AvgYAC, s.AvgExpectedYAC, s.AvgYACAboveExpectation,
			s.CatchPercentage, s.AvgCushion, s.AvgSeparation,
			s.PercentShareOfIntendedAirYards, s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

const upsertAdvancedRushingQuery = `
	INSERT INTO advanced_rushing_stats (
		player_id, season, week, postseason,
		rush_attempts, rush_yards, rush_touchdowns,
		efficiency, avg_rush_yards, expected_rush_yards,
		rush_yards_over_expected, rush_yards_over_expected_per_att,
		rush_pct_over_expected, avg_time_to_los,
		percent_attempts_gte_eight_defenders, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	ON CONFLICT (player_id, season, week, postseason) DO UPDATE SET
		rush_attempts = EXCLUDED.rush_attempts,
		rush_yards = EXCLUDED.rush_yards,
		rush_touchdowns = EXCLUDED.rush_touchdowns,
		efficiency = EXCLUDED.efficiency,
		avg_rush_yards = EXCLUDED.avg_rush_yards,
		expected_rush_yards = EXCLUDED.expected_rush_yards,
		rush_yards_over_expected = EXCLUDED.rush_yards_over_expected,
		rush_yards_over_expected_per_att = EXCLUDED.rush_yards_over_expected_per_att,
		rush_pct_over_expected = EXCLUDED.rush_pct_over_expected,
		avg_time_to_los = EXCLUDED.avg_time_to_los,
		percent_attempts_gte_eight_defenders = EXCLUDED.percent_attempts_gte_eight_defenders,
		updated_at = EXCLUDED.updated_at
`

// UpsertRushingBatch inserts or updates advanced rushing lines in one round trip
func (r *AdvancedStatsRepository) UpsertRushingBatch(ctx context.Context, stats []*models.AdvancedRushingStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertAdvancedRushingQuery,
			s.PlayerID, s.Season, s.Week, s.Postseason,
			s.RushAttempts, s.RushYards, s.RushTouchdowns,
			s.Efficiency, s.AvgRushYards, s.ExpectedRushYards,
			s.RushYardsOverExpected, s.RushYardsOverExpectedPerAtt,
			s.RushPctOverExpected, s.AvgTimeToLOS,
			s.PercentAttemptsGteEightDefenders, s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

const upsertAdvancedPassingQuery = `
	INSERT INTO advanced_passing_stats (
		player_id, season, week, postseason,
		attempts, completions, pass_yards, pass_touchdowns, interceptions,
		passer_rating, completion_percentage_above_expectation,
		expected_completion_percentage, aggressiveness, avg_time_to_throw,
		avg_intended_air_yards, avg_completed_air_yards, avg_air_distance,
		avg_air_yards_differential, avg_air_yards_to_sticks, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
	)
	ON CONFLICT (player_id, season, week, postseason) DO UPDATE SET
		attempts = EXCLUDED.attempts,
		completions = EXCLUDED.completions,
		pass_yards = EXCLUDED.pass_yards,
		pass_touchdowns = EXCLUDED.pass_touchdowns,
		interceptions = EXCLUDED.interceptions,
		passer_rating = EXCLUDED.passer_rating,
		completion_percentage_above_expectation = EXCLUDED.completion_percentage_above_expectation,
		expected_completion_percentage = EXCLUDED.expected_completion_percentage,
		aggressiveness = EXCLUDED.aggressiveness,
		avg_time_to_throw = EXCLUDED.avg_time_to_throw,
		avg_intended_air_yards = EXCLUDED.avg_intended_air_yards,
		avg_completed_air_yards = EXCLUDED.avg_completed_air_yards,
		avg_air_distance = EXCLUDED.avg_air_distance,
		avg_air_yards_differential = EXCLUDED.avg_air_yards_differential,
		avg_air_yards_to_sticks = EXCLUDED.avg_air_yards_to_sticks,
		updated_at = EXCLUDED.updated_at
`

// UpsertPassingBatch inserts or updates advanced passing lines in one round trip
func (r *AdvancedStatsRepository) UpsertPassingBatch(ctx context.Context, stats []*models.AdvancedPassingStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertAdvancedPassingQuery,
			s.PlayerID, s.Season, s.Week, s.Postseason,
			s.Attempts, s.Completions, s.PassYards, s.PassTouchdowns, s.Interceptions,
			s.PasserRating, s.CompletionPercentageAboveExpectation,
			s.ExpectedCompletionPercentage, s.Aggressiveness, s.AvgTimeToThrow,
			s.AvgIntendedAirYards, s.AvgCompletedAirYards, s.AvgAirDistance,
			s.AvgAirYardsDifferential, s.AvgAirYardsToSticks, s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// CountReceiving returns the total number of advanced receiving lines
func (r *AdvancedStatsRepository) CountReceiving(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM advanced_receiving_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count advanced receiving stats: %w", err)
	}
	return count, nil
}

// CountRushing returns the total number of advanced rushing lines
func (r *AdvancedStatsRepository) CountRushing(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM advanced_rushing_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count advanced rushing stats: %w", err)
	}
	return count, nil
}

// CountPassing returns the total number of advanced passing lines
func (r *AdvancedStatsRepository) CountPassing(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM advanced_passing_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count advanced passing stats: %w", err)
	}
	return count, nil
}
