package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// PlayerStatsRepository handles player stat line database operations
type PlayerStatsRepository struct {
	db *Database
}

const upsertPlayerSeasonStatQuery = `
	INSERT INTO player_season_stats (
		player_id, season, postseason, games_played,
		passing_completions, passing_attempts, passing_yards,
		passing_touchdowns, passing_interceptions, passing_yards_per_game,
		passing_completion_pct, qbr,
		rushing_attempts, rushing_yards, rushing_yards_per_game,
		rushing_touchdowns, rushing_fumbles, rushing_first_downs,
		receptions, receiving_yards, receiving_yards_per_game,
		receiving_touchdowns, receiving_targets, receiving_first_downs,
		fumbles_forced, fumbles_recovered, total_tackles,
		defensive_sacks, defensive_interceptions,
		updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		$29, $30
	)
	ON CONFLICT (player_id, season, postseason) DO UPDATE SET
		games_played = EXCLUDED.games_played,
		passing_completions = EXCLUDED.passing_completions,
		passing_attempts = EXCLUDED.passing_attempts,
		passing_yards = EXCLUDED.passing_yards,
		passing_touchdowns = EXCLUDED.passing_touchdowns,
		passing_interceptions = EXCLUDED.passing_interceptions,
		passing_yards_per_game = EXCLUDED.passing_yards_per_game,
		passing_completion_pct = EXCLUDED.passing_completion_pct,
		qbr = EXCLUDED.qbr,
		rushing_attempts = EXCLUDED.rushing_attempts,
		rushing_yards = EXCLUDED.rushing_yards,
		rushing_yards_per_game = EXCLUDED.rushing_yards_per_game,
		rushing_touchdowns = EXCLUDED.rushing_touchdowns,
		rushing_fumbles = EXCLUDED.rushing_fumbles,
		rushing_first_downs = EXCLUDED.rushing_first_downs,
		receptions = EXCLUDED.receptions,
		receiving_yards = EXCLUDED.receiving_yards,
		receiving_yards_per_game = EXCLUDED.receiving_yards_per_game,
		receiving_touchdowns = EXCLUDED.receiving_touchdowns,
		receiving_targets = EXCLUDED.receiving_targets,
		receiving_first_downs = EXCLUDED.receiving_first_downs,
		fumbles_forced = EXCLUDED.fumbles_forced,
		fumbles_recovered = EXCLUDED.fumbles_recovered,
		total_tackles = EXCLUDED.total_tackles,
		defensive_sacks = EXCLUDED.defensive_sacks,
		defensive_interceptions = EXCLUDED.defensive_interceptions,
		updated_at = EXCLUDED.updated_at
`

// UpsertSeasonBatch inserts or updates season stat lines in one round trip
func (r *PlayerStatsRepository) UpsertSeasonBatch(ctx context.Context, stats []*models.PlayerSeasonStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertPlayerSeasonStatQuery,
			s.PlayerID, s.Season, s.Postseason, s.GamesPlayed,
			s.PassingCompletions, s.PassingAttempts, s.PassingYards,
			s.PassingTouchdowns, s.PassingInterceptions, s.PassingYardsPerGame,
			s.PassingCompletionPct, s.QBR,
			s.RushingAttempts, s.RushingYards, s.RushingYardsPerGame,
			s.RushingTouchdowns, s.RushingFumbles, s.RushingFirstDowns,
			s.Receptions, s.ReceivingYards, s.ReceivingYardsPerGame,
			s.ReceivingTouchdowns, s.ReceivingTargets, s.ReceivingFirstDowns,
			s.FumblesForced, s.FumblesRecovered, s.TotalTackles,
			s.DefensiveSacks, s.DefensiveInterceptions,
			s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

const upsertPlayerGameStatQuery = `
	INSERT INTO player_game_stats (
		player_id, game_id, team_id, season, week,
		passing_completions, passing_attempts, passing_yards,
		passing_touchdowns, passing_interceptions, sacks, qbr, qb_rating,
		rushing_attempts, rushing_yards, rushing_touchdowns,
		receptions, receiving_yards, receiving_touchdowns, receiving_targets,
		fumbles, fumbles_lost, fumbles_recovered,
		total_tackles, defensive_sacks, defensive_interceptions,
		updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
	)
	ON CONFLICT (player_id, game_id) DO UPDATE SET
		team_id = EXCLUDED.team_id,
		season = EXCLUDED.season,
		week = EXCLUDED.week,
		passing_completions = EXCLUDED.passing_completions,
		passing_attempts = EXCLUDED.passing_attempts,
		passing_yards = EXCLUDED.passing_yards,
		passing_touchdowns = EXCLUDED.passing_touchdowns,
		passing_interceptions = EXCLUDED.passing_interceptions,
		sacks = EXCLUDED.sacks,
		qbr = EXCLUDED.qbr,
		qb_rating = EXCLUDED.qb_rating,
		rushing_attempts = EXCLUDED.rushing_attempts,
		rushing_yards = EXCLUDED.rushing_yards,
		rushing_touchdowns = EXCLUDED.rushing_touchdowns,
		receptions = EXCLUDED.receptions,
		receiving_yards = EXCLUDED.receiving_yards,
		receiving_touchdowns = EXCLUDED.receiving_touchdowns,
		receiving_targets = EXCLUDED.receiving_targets,
		fumbles = EXCLUDED.fumbles,
		fumbles_lost = EXCLUDED.fumbles_lost,
		fumbles_recovered = EXCLUDED.fumbles_recovered,
		total_tackles = EXCLUDED.total_tackles,
		defensive_sacks = EXCLUDED.defensive_sacks,
		defensive_interceptions = EXCLUDED.defensive_interceptions,
		updated_at = EXCLUDED.updated_at
`

// UpsertGameBatch inserts or updates per-game stat lines in one round trip
func (r *PlayerStatsRepository) UpsertGameBatch(ctx context.Context, stats []*models.PlayerGameStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertPlayerGameStatQuery,
			s.PlayerID, s.GameID, s.TeamID, s.Season, s.Week,
			s.PassingCompletions, s.PassingAttempts, s.PassingYards,
			s.PassingTouchdowns, s.PassingInterceptions, s.Sacks, s.QBR,
			s.QBRating,
			s.RushingAttempts, s.RushingYards, s.RushingTouchdowns,
			s.Receptions, s.ReceivingYards, s.ReceivingTouchdowns,
			s.ReceivingTargets,
			s.Fumbles, s.FumblesLost, s.FumblesRecovered,
			s.TotalTackles, s.DefensiveSacks, s.DefensiveInterceptions,
			s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// CountSeason returns the total number of season stat lines
func (r *PlayerStatsRepository) CountSeason(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_season_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count player season stats: %w", err)
	}
	return count, nil
}

// CountGame returns the total number of per-game stat lines
func (r *PlayerStatsRepository) CountGame(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_game_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count player game stats: %w", err)
	}
	return count, nil
}
