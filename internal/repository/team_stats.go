package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// TeamStatsRepository handles team stat line database operations
type TeamStatsRepository struct {
	db *Database
}

const upsertTeamSeasonStatQuery = `
	INSERT INTO team_season_stats (
		team_id, season, season_type, postseason, games_played,
		total_points, total_points_per_game,
		total_offensive_yards, total_offensive_yards_per_game,
		passing_attempts, passing_completions, passing_yards,
		passing_touchdowns, passing_interceptions, net_passing_yards,
		rushing_attempts, rushing_yards, rushing_touchdowns,
		third_down_conv_pct, turnovers, turnover_differential,
		opp_total_points, opp_total_points_per_game,
		opp_total_offensive_yards, opp_passing_yards,
		opp_rushing_yards, opp_rushing_yards_per_game,
		stats_json, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
	)
	ON CONFLICT (team_id, season, postseason) DO UPDATE SET
		season_type = EXCLUDED.season_type,
		games_played = EXCLUDED.games_played,
		total_points = EXCLUDED.total_points,
		total_points_per_game = EXCLUDED.total_points_per_game,
		total_offensive_yards = EXCLUDED.total_offensive_yards,
		total_offensive_yards_per_game = EXCLUDED.total_offensive_yards_per_game,
		passing_attempts = EXCLUDED.passing_attempts,
		passing_completions = EXCLUDED.passing_completions,
		passing_yards = EXCLUDED.passing_yards,
		passing_touchdowns = EXCLUDED.passing_touchdowns,
		passing_interceptions = EXCLUDED.passing_interceptions,
		net_passing_yards = EXCLUDED.net_passing_yards,
		rushing_attempts = EXCLUDED.rushing_attempts,
		rushing_yards = EXCLUDED.rushing_yards,
		rushing_touchdowns = EXCLUDED.rushing_touchdowns,
		third_down_conv_pct = EXCLUDED.third_down_conv_pct,
		turnovers = EXCLUDED.turnovers,
		turnover_differential = EXCLUDED.turnover_differential,
		opp_total_points = EXCLUDED.opp_total_points,
		opp_total_points_per_game = EXCLUDED.opp_total_points_per_game,
		opp_total_offensive_yards = EXCLUDED.opp_total_offensive_yards,
		opp_passing_yards = EXCLUDED.opp_passing_yards,
		opp_rushing_yards = EXCLUDED.opp_rushing_yards,
		opp_rushing_yards_per_game = EXCLUDED.opp_rushing_yards_per_game,
		stats_json = EXCLUDED.stats_json,
		updated_at = EXCLUDED.updated_at
`

// UpsertSeasonBatch inserts or updates team season lines in one round trip
func (r *TeamStatsRepository) UpsertSeasonBatch(ctx context.Context, stats []*models.TeamSeasonStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertTeamSeasonStatQuery,
			s.TeamID, s.Season, s.SeasonType, s.Postseason, s.GamesPlayed,
			s.TotalPoints, s.TotalPointsPerGame,
			s.TotalOffensiveYards, s.TotalOffensiveYardsPerGame,
			s.PassingAttempts, s.PassingCompletions, s.PassingYards,
			s.PassingTouchdowns, s.PassingInterceptions, s.NetPassingYards,
			s.RushingAttempts, s.RushingYards, s.RushingTouchdowns,
			s.ThirdDownConvPct, s.Turnovers, s.TurnoverDifferential,
			s.OppTotalPoints, s.OppTotalPointsPerGame,
			s.OppTotalOffensiveYards, s.OppPassingYards,
			s.OppRushingYards, s.OppRushingYardsPerGame,
			s.StatsJSON, s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

const upsertTeamGameStatQuery = `
	INSERT INTO team_game_stats (
		team_id, game_id, season, week, home_away,
		first_downs, first_downs_passing, first_downs_rushing,
		first_downs_penalty,
		third_down_efficiency, third_down_conversions, third_down_attempts,
		fourth_down_efficiency, fourth_down_conversions, fourth_down_attempts,
		total_offensive_plays, total_yards, yards_per_play, total_drives,
		net_passing_yards, passing_completions, passing_attempts,
		yards_per_pass, sacks, sack_yards_lost,
		rushing_yards, rushing_attempts, yards_per_rush_attempt,
		red_zone_scores, red_zone_attempts, penalties, penalty_yards,
		turnovers, fumbles_lost, interceptions_thrown, defensive_touchdowns,
		possession_time, possession_time_seconds,
		updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		$29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39
	)
	ON CONFLICT (team_id, game_id) DO UPDATE SET
		season = EXCLUDED.season,
		week = EXCLUDED.week,
		home_away = EXCLUDED.home_away,
		first_downs = EXCLUDED.first_downs,
		first_downs_passing = EXCLUDED.first_downs_passing,
		first_downs_rushing = EXCLUDED.first_downs_rushing,
		first_downs_penalty = EXCLUDED.first_downs_penalty,
		third_down_efficiency = EXCLUDED.third_down_efficiency,
		third_down_conversions = EXCLUDED.third_down_conversions,
		third_down_attempts = EXCLUDED.third_down_attempts,
		fourth_down_efficiency = EXCLUDED.fourth_down_efficiency,
		fourth_down_conversions = EXCLUDED.fourth_down_conversions,
		fourth_down_attempts = EXCLUDED.fourth_down_attempts,
		total_offensive_plays = EXCLUDED.total_offensive_plays,
		total_yards = EXCLUDED.total_yards,
		yards_per_play = EXCLUDED.yards_per_play,
		total_drives = EXCLUDED.total_drives,
		net_passing_yards = EXCLUDED.net_passing_yards,
		passing_completions = EXCLUDED.passing_completions,
		passing_attempts = EXCLUDED.passing_attempts,
		yards_per_pass = EXCLUDED.yards_per_pass,
		sacks = EXCLUDED.sacks,
		sack_yards_lost = EXCLUDED.sack_yards_lost,
		rushing_yards = EXCLUDED.rushing_yards,
		rushing_attempts = EXCLUDED.rushing_attempts,
		yards_per_rush_attempt = EXCLUDED.yards_per_rush_attempt,
		red_zone_scores = EXCLUDED.red_zone_scores,
		red_zone_attempts = EXCLUDED.red_zone_attempts,
		penalties = EXCLUDED.penalties,
		penalty_yards = EXCLUDED.penalty_yards,
		turnovers = EXCLUDED.turnovers,
		fumbles_lost = EXCLUDED.fumbles_lost,
		interceptions_thrown = EXCLUDED.interceptions_thrown,
		defensive_touchdowns = EXCLUDED.defensive_touchdowns,
		possession_time = EXCLUDED.possession_time,
		possession_time_seconds = EXCLUDED.possession_time_seconds,
		updated_at = EXCLUDED.updated_at
`

// UpsertGameBatch inserts or updates team box score lines in one round trip
func (r *TeamStatsRepository) UpsertGameBatch(ctx context.Context, stats []*models.TeamGameStat) (int, error) {
	b := &pgx.Batch{}
	for _, s := range stats {
		b.Queue(upsertTeamGameStatQuery,
			s.TeamID, s.GameID, s.Season, s.Week, s.HomeAway,
			s.FirstDowns, s.FirstDownsPassing, s.FirstDownsRushing,
			s.FirstDownsPenalty,
			s.ThirdDownEff, s.ThirdDownConvs, s.ThirdDownAttempts,
			s.FourthDownEff, s.FourthDownConvs, s.FourthDownAttempts,
			s.TotalOffensivePlays, s.TotalYards, s.YardsPerPlay, s.TotalDrives,
			s.NetPassingYards, s.PassingCompletions, s.PassingAttempts,
			s.YardsPerPass, s.Sacks, s.SackYardsLost,
			s.RushingYards, s.RushingAttempts, s.YardsPerRushAttempt,
			s.RedZoneScores, s.RedZoneAttempts, s.Penalties, s.PenaltyYards,
			s.Turnovers, s.FumblesLost, s.InterceptionsThrown,
			s.DefensiveTouchdowns,
			s.PossessionTime, s.PossessionTimeSeconds,
			s.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// CountSeason returns the total number of team season lines
func (r *TeamStatsRepository) CountSeason(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_season_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count team season stats: %w", err)
	}
	return count, nil
}

// CountGame returns the total number of team box score lines
func (r *TeamStatsRepository) CountGame(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_game_stats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count team game stats: %w", err)
	}
	return count, nil
}
