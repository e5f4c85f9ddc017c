package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// GameRepository handles game database operations
type GameRepository struct {
	db *Database
}

const upsertGameQuery = `
	INSERT INTO games (
		game_id, season, week, postseason, home_team_id, visitor_team_id,
		game_date, status, venue, summary,
		home_score, home_q1, home_q2, home_q3, home_q4, home_ot,
		visitor_score, visitor_q1, visitor_q2, visitor_q3, visitor_q4,
		visitor_ot, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23
	)
	ON CONFLICT (game_id) DO UPDATE SET
		season = EXCLUDED.season,
		week = EXCLUDED.week,
		postseason = EXCLUDED.postseason,
		home_team_id = EXCLUDED.home_team_id,
		visitor_team_id = EXCLUDED.visitor_team_id,
		game_date = EXCLUDED.game_date,
		status = EXCLUDED.status,
		venue = EXCLUDED.venue,
		summary = EXCLUDED.summary,
		home_score = EXCLUDED.home_score,
		home_q1 = EXCLUDED.home_q1,
		home_q2 = EXCLUDED.home_q2,
		home_q3 = EXCLUDED.home_q3,
		home_q4 = EXCLUDED.home_q4,
		home_ot = EXCLUDED.home_ot,
		visitor_score = EXCLUDED.visitor_score,
		visitor_q1 = EXCLUDED.visitor_q1,
		visitor_q2 = EXCLUDED.visitor_q2,
		visitor_q3 = EXCLUDED.visitor_q3,
		visitor_q4 = EXCLUDED.visitor_q4,
		visitor_ot = EXCLUDED.visitor_ot,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates games in one round trip
func (r *GameRepository) UpsertBatch(ctx context.Context, games []*models.Game) (int, error) {
	b := &pgx.Batch{}
	for _, g := range games {
		b.Queue(upsertGameQuery,
			g.GameID, g.Season, g.Week, g.Postseason, g.HomeTeamID,
			g.VisitorTeamID, g.GameDate, g.Status, g.Venue, g.Summary,
			g.HomeScore, g.HomeQ1, g.HomeQ2, g.HomeQ3, g.HomeQ4, g.HomeOT,
			g.VisitorScore, g.VisitorQ1, g.VisitorQ2, g.VisitorQ3,
			g.VisitorQ4, g.VisitorOT, g.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// GetByGameID retrieves a game by its provider GameID
func (r *GameRepository) GetByGameID(ctx context.Context, gameID int) (*models.Game, error) {
	query := `
		SELECT id, game_id, season, week, postseason, home_team_id,
		       visitor_team_id, game_date, status, venue, summary,
		       home_score, home_q1, home_q2, home_q3, home_q4, home_ot,
		       visitor_score, visitor_q1, visitor_q2, visitor_q3, visitor_q4,
		       visitor_ot, created_at, updated_at
		FROM games
		WHERE game_id = $1
	`

	var g models.Game
	err := r.db.Pool.QueryRow(ctx, query, gameID).Scan(
		&g.ID, &g.GameID, &g.Season, &g.Week, &g.Postseason, &g.HomeTeamID,
		&g.VisitorTeamID, &g.GameDate, &g.Status, &g.Venue, &g.Summary,
		&g.HomeScore, &g.HomeQ1, &g.HomeQ2, &g.HomeQ3, &g.HomeQ4, &g.HomeOT,
		&g.VisitorScore, &g.VisitorQ1, &g.VisitorQ2, &g.VisitorQ3,
		&g.VisitorQ4, &g.VisitorOT, &g.CreatedAt, &g.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("game not found: game_id=%d", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &g, nil
}

// ListGameIDs retrieves provider game ids for the given seasons
func (r *GameRepository) ListGameIDs(ctx context.Context, seasons []int) ([]int, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT game_id FROM games WHERE season = ANY($1) ORDER BY game_id`,
		seasons,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list game ids: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ListUpcomingGameIDs retrieves game ids for games that have not finished yet
func (r *GameRepository) ListUpcomingGameIDs(ctx context.Context) ([]int, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT game_id FROM games
		WHERE status IS DISTINCT FROM 'Final'
		  AND game_date >= NOW() - INTERVAL '1 day'
		ORDER BY game_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming game ids: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows pgx.Rows) ([]int, error) {
	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ids: %w", err)
	}
	return ids, nil
}

// Count returns the total number of games
func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}
