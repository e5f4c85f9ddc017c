package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// OddsRepository handles game odds database operations
type OddsRepository struct {
	db *Database
}

const upsertGameOddsQuery = `
	INSERT INTO game_odds (
		odds_id, game_id, vendor,
		spread_home_value, spread_home_odds, spread_away_value, spread_away_odds,
		total_value, total_over_odds, total_under_odds,
		moneyline_home_odds, moneyline_away_odds,
		updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (odds_id) DO UPDATE SET
		game_id = EXCLUDED.game_id,
		vendor = EXCLUDED.vendor,
		spread_home_value = EXCLUDED.spread_home_value,
		spread_home_odds = EXCLUDED.spread_home_odds,
		spread_away_value = EXCLUDED.spread_away_value,
		spread_away_odds = EXCLUDED.spread_away_odds,
		total_value = EXCLUDED.total_value,
		total_over_odds = EXCLUDED.total_over_odds,
		total_under_odds = EXCLUDED.total_under_odds,
		moneyline_home_odds = EXCLUDED.moneyline_home_odds,
		moneyline_away_odds = EXCLUDED.moneyline_away_odds,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates game odds in one round trip
func (r *OddsRepository) UpsertBatch(ctx context.Context, odds []*models.GameOdds) (int, error) {
	b := &pgx.Batch{}
	for _, o := range odds {
		b.Queue(upsertGameOddsQuery,
			o.OddsID, o.GameID, o.Vendor,
			o.SpreadHomeValue, o.SpreadHomeOdds, o.SpreadAwayValue,
			o.SpreadAwayOdds,
			o.TotalValue, o.TotalOverOdds, o.TotalUnderOdds,
			o.MoneylineHomeOdds, o.MoneylineAwayOdds,
			o.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// GetByGameID retrieves all vendor lines for one game
func (r *OddsRepository) GetByGameID(ctx context.Context, gameID int) ([]*models.GameOdds, error) {
	query := `
		SELECT id, odds_id, game_id, vendor,
		       spread_home_value, spread_home_odds, spread_away_value,
		       spread_away_odds,
		       total_value, total_over_odds, total_under_odds,
		       moneyline_home_odds, moneyline_away_odds,
		       created_at, updated_at
		FROM game_odds
		WHERE game_id = $1
		ORDER BY vendor
	`

	rows, err := r.db.Pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game odds: %w", err)
	}
	defer rows.Close()

	var out []*models.GameOdds
	for rows.Next() {
		var o models.GameOdds
		err := rows.Scan(
			&o.ID, &o.OddsID, &o.GameID, &o.Vendor,
			&o.SpreadHomeValue, &o.SpreadHomeOdds, &o.SpreadAwayValue,
			&o.SpreadAwayOdds,
			&o.TotalValue, &o.TotalOverOdds, &o.TotalUnderOdds,
			&o.MoneylineHomeOdds, &o.MoneylineAwayOdds,
			&o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game odds: %w", err)
		}
		out = append(out, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game odds: %w", err)
	}

	return out, nil
}

// Count returns the total number of odds rows
func (r *OddsRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM game_odds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count game odds: %w", err)
	}
	return count, nil
}
