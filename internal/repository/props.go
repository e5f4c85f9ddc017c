package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// PropRepository handles player prop database operations
type PropRepository struct {
	db *Database
}

const upsertPropQuery = `
	INSERT INTO player_props (
		prop_id, game_id, player_id, vendor, prop_type,
		market_type, line_value, over_odds, under_odds,
		updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (prop_id) DO UPDATE SET
		game_id = EXCLUDED.game_id,
		player_id = EXCLUDED.player_id,
		vendor = EXCLUDED.vendor,
		prop_type = EXCLUDED.prop_type,
		market_type = EXCLUDED.market_type,
		line_value = EXCLUDED.line_value,
		over_odds = EXCLUDED.over_odds,
		under_odds = EXCLUDED.under_odds,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates player props in one round trip
func (r *PropRepository) UpsertBatch(ctx context.Context, props []*models.PlayerProp) (int, error) {
	b := &pgx.Batch{}
	for _, p := range props {
		b.Queue(upsertPropQuery,
			p.PropID, p.GameID, p.PlayerID, p.Vendor, p.PropType,
			p.MarketType, p.LineValue, p.OverOdds, p.UnderOdds,
			p.UpdatedAt,
		)
	}
	return r.db.execBatch(ctx, b)
}

// Count returns the total number of player props
func (r *PropRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM player_props`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count player props: %w", err)
	}
	return count, nil
}
