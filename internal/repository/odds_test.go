package repository

import (
	"database/sql"
	"testing"
	"time"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOddsRepository_UpsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	odds := []*models.GameOdds{
		{
			OddsID:            "odds-300-dk",
			GameID:            300,
			Vendor:            "draftkings",
			SpreadHomeValue:   sql.NullFloat64{Float64: -3.5, Valid: true},
			SpreadHomeOdds:    sql.NullFloat64{Float64: -110, Valid: true},
			TotalValue:        sql.NullFloat64{Float64: 47.5, Valid: true},
			MoneylineHomeOdds: sql.NullFloat64{Float64: -180, Valid: true},
			UpdatedAt:         time.Now().UTC(),
		},
	}

	n, err := db.Odds.UpsertBatch(ctx, odds)
	require.NoError(t, err, "Should upsert odds")
	assert.Equal(t, 1, n)

	// Line moves, same odds_id updates in place
	odds[0].SpreadHomeValue = sql.NullFloat64{Float64: -4.5, Valid: true}
	n, err = db.Odds.UpsertBatch(ctx, odds)
	require.NoError(t, err, "Should upsert odds again")
	assert.Equal(t, 1, n)

	stored, err := db.Odds.GetByGameID(ctx, 300)
	require.NoError(t, err, "Should retrieve odds")
	require.Len(t, stored, 1, "Should have one line per odds_id")
	assert.Equal(t, -4.5, stored[0].SpreadHomeValue.Float64, "Spread should be updated")
	assert.Equal(t, "draftkings", stored[0].Vendor)
}

func TestPropRepository_UpsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	props := []*models.PlayerProp{
		{
			PropID:     "prop-400",
			GameID:     400,
			PlayerID:   9001,
			Vendor:     "draftkings",
			PropType:   "player_pass_yds",
			MarketType: sql.NullString{String: "over_under", Valid: true},
			LineValue:  sql.NullFloat64{Float64: 275.5, Valid: true},
			OverOdds:   sql.NullFloat64{Float64: -115, Valid: true},
			UnderOdds:  sql.NullFloat64{Float64: -105, Valid: true},
			UpdatedAt:  time.Now().UTC(),
		},
	}

	n, err := db.Props.UpsertBatch(ctx, props)
	require.NoError(t, err, "Should upsert props")
	assert.Equal(t, 1, n)

	props[0].LineValue = sql.NullFloat64{Float64: 280.5, Valid: true}
	n, err = db.Props.UpsertBatch(ctx, props)
	require.NoError(t, err, "Should upsert props again")
	assert.Equal(t, 1, n)

	count, err := db.Props.Count(ctx)
	require.NoError(t, err, "Should count props")
	assert.GreaterOrEqual(t, count, 1)
}
