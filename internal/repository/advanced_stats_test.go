package repository

import (
	"database/sql"
	"testing"
	"time"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvancedStatsRepository_UpsertReceivingBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	stats := []*models.AdvancedReceivingStat{
		{
			PlayerID:      7001,
			Season:        2024,
			Week:          0,
			Postseason:    false,
			Receptions:    sql.NullInt32{Int32: 84, Valid: true},
			Targets:       sql.NullInt32{Int32: 121, Valid: true},
			AvgYAC:        sql.NullFloat64{Float64: 5.6, Valid: true},
			AvgSeparation: sql.NullFloat64{Float64: 2.9, Valid: true},
			UpdatedAt:     time.Now().UTC(),
		},
	}

	n, err := db.Advanced.UpsertReceivingBatch(ctx, stats)
	require.NoError(t, err, "Should insert advanced receiving stat")
	assert.Equal(t, 1, n)

	// A refreshed aggregate overwrites the same player-season-week line
	stats[0].Receptions = sql.NullInt32{Int32: 89, Valid: true}
	n, err = db.Advanced.UpsertReceivingBatch(ctx, stats)
	require.NoError(t, err, "Should update advanced receiving stat")
	assert.Equal(t, 1, n)

	count, err := db.Advanced.CountReceiving(ctx)
	require.NoError(t, err, "Should count advanced receiving stats")
	assert.GreaterOrEqual(t, count, 1)
}

func TestAdvancedStatsRepository_UpsertRushingBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	stats := []*models.AdvancedRushingStat{
		{
			PlayerID:              7002,
			Season:                2024,
			Week:                  0,
			Postseason:            false,
			RushAttempts:          sql.NullInt32{Int32: 233, Valid: true},
			RushYards:             sql.NullInt32{Int32: 1104, Valid: true},
			RushYardsOverExpected: sql.NullFloat64{Float64: 211.4, Valid: true},
			UpdatedAt:             time.Now().UTC(),
		},
	}

	n, err := db.Advanced.UpsertRushingBatch(ctx, stats)
	require.NoError(t, err, "Should insert advanced rushing stat")
	assert.Equal(t, 1, n)

	// Regular and postseason aggregates are distinct rows
	post := []*models.AdvancedRushingStat{
		{
			PlayerID:     7002,
			Season:       2024,
			Week:         0,
			Postseason:   true,
			RushAttempts: sql.NullInt32{Int32: 41, Valid: true},
			UpdatedAt:    time.Now().UTC(),
		},
	}
	n, err = db.Advanced.UpsertRushingBatch(ctx, post)
	require.NoError(t, err, "Should insert postseason rushing stat")
	assert.Equal(t, 1, n)
}

func TestAdvancedStatsRepository_UpsertPassingBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	stats := []*models.AdvancedPassingStat{
		{
			PlayerID:       7003,
			Season:         2024,
			Week:           0,
			Postseason:     false,
			Attempts:       sql.NullInt32{Int32: 541, Valid: true},
			Completions:    sql.NullInt32{Int32: 372, Valid: true},
			PasserRating:   sql.NullFloat64{Float64: 101.8, Valid: true},
			AvgTimeToThrow: sql.NullFloat64{Float64: 2.71, Valid: true},
			UpdatedAt:      time.Now().UTC(),
		},
	}

	n, err := db.Advanced.UpsertPassingBatch(ctx, stats)
	require.NoError(t, err, "Should insert advanced passing stat")
	assert.Equal(t, 1, n)

	n, err = db.Advanced.UpsertPassingBatch(ctx, stats)
	require.NoError(t, err, "Should upsert advanced passing stat again")
	assert.Equal(t, 1, n)

	count, err := db.Advanced.CountPassing(ctx)
	require.NoError(t, err, "Should count advanced passing stats")
	assert.GreaterOrEqual(t, count, 1)
}
