package repository

import (
	"database/sql"
	"testing"
	"time"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame(gameID, season, week, home, visitor int) *models.Game {
	return &models.Game{
		GameID:        gameID,
		Season:        season,
		Week:          week,
		HomeTeamID:    home,
		VisitorTeamID: visitor,
		GameDate:      sql.NullTime{Time: time.Date(season, 9, 7, 17, 0, 0, 0, time.UTC), Valid: true},
		Status:        sql.NullString{String: "Final", Valid: true},
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestGameRepository_UpsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	games := []*models.Game{
		testGame(100, 2024, 1, 1, 2),
		testGame(101, 2024, 1, 3, 4),
	}

	n, err := db.Games.UpsertBatch(ctx, games)
	require.NoError(t, err, "Should upsert games")
	assert.Equal(t, 2, n)

	// Second run updates in place
	games[0].HomeScore = sql.NullInt32{Int32: 31, Valid: true}
	games[0].VisitorScore = sql.NullInt32{Int32: 17, Valid: true}
	n, err = db.Games.UpsertBatch(ctx, games)
	require.NoError(t, err, "Should upsert games again")
	assert.Equal(t, 2, n)

	g, err := db.Games.GetByGameID(ctx, 100)
	require.NoError(t, err, "Should retrieve game")
	assert.Equal(t, int32(31), g.HomeScore.Int32, "Score should be updated")
	assert.Equal(t, 2024, g.Season)
}

func TestGameRepository_ListGameIDs(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	games := []*models.Game{
		testGame(200, 2024, 2, 1, 2),
		testGame(201, 2025, 1, 3, 4),
	}

	_, err := db.Games.UpsertBatch(ctx, games)
	require.NoError(t, err, "Should insert games")

	ids, err := db.Games.ListGameIDs(ctx, []int{2024})
	require.NoError(t, err, "Should list game ids")
	assert.Contains(t, ids, 200)
	assert.NotContains(t, ids, 201, "Other seasons should be filtered out")
}

func TestGameRepository_GetNotFound(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	_, err := db.Games.GetByGameID(ctx, 999999)
	assert.Error(t, err, "Should return error for non-existent game")
}
