package repository

import (
	"database/sql"
	"testing"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepository_Upsert(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	team := &models.Team{
		TeamID:       1,
		Name:         "Bills",
		FullName:     "Buffalo Bills",
		Abbreviation: "BUF",
		Conference:   sql.NullString{String: "AFC", Valid: true},
		Division:     sql.NullString{String: "EAST", Valid: true},
		Location:     sql.NullString{String: "Buffalo", Valid: true},
	}

	// Insert new team
	err := db.Teams.Upsert(ctx, team)
	require.NoError(t, err, "Should successfully insert team")

	// Verify team was created
	retrieved, err := db.Teams.GetByTeamID(ctx, team.TeamID)
	require.NoError(t, err, "Should retrieve inserted team")
	assert.Equal(t, team.Abbreviation, retrieved.Abbreviation, "Abbreviations should match")
	assert.Equal(t, team.FullName, retrieved.FullName, "Full names should match")

	// Update existing team
	team.Location = sql.NullString{String: "Orchard Park", Valid: true}
	err = db.Teams.Upsert(ctx, team)
	require.NoError(t, err, "Should successfully update team")

	// Verify update
	updated, err := db.Teams.GetByTeamID(ctx, team.TeamID)
	require.NoError(t, err, "Should retrieve updated team")
	assert.Equal(t, "Orchard Park", updated.Location.String, "Location should be updated")
}

func TestTeamRepository_UpsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	teams := []*models.Team{
		{TeamID: 10, Name: "Chiefs", FullName: "Kansas City Chiefs", Abbreviation: "KC", Conference: sql.NullString{String: "AFC", Valid: true}},
		{TeamID: 11, Name: "Eagles", FullName: "Philadelphia Eagles", Abbreviation: "PHI", Conference: sql.NullString{String: "NFC", Valid: true}},
		{TeamID: 12, Name: "Lions", FullName: "Detroit Lions", Abbreviation: "DET", Conference: sql.NullString{String: "NFC", Valid: true}},
	}

	n, err := db.Teams.UpsertBatch(ctx, teams)
	require.NoError(t, err, "Should upsert batch")
	assert.Equal(t, 3, n, "Should report all rows flushed")

	// Re-running the batch must not create new rows
	n, err = db.Teams.UpsertBatch(ctx, teams)
	require.NoError(t, err, "Should upsert batch again")
	assert.Equal(t, 3, n, "Should report all rows flushed")

	allTeams, err := db.Teams.List(ctx)
	require.NoError(t, err, "Should list teams")
	assert.GreaterOrEqual(t, len(allTeams), 3, "Should have at least 3 teams")
}

func TestTeamRepository_ListTeamIDs(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	teams := []*models.Team{
		{TeamID: 20, Name: "Jets", FullName: "New York Jets", Abbreviation: "NYJ"},
		{TeamID: 21, Name: "Giants", FullName: "New York Giants", Abbreviation: "NYG"},
	}

	_, err := db.Teams.UpsertBatch(ctx, teams)
	require.NoError(t, err, "Should insert teams")

	ids, err := db.Teams.ListTeamIDs(ctx)
	require.NoError(t, err, "Should list team ids")
	assert.Contains(t, ids, 20)
	assert.Contains(t, ids, 21)
}

func TestTeamRepository_GetNotFound(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	// Try to get non-existent team
	_, err := db.Teams.GetByTeamID(ctx, 99999)
	assert.Error(t, err, "Should return error for non-existent team")
}
