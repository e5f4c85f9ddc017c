package repository

import (
	"database/sql"
	"testing"
	"time"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandingRepository_UpsertIdempotent(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	before, err := db.Standings.Count(ctx)
	require.NoError(t, err, "Should count standings")

	first := []*models.Standing{
		{
			TeamID:        1,
			Season:        2024,
			Wins:          sql.NullInt32{Int32: 5, Valid: true},
			Losses:        sql.NullInt32{Int32: 2, Valid: true},
			OverallRecord: sql.NullString{String: "5-2", Valid: true},
			UpdatedAt:     time.Now().UTC(),
		},
	}

	n, err := db.Standings.UpsertBatch(ctx, first)
	require.NoError(t, err, "Should insert standing")
	assert.Equal(t, 1, n)

	// Same team and season with new numbers must update, not add
	second := []*models.Standing{
		{
			TeamID:        1,
			Season:        2024,
			Wins:          sql.NullInt32{Int32: 6, Valid: true},
			Losses:        sql.NullInt32{Int32: 2, Valid: true},
			OverallRecord: sql.NullString{String: "6-2", Valid: true},
			UpdatedAt:     time.Now().UTC(),
		},
	}

	n, err = db.Standings.UpsertBatch(ctx, second)
	require.NoError(t, err, "Should update standing")
	assert.Equal(t, 1, n)

	after, err := db.Standings.Count(ctx)
	require.NoError(t, err, "Should count standings")
	assert.Equal(t, before+1, after, "Re-syncing a team-season should not add rows")

	s, err := db.Standings.GetByTeamSeason(ctx, 1, 2024)
	require.NoError(t, err, "Should retrieve standing")
	assert.Equal(t, int32(6), s.Wins.Int32, "Wins should reflect the latest sync")
	assert.Equal(t, "6-2", s.OverallRecord.String)
}

func TestInjuryRepository_SnapshotReplace(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	injuries := []*models.Injury{
		{PlayerID: 7001, ReportDate: "2024-11-01", Status: sql.NullString{String: "Questionable", Valid: true}, UpdatedAt: time.Now().UTC()},
		{PlayerID: 7002, ReportDate: "2024-11-01", Status: sql.NullString{String: "Out", Valid: true}, UpdatedAt: time.Now().UTC()},
	}

	n, err := db.Injuries.UpsertBatch(ctx, injuries)
	require.NoError(t, err, "Should insert injuries")
	assert.Equal(t, 2, n)

	deleted, err := db.Injuries.DeleteAll(ctx)
	require.NoError(t, err, "Should clear injuries")
	assert.GreaterOrEqual(t, deleted, int64(2))

	count, err := db.Injuries.Count(ctx)
	require.NoError(t, err, "Should count injuries")
	assert.Equal(t, 0, count, "Snapshot clear should empty the table")
}

func TestRosterRepository_UpsertBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	entries := []*models.RosterEntry{
		{
			TeamID:    14,
			PlayerID:  8001,
			Season:    2025,
			Position:  sql.NullString{String: "WR", Valid: true},
			Depth:     sql.NullInt32{Int32: 1, Valid: true},
			UpdatedAt: time.Now().UTC(),
		},
	}

	n, err := db.Rosters.UpsertBatch(ctx, entries)
	require.NoError(t, err, "Should insert roster entry")
	assert.Equal(t, 1, n)

	// Same slot again must update in place
	entries[0].Depth = sql.NullInt32{Int32: 2, Valid: true}
	n, err = db.Rosters.UpsertBatch(ctx, entries)
	require.NoError(t, err, "Should update roster entry")
	assert.Equal(t, 1, n)
}
