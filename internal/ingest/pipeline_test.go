package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nflgoat/ingestion/internal/client"
	"nflgoat/ingestion/internal/config"
	"nflgoat/ingestion/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline(t *testing.T, handler http.Handler) *Pipeline {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api := client.NewClient(server.URL, "test-key", client.Options{
		Timeout:     5 * time.Second,
		MinInterval: time.Nanosecond,
		MaxRetries:  1,
		RetryDelay:  time.Millisecond,
	})
	cfg := &config.Config{
		Seasons:        []int{2025},
		ChunkSize:      500,
		AbortThreshold: 25,
	}
	return NewPipeline(cfg, api, &repository.Database{}, nil)
}

func TestSyncPropsForGamesRecordsPerGameFailures(t *testing.T) {
	var calls int32
	p := testPipeline(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))

	var res Result
	err := p.syncPropsForGames(context.Background(), []int{1, 2, 3}, &res)

	// Per-game failures never fail the dataset, but each one must land in
	// the result instead of only in the logs.
	require.NoError(t, err)
	assert.Equal(t, 0, res.Upserted)
	require.Len(t, res.Failures, 3)
	assert.Equal(t, "game 1", res.Failures[0].Unit)
	assert.Contains(t, res.Failures[0].Reason, "500")
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestSyncPropsForGamesPartialFailure(t *testing.T) {
	p := testPipeline(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("game_id") == "2" {
			http.Error(w, "upstream down", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[],"meta":{}}`)
	}))

	var res Result
	err := p.syncPropsForGames(context.Background(), []int{1, 2, 3}, &res)

	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "game 2", res.Failures[0].Unit)
}

func TestSyncAdvancedUnitsRecordsFailures(t *testing.T) {
	p := testPipeline(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	var res Result
	err := p.syncAdvancedUnits(context.Background(), []int{2024, 2025}, &res, "receiving",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			return fmt.Errorf("season %d unavailable", season)
		})

	require.NoError(t, err)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, "receiving season 2024 postseason=false", res.Failures[0].Unit)
	assert.Equal(t, "receiving season 2025 postseason=false", res.Failures[1].Unit)
}

func TestSyncAdvancedUnitsPropagatesAbort(t *testing.T) {
	p := testPipeline(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var res Result
	err := p.syncAdvancedUnits(context.Background(), []int{2024, 2025}, &res, "rushing",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			return fmt.Errorf("stream ended: %w", ErrTooManyInvalid)
		})

	// A validation abort is a data problem, not a per-unit fetch problem,
	// and must stop the dataset.
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyInvalid))
	assert.Empty(t, res.Failures)
}

func TestSyncAdvancedUnitsPostseasonPass(t *testing.T) {
	p := testPipeline(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	p.cfg.AdvancedPostseason = true

	var units []string
	var res Result
	err := p.syncAdvancedUnits(context.Background(), []int{2025}, &res, "passing",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			units = append(units, fmt.Sprintf("season=%d week=%d postseason=%t", season, week, postseason))
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"season=2025 week=0 postseason=false",
		"season=2025 week=0 postseason=true",
	}, units)
}
