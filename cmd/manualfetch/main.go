// Command manualfetch runs a one-shot sync of selected datasets. It exists
// for operators: backfilling a season, re-pulling a dataset that failed
// overnight, or priming a fresh database without starting the worker.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"nflgoat/ingestion/internal/cache"
	"nflgoat/ingestion/internal/client"
	"nflgoat/ingestion/internal/config"
	"nflgoat/ingestion/internal/ingest"
	"nflgoat/ingestion/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	datasetsFlag := flag.String("datasets", "", "comma-separated datasets to sync (default: all)")
	seasonsFlag := flag.String("seasons", "", "comma-separated seasons (default: configured seasons)")
	timeoutFlag := flag.Duration("timeout", 2*time.Hour, "overall run timeout")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg := config.MustLoad()

	seasons := cfg.Seasons
	if *seasonsFlag != "" {
		parsed, err := parseSeasons(*seasonsFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid -seasons")
		}
		seasons = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	api := client.NewClient(cfg.BallDontLieBaseURL, cfg.BallDontLieAPIKey, client.Options{
		Timeout:     cfg.BallDontLieTimeout,
		MinInterval: cfg.BallDontLieMinInterval,
		MaxRetries:  cfg.BallDontLieMaxRetries,
		RetryDelay:  cfg.BallDontLieRetryDelay,
		PerPage:     cfg.BallDontLiePerPage,
	})

	db, err := repository.NewDatabase(ctx, repository.Config{URL: cfg.DatabaseDSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cache.Config{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	pipeline := ingest.NewPipeline(cfg, api, db, redisCache)

	var datasets []ingest.Dataset
	if *datasetsFlag != "" {
		for _, name := range strings.Split(*datasetsFlag, ",") {
			datasets = append(datasets, ingest.Dataset(strings.TrimSpace(name)))
		}
	}

	summary, err := pipeline.RunDatasets(ctx, seasons, datasets)
	if err != nil {
		log.Fatal().Err(err).Msg("Sync failed")
	}

	for _, r := range summary.Results {
		evt := log.Info()
		if r.Err != nil {
			evt = log.Error().Err(r.Err)
		}
		evt.
			Str("dataset", string(r.Dataset)).
			Int("upserted", r.Upserted).
			Int("rejected", r.Rejected).
			Int("failed_units", len(r.Failures)).
			Bool("aborted", r.Aborted).
			Msg("Dataset result")
	}

	if failed := summary.Failed(); len(failed) > 0 {
		log.Error().Interface("datasets", failed).Msg("Sync finished with failures")
		os.Exit(1)
	}

	log.Info().
		Dur("duration", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("Sync complete")
}

func parseSeasons(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		season, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, season)
	}
	return out, nil
}
