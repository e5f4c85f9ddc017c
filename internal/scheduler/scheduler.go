package scheduler

import (
	"context"
	"fmt"
	"time"

	"nflgoat/ingestion/internal/config"
	"nflgoat/ingestion/internal/ingest"
	"nflgoat/ingestion/internal/metrics"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler manages background sync runs:
// - Nightly full sync of every dataset during off-hours
// - Periodic betting data refresh between full syncs
type Scheduler struct {
	cfg      *config.Config
	pipeline *ingest.Pipeline
	cron     *cron.Cron
	ticker   *time.Ticker
	stopChan chan struct{}
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cfg *config.Config, pipeline *ingest.Pipeline) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		pipeline: pipeline,
		cron:     cron.New(),
		stopChan: make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Msg("Scheduler starting...")

	// Setup nightly full sync cron job
	if _, err := s.cron.AddFunc(s.cfg.NightlySyncCron, func() {
		log.Info().Msg("Running nightly sync...")
		if err := s.runFullSync(ctx); err != nil {
			log.Error().Err(err).Msg("Nightly sync failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule nightly sync: %w", err)
	}

	s.cron.Start()
	log.Info().
		Str("schedule", s.cfg.NightlySyncCron).
		Msg("Nightly sync scheduled")

	// Betting lines move constantly, so odds refresh on a short interval
	s.ticker = time.NewTicker(s.cfg.OddsRefreshInterval)
	log.Info().
		Dur("interval", s.cfg.OddsRefreshInterval).
		Msg("Odds refresh started")

	go s.pollOdds(ctx)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Info().Msg("Stopping scheduler...")

	if s.cron != nil {
		s.cron.Stop()
	}

	if s.ticker != nil {
		s.ticker.Stop()
	}

	close(s.stopChan)
	log.Info().Msg("Scheduler stopped")
}

func (s *Scheduler) pollOdds(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Context cancelled, stopping odds refresh")
			return
		case <-s.stopChan:
			log.Info().Msg("Stop signal received, stopping odds refresh")
			return
		case <-s.ticker.C:
			if err := s.runOddsRefresh(ctx); err != nil {
				log.Error().Err(err).Msg("Odds refresh failed")
			}
		}
	}
}

func (s *Scheduler) runFullSync(ctx context.Context) error {
	start := time.Now()

	summary, err := s.pipeline.Run(ctx)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordSync("full", "error", elapsed.Seconds())
		return err
	}

	status := "success"
	if failed := summary.Failed(); len(failed) > 0 {
		status = "partial"
		log.Warn().
			Int("failed", len(failed)).
			Interface("datasets", failed).
			Msg("Nightly sync finished with dataset failures")
	}
	metrics.RecordSync("full", status, elapsed.Seconds())

	log.Info().
		Dur("duration", elapsed).
		Int("datasets", len(summary.Results)).
		Msg("Nightly sync complete")
	return nil
}

func (s *Scheduler) runOddsRefresh(ctx context.Context) error {
	start := time.Now()

	summary, err := s.pipeline.RunOdds(ctx)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordSync("odds", "error", elapsed.Seconds())
		return err
	}

	status := "success"
	if len(summary.Failed()) > 0 {
		status = "partial"
	}
	metrics.RecordSync("odds", status, elapsed.Seconds())

	log.Debug().
		Dur("duration", elapsed).
		Msg("Odds refresh complete")
	return nil
}
