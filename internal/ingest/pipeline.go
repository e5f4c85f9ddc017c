package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"nflgoat/ingestion/internal/cache"
	"nflgoat/ingestion/internal/client"
	"nflgoat/ingestion/internal/config"
	"nflgoat/ingestion/internal/metrics"
	"nflgoat/ingestion/internal/models"
	"nflgoat/ingestion/internal/repository"

	"github.com/rs/zerolog/log"
)

// Dataset names one syncable slice of the feed
type Dataset string

const (
	DatasetTeams             Dataset = "teams"
	DatasetPlayers           Dataset = "players"
	DatasetGames             Dataset = "games"
	DatasetPlayerSeasonStats Dataset = "player_season_stats"
	DatasetPlayerGameStats   Dataset = "player_game_stats"
	DatasetAdvReceiving      Dataset = "advanced_receiving"
	DatasetAdvRushing        Dataset = "advanced_rushing"
	DatasetAdvPassing        Dataset = "advanced_passing"
	DatasetTeamSeasonStats   Dataset = "team_season_stats"
	DatasetTeamGameStats     Dataset = "team_game_stats"
	DatasetStandings         Dataset = "standings"
	DatasetInjuries          Dataset = "injuries"
	DatasetRosters           Dataset = "rosters"
	DatasetPlayerProps       Dataset = "player_props"
	DatasetGameOdds          Dataset = "game_odds"
)

// rankedVendors is the prop fetch list, best book first
var rankedVendors = []string{"draftkings", "fanduel", "betmgm", "bet365", "betway"}

const markActiveChunk = 200

// advancedFullSeasonWeek asks the advanced stat endpoints for the
// full-season aggregate
const advancedFullSeasonWeek = 0

// UnitFailure records one fetch unit that failed inside a dataset sync. The
// dataset keeps going past a failed unit, so the failure is surfaced here
// instead of only in the logs.
type UnitFailure struct {
	Unit   string `json:"unit"`
	Reason string `json:"reason"`
}

// Result is the outcome of one dataset sync
type Result struct {
	Dataset  Dataset       `json:"dataset"`
	Upserted int           `json:"upserted"`
	Rejected int           `json:"rejected"`
	Aborted  bool          `json:"aborted,omitempty"`
	Failures []UnitFailure `json:"failures,omitempty"`
	Error    string        `json:"error,omitempty"`

	Err error `json:"-"`
}

func (r *Result) addFailure(unit string, err error) {
	r.Failures = append(r.Failures, UnitFailure{Unit: unit, Reason: err.Error()})
}

// Summary is the outcome of a full sync run
type Summary struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Results    []Result  `json:"results"`
}

// Failed lists the datasets that ended in error
func (s *Summary) Failed() []Dataset {
	var out []Dataset
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r.Dataset)
		}
	}
	return out
}

// Pipeline pulls every dataset from the feed into the database. Datasets run
// sequentially and a failure in one never stops the rest.
type Pipeline struct {
	cfg   *config.Config
	api   *client.Client
	db    *repository.Database
	cache *cache.RedisCache // may be nil
}

// NewPipeline wires a pipeline. cache may be nil to run without one.
func NewPipeline(cfg *config.Config, api *client.Client, db *repository.Database, rc *cache.RedisCache) *Pipeline {
	return &Pipeline{cfg: cfg, api: api, db: db, cache: rc}
}

type step struct {
	dataset Dataset
	fn      func(context.Context, []int, *Result) error
}

// steps returns every dataset in sync order. Order matters: stats and
// betting data reference teams, players, and games ingested earlier.
func (p *Pipeline) steps() []step {
	return []step{
		{DatasetTeams, p.syncTeams},
		{DatasetPlayers, p.syncPlayers},
		{DatasetGames, p.syncGames},
		{DatasetPlayerSeasonStats, p.syncPlayerSeasonStats},
		{DatasetPlayerGameStats, p.syncPlayerGameStats},
		{DatasetAdvReceiving, p.syncAdvancedReceiving},
		{DatasetAdvRushing, p.syncAdvancedRushing},
		{DatasetAdvPassing, p.syncAdvancedPassing},
		{DatasetTeamSeasonStats, p.syncTeamSeasonStats},
		{DatasetTeamGameStats, p.syncTeamGameStats},
		{DatasetStandings, p.syncStandings},
		{DatasetInjuries, p.syncInjuries},
		{DatasetRosters, p.syncRosters},
		{DatasetPlayerProps, p.syncPlayerProps},
		{DatasetGameOdds, p.syncGameOdds},
	}
}

// Run executes a full sync for the configured seasons
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	return p.run(ctx, p.cfg.Seasons, p.steps())
}

// RunOdds refreshes betting data for games that have not finished yet.
// Lines on completed games are history and never change.
func (p *Pipeline) RunOdds(ctx context.Context) (*Summary, error) {
	steps := []step{
		{DatasetPlayerProps, func(ctx context.Context, _ []int, res *Result) error {
			gameIDs, err := p.db.Games.ListUpcomingGameIDs(ctx)
			if err != nil {
				return err
			}
			return p.syncPropsForGames(ctx, gameIDs, res)
		}},
		{DatasetGameOdds, func(ctx context.Context, _ []int, res *Result) error {
			gameIDs, err := p.db.Games.ListUpcomingGameIDs(ctx)
			if err != nil {
				return err
			}
			return p.syncOddsForGames(ctx, gameIDs, res)
		}},
	}
	return p.run(ctx, p.cfg.Seasons, steps)
}

// RunDatasets syncs only the named datasets, keeping the canonical order.
// An empty dataset list means all of them.
func (p *Pipeline) RunDatasets(ctx context.Context, seasons []int, datasets []Dataset) (*Summary, error) {
	if len(datasets) == 0 {
		return p.run(ctx, seasons, p.steps())
	}

	want := make(map[Dataset]bool, len(datasets))
	for _, d := range datasets {
		want[d] = true
	}

	var selected []step
	for _, s := range p.steps() {
		if want[s.dataset] {
			selected = append(selected, s)
			delete(want, s.dataset)
		}
	}
	for d := range want {
		return nil, fmt.Errorf("unknown dataset %q", d)
	}

	return p.run(ctx, seasons, selected)
}

func (p *Pipeline) run(ctx context.Context, seasons []int, steps []step) (*Summary, error) {
	summary := &Summary{StartedAt: time.Now().UTC()}

	for _, s := range steps {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		res := Result{Dataset: s.dataset}
		started := time.Now()
		err := s.fn(ctx, seasons, &res)
		elapsed := time.Since(started)

		status := "success"
		if err != nil {
			status = "error"
			res.Err = err
			res.Error = err.Error()
			metrics.RecordError("pipeline", string(s.dataset))
			log.Error().Err(err).
				Str("dataset", string(s.dataset)).
				Int("upserted", res.Upserted).
				Int("rejected", res.Rejected).
				Int("failed_units", len(res.Failures)).
				Msg("Dataset sync failed")
		} else {
			log.Info().
				Str("dataset", string(s.dataset)).
				Int("upserted", res.Upserted).
				Int("rejected", res.Rejected).
				Int("failed_units", len(res.Failures)).
				Dur("elapsed", elapsed).
				Msg("Dataset sync complete")
		}
		metrics.RecordDataset(string(s.dataset), status, res.Upserted, res.Rejected, elapsed.Seconds())

		summary.Results = append(summary.Results, res)
	}

	summary.FinishedAt = time.Now().UTC()
	p.storeSummary(ctx, summary)

	return summary, nil
}

func (p *Pipeline) storeSummary(ctx context.Context, summary *Summary) {
	if p.cache == nil {
		return
	}
	ttl := time.Duration(p.cfg.CacheTTLSummary) * time.Second
	if err := p.cache.SetLastSync(ctx, summary, ttl); err != nil {
		log.Warn().Err(err).Msg("Failed to cache sync summary")
	}
}

// runStream maps a raw record stream through mapFn, drops invalid rows, and
// flushes the survivors in chunks.
func runStream[T, R any](
	raw iter.Seq2[json.RawMessage, error],
	mapFn func(json.RawMessage, *T) R,
	valid func(R) bool,
	chunkSize, abortThreshold int,
	sink func([]R) (int, error),
	res *Result,
) error {
	var outcome ValidationOutcome
	rows := ValidRows(mapRecords(raw, mapFn), valid, abortThreshold, &outcome)

	n, err := FlushChunks(rows, chunkSize, sink)
	res.Upserted += n
	res.Rejected += outcome.Rejected
	if outcome.Aborted {
		res.Aborted = true
	}
	return err
}

// filterRows drops rows that fail keep without counting them as invalid
func filterRows[T any](rows iter.Seq2[T, error], keep func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for row, err := range rows {
			if err != nil {
				yield(row, err)
				return
			}
			if !keep(row) {
				continue
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

func sliceStream(recs []json.RawMessage) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		for _, r := range recs {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func (p *Pipeline) syncTeams(ctx context.Context, _ []int, res *Result) error {
	recs, err := p.api.Teams(ctx)
	if err != nil {
		return err
	}

	err = runStream(sliceStream(recs),
		func(_ json.RawMessage, in *models.TeamInput) *models.Team { return in.ToTeam() },
		(*models.Team).Valid,
		p.cfg.ChunkSize, p.cfg.AbortThreshold,
		func(chunk []*models.Team) (int, error) { return p.db.Teams.UpsertBatch(ctx, chunk) },
		res,
	)
	if err != nil {
		return err
	}

	// Refresh the cached id list while it is known fresh
	if p.cache != nil {
		if ids, err := p.db.Teams.ListTeamIDs(ctx); err == nil && len(ids) > 0 {
			ttl := time.Duration(p.cfg.CacheTTLTeams) * time.Second
			if err := p.cache.SetTeamIDs(ctx, ids, ttl); err != nil {
				log.Warn().Err(err).Msg("Failed to cache team ids")
			}
		}
	}

	return nil
}

func (p *Pipeline) syncPlayers(ctx context.Context, _ []int, res *Result) error {
	source := p.api.ActivePlayers(ctx)
	if p.cfg.IncludeInactive {
		source = p.api.Players(ctx)
	}

	err := runStream(source,
		func(_ json.RawMessage, in *models.PlayerInput) *models.Player { return in.ToPlayer() },
		(*models.Player).Valid,
		p.cfg.ChunkSize, p.cfg.AbortThreshold,
		func(chunk []*models.Player) (int, error) { return p.db.Players.UpsertBatch(ctx, chunk) },
		res,
	)
	if err != nil {
		return err
	}

	return p.refreshActiveFlags(ctx)
}

// refreshActiveFlags re-fetches the active roster and flips is_active on.
// The upsert never touches the flag, so this is the only writer.
func (p *Pipeline) refreshActiveFlags(ctx context.Context) error {
	var ids []int
	for rec, err := range p.api.ActivePlayers(ctx) {
		if err != nil {
			return err
		}
		var in models.PlayerInput
		if err := json.Unmarshal(rec, &in); err != nil {
			return fmt.Errorf("failed to decode active player: %w", err)
		}
		if in.ID != 0 {
			ids = append(ids, in.ID)
		}
	}

	var marked int64
	for _, chunk := range chunkInts(ids, markActiveChunk) {
		n, err := p.db.Players.MarkActive(ctx, chunk)
		if err != nil {
			return err
		}
		marked += n
	}

	log.Info().Int("players", len(ids)).Int64("marked", marked).Msg("Active flags refreshed")
	return nil
}

func (p *Pipeline) syncGames(ctx context.Context, seasons []int, res *Result) error {
	return runStream(p.api.Games(ctx, seasons, nil),
		func(_ json.RawMessage, in *models.GameInput) *models.Game { return in.ToGame() },
		(*models.Game).Valid,
		p.cfg.ChunkSize, p.cfg.AbortThreshold,
		func(chunk []*models.Game) (int, error) { return p.db.Games.UpsertBatch(ctx, chunk) },
		res,
	)
}

func (p *Pipeline) syncPlayerSeasonStats(ctx context.Context, seasons []int, res *Result) error {
	for _, season := range seasons {
		err := runStream(p.api.PlayerSeasonStats(ctx, season),
			func(_ json.RawMessage, in *models.PlayerSeasonStatInput) *models.PlayerSeasonStat {
				return in.ToPlayerSeasonStat()
			},
			(*models.PlayerSeasonStat).Valid,
			p.cfg.ChunkSize, p.cfg.AbortThreshold,
			func(chunk []*models.PlayerSeasonStat) (int, error) {
				return p.db.PlayerStats.UpsertSeasonBatch(ctx, chunk)
			},
			res,
		)
		if err != nil {
			return fmt.Errorf("season %d: %w", season, err)
		}
	}
	return nil
}

func (p *Pipeline) syncPlayerGameStats(ctx context.Context, seasons []int, res *Result) error {
	return runStream(p.api.PlayerGameStats(ctx, seasons),
		func(_ json.RawMessage, in *models.PlayerGameStatInput) *models.PlayerGameStat {
			return in.ToPlayerGameStat()
		},
		(*models.PlayerGameStat).Valid,
		p.cfg.ChunkSize, p.cfg.AbortThreshold,
		func(chunk []*models.PlayerGameStat) (int, error) {
			return p.db.PlayerStats.UpsertGameBatch(ctx, chunk)
		},
		res,
	)
}

func (p *Pipeline) syncAdvancedReceiving(ctx context.Context, seasons []int, res *Result) error {
	return p.syncAdvancedUnits(ctx, seasons, res, "receiving",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			return runStream(p.api.AdvancedReceiving(ctx, season, week, postseason),
				func(_ json.RawMessage, in *models.AdvancedReceivingStatInput) *models.AdvancedReceivingStat {
					return in.ToAdvancedReceivingStat(season, week, postseason)
				},
				(*models.AdvancedReceivingStat).Valid,
				p.cfg.ChunkSize, p.cfg.AbortThreshold,
				func(chunk []*models.AdvancedReceivingStat) (int, error) {
					return p.db.Advanced.UpsertReceivingBatch(ctx, chunk)
				},
				res,
			)
		})
}

func (p *Pipeline) syncAdvancedRushing(ctx context.Context, seasons []int, res *Result) error {
	return p.syncAdvancedUnits(ctx, seasons, res, "rushing",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			return runStream(p.api.AdvancedRushing(ctx, season, week, postseason),
				func(_ json.RawMessage, in *models.AdvancedRushingStatInput) *models.AdvancedRushingStat {
					return in.ToAdvancedRushingStat(season, week, postseason)
				},
				(*models.AdvancedRushingStat).Valid,
				p.cfg.ChunkSize, p.cfg.AbortThreshold,
				func(chunk []*models.AdvancedRushingStat) (int, error) {
					return p.db.Advanced.UpsertRushingBatch(ctx, chunk)
				},
				res,
			)
		})
}

func (p *Pipeline) syncAdvancedPassing(ctx context.Context, seasons []int, res *Result) error {
	return p.syncAdvancedUnits(ctx, seasons, res, "passing",
		func(ctx context.Context, season, week int, postseason bool, res *Result) error {
			return runStream(p.api.AdvancedPassing(ctx, season, week, postseason),
				func(_ json.RawMessage, in *models.AdvancedPassingStatInput) *models.AdvancedPassingStat {
					return in.ToAdvancedPassingStat(season, week, postseason)
				},
				(*models.AdvancedPassingStat).Valid,
				p.cfg.ChunkSize, p.cfg.AbortThreshold,
				func(chunk []*models.AdvancedPassingStat) (int, error) {
					return p.db.Advanced.UpsertPassingBatch(ctx, chunk)
				},
				res,
			)
		})
}

// syncAdvancedUnits runs one fetch per season at the full-season week, plus a
// postseason pass when configured. A failed unit is recorded in the result
// and does not stop the rest; a validation abort does.
func (p *Pipeline) syncAdvancedUnits(ctx context.Context, seasons []int, res *Result, kind string,
	fetch func(ctx context.Context, season, week int, postseason bool, res *Result) error,
) error {
	phases := []bool{false}
	if p.cfg.AdvancedPostseason {
		phases = append(phases, true)
	}

	for _, season := range seasons {
		for _, postseason := range phases {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			err := fetch(ctx, season, advancedFullSeasonWeek, postseason, res)
			if err == nil {
				continue
			}
			if errors.Is(err, ErrTooManyInvalid) {
				return fmt.Errorf("season %d: %w", season, err)
			}
			res.addFailure(fmt.Sprintf("%s season %d postseason=%t", kind, season, postseason), err)
			log.Warn().Err(err).
				Str("stats", kind).
				Int("season", season).
				Bool("postseason", postseason).
				Msg("Advanced stats sync failed for season")
		}
	}
	return nil
}

func (p *Pipeline) syncTeamSeasonStats(ctx context.Context, seasons []int, res *Result) error {
	teamIDs, err := p.teamIDs(ctx)
	if err != nil {
		return err
	}
	if len(teamIDs) == 0 {
		return fmt.Errorf("no teams in database, sync teams first")
	}

	for _, season := range seasons {
		err := runStream(p.api.TeamSeasonStats(ctx, season, teamIDs),
			func(raw json.RawMessage, in *models.TeamSeasonStatInput) *models.TeamSeasonStat {
				return in.ToTeamSeasonStat(raw, season)
			},
			(*models.TeamSeasonStat).Valid,
			p.cfg.ChunkSize, p.cfg.AbortThreshold,
			func(chunk []*models.TeamSeasonStat) (int, error) {
				return p.db.TeamStats.UpsertSeasonBatch(ctx, chunk)
			},
			res,
		)
		if err != nil {
			return fmt.Errorf("season %d: %w", season, err)
		}
	}
	return nil
}

func (p *Pipeline) syncTeamGameStats(ctx context.Context, seasons []int, res *Result) error {
	for _, season := range seasons {
		err := runStream(p.api.TeamGameStats(ctx, season),
			func(_ json.RawMessage, in *models.TeamGameStatInput) *models.TeamGameStat {
				return in.ToTeamGameStat()
			},
			(*models.TeamGameStat).Valid,
			p.cfg.ChunkSize, p.cfg.AbortThreshold,
			func(chunk []*models.TeamGameStat) (int, error) {
				return p.db.TeamStats.UpsertGameBatch(ctx, chunk)
			},
			res,
		)
		if err != nil {
			return fmt.Errorf("season %d: %w", season, err)
		}
	}
	return nil
}

func (p *Pipeline) syncStandings(ctx context.Context, seasons []int, res *Result) error {
	for _, season := range seasons {
		err := runStream(p.api.Standings(ctx, season),
			func(_ json.RawMessage, in *models.StandingInput) *models.Standing { return in.ToStanding() },
			(*models.Standing).Valid,
			p.cfg.ChunkSize, p.cfg.AbortThreshold,
			func(chunk []*models.Standing) (int, error) {
				return p.db.Standings.UpsertBatch(ctx, chunk)
			},
			res,
		)
		if err != nil {
			return fmt.Errorf("season %d: %w", season, err)
		}
	}
	return nil
}

// syncInjuries replaces the whole report. The feed is a current snapshot, so
// stale rows have to go before the new ones land.
func (p *Pipeline) syncInjuries(ctx context.Context, _ []int, res *Result) error {
	if deleted, err := p.db.Injuries.DeleteAll(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to clear injury report, stale rows may linger")
	} else if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Msg("Cleared injury report")
	}

	return runStream(p.api.Injuries(ctx, nil),
		func(_ json.RawMessage, in *models.InjuryInput) *models.Injury { return in.ToInjury() },
		(*models.Injury).Valid,
		p.cfg.ChunkSize, p.cfg.AbortThreshold,
		func(chunk []*models.Injury) (int, error) { return p.db.Injuries.UpsertBatch(ctx, chunk) },
		res,
	)
}

// syncRosters pulls one roster per team per season. A bad team does not stop
// the rest of the league.
func (p *Pipeline) syncRosters(ctx context.Context, seasons []int, res *Result) error {
	teamIDs, err := p.teamIDs(ctx)
	if err != nil {
		return err
	}

	for _, season := range seasons {
		for _, teamID := range teamIDs {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			n, rejected, err := p.syncTeamRoster(ctx, teamID, season)
			res.Upserted += n
			res.Rejected += rejected
			if err != nil {
				res.addFailure(fmt.Sprintf("team %d season %d", teamID, season), err)
				log.Warn().Err(err).
					Int("team_id", teamID).
					Int("season", season).
					Msg("Roster sync failed for team")
			}
		}
	}

	if failed := len(res.Failures); failed > 0 && res.Upserted == 0 {
		return fmt.Errorf("all %d roster fetches failed", failed)
	}
	return nil
}

func (p *Pipeline) syncTeamRoster(ctx context.Context, teamID, season int) (int, int, error) {
	recs, err := p.api.TeamRoster(ctx, teamID, season)
	if err != nil {
		return 0, 0, err
	}

	entries := make([]*models.RosterEntry, 0, len(recs))
	rejected := 0
	for _, rec := range recs {
		var in models.RosterEntryInput
		if err := json.Unmarshal(rec, &in); err != nil {
			return 0, rejected, fmt.Errorf("failed to decode roster entry: %w", err)
		}
		e := in.ToRosterEntry(teamID, season)
		if !e.Valid() {
			rejected++
			continue
		}
		entries = append(entries, e)
	}

	entries = CollapseRoster(entries)
	if len(entries) == 0 {
		return 0, rejected, nil
	}

	n, err := p.db.Rosters.UpsertBatch(ctx, entries)
	return n, rejected, err
}

// syncPlayerProps fetches props game by game and keeps the best vendor line
// per player market. A bad game does not stop the rest.
func (p *Pipeline) syncPlayerProps(ctx context.Context, seasons []int, res *Result) error {
	gameIDs, err := p.db.Games.ListGameIDs(ctx, seasons)
	if err != nil {
		return err
	}
	return p.syncPropsForGames(ctx, gameIDs, res)
}

func (p *Pipeline) syncPropsForGames(ctx context.Context, gameIDs []int, res *Result) error {
	for _, gameID := range gameIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		n, rejected, err := p.syncGameProps(ctx, gameID)
		res.Upserted += n
		res.Rejected += rejected
		if err != nil {
			res.addFailure(fmt.Sprintf("game %d", gameID), err)
			log.Warn().Err(err).Int("game_id", gameID).Msg("Prop sync failed for game")
		}
	}

	if failed := len(res.Failures); failed > 0 {
		log.Warn().Int("failed", failed).Int("games", len(gameIDs)).Msg("Some games had no prop data")
	}
	return nil
}

func (p *Pipeline) syncGameProps(ctx context.Context, gameID int) (int, int, error) {
	var props []*models.PlayerProp
	rejected := 0

	for rec, err := range p.api.PlayerProps(ctx, gameID, rankedVendors) {
		if err != nil {
			return 0, rejected, err
		}
		var in models.PlayerPropInput
		if err := json.Unmarshal(rec, &in); err != nil {
			return 0, rejected, fmt.Errorf("failed to decode prop: %w", err)
		}
		if !in.OverUnder() {
			continue
		}
		prop, ok := in.ToPlayerProp()
		if !ok {
			continue
		}
		if prop.GameID == 0 {
			prop.GameID = gameID
		}
		if !prop.Valid() {
			rejected++
			continue
		}
		props = append(props, prop)
	}

	best := BestProps(props)
	if len(best) == 0 {
		return 0, rejected, nil
	}

	n, err := p.db.Props.UpsertBatch(ctx, best)
	return n, rejected, err
}

// syncGameOdds stores DraftKings game lines for the configured seasons
func (p *Pipeline) syncGameOdds(ctx context.Context, seasons []int, res *Result) error {
	gameIDs, err := p.db.Games.ListGameIDs(ctx, seasons)
	if err != nil {
		return err
	}
	return p.syncOddsForGames(ctx, gameIDs, res)
}

func (p *Pipeline) syncOddsForGames(ctx context.Context, gameIDs []int, res *Result) error {
	for _, batch := range chunkInts(gameIDs, p.cfg.OddsGameChunk) {
		mapped := mapRecords(p.api.GameOdds(ctx, batch),
			func(_ json.RawMessage, in *models.GameOddsInput) *models.GameOdds {
				o := in.ToGameOdds()
				o.Vendor = strings.ToLower(o.Vendor)
				return o
			},
		)
		// Only the DraftKings line is stored; other books are not invalid rows
		dk := filterRows(mapped, func(o *models.GameOdds) bool { return o.Vendor == "draftkings" })

		var outcome ValidationOutcome
		rows := ValidRows(dk, (*models.GameOdds).Valid, p.cfg.AbortThreshold, &outcome)

		n, err := FlushChunks(rows, p.cfg.ChunkSize, func(chunk []*models.GameOdds) (int, error) {
			return p.db.Odds.UpsertBatch(ctx, chunk)
		})
		res.Upserted += n
		res.Rejected += outcome.Rejected
		if outcome.Aborted {
			res.Aborted = true
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// teamIDs resolves the team id list, cache first, then database
func (p *Pipeline) teamIDs(ctx context.Context) ([]int, error) {
	if p.cache != nil {
		ids, err := p.cache.GetTeamIDs(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Team id cache read failed")
		} else if len(ids) > 0 {
			return ids, nil
		}
	}

	ids, err := p.db.Teams.ListTeamIDs(ctx)
	if err != nil {
		return nil, err
	}

	if p.cache != nil && len(ids) > 0 {
		ttl := time.Duration(p.cfg.CacheTTLTeams) * time.Second
		if err := p.cache.SetTeamIDs(ctx, ids, ttl); err != nil {
			log.Warn().Err(err).Msg("Team id cache write failed")
		}
	}

	return ids, nil
}

func chunkInts(ids []int, size int) [][]int {
	if size <= 0 {
		size = len(ids)
	}
	var out [][]int
	for len(ids) > 0 {
		n := size
		if n > len(ids) {
			n = len(ids)
		}
		out = append(out, ids[:n])
		ids = ids[n:]
	}
	return out
}
