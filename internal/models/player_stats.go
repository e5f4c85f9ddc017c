package models

import (
	"database/sql"
	"time"
)

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// PlayerSeasonStat represents a player's aggregated line for one season
type PlayerSeasonStat struct {
	ID         int  `db:"id"`
	PlayerID   int  `db:"player_id"`
	Season     int  `db:"season"`
	Postseason bool `db:"postseason"`

	GamesPlayed sql.NullInt32 `db:"games_played"`

	PassingCompletions   sql.NullInt32   `db:"passing_completions"`
	PassingAttempts      sql.NullInt32   `db:"passing_attempts"`
	PassingYards         sql.NullInt32   `db:"passing_yards"`
	PassingTouchdowns    sql.NullInt32   `db:"passing_touchdowns"`
	PassingInterceptions sql.NullInt32   `db:"passing_interceptions"`
	PassingYardsPerGame  sql.NullFloat64 `db:"passing_yards_per_game"`
	PassingCompletionPct sql.NullFloat64 `db:"passing_completion_pct"`
	QBR                  sql.NullFloat64 `db:"qbr"`

	RushingAttempts     sql.NullInt32   `db:"rushing_attempts"`
	RushingYards        sql.NullInt32   `db:"rushing_yards"`
	RushingYardsPerGame sql.NullFloat64 `db:"rushing_yards_per_game"`
	RushingTouchdowns   sql.NullInt32   `db:"rushing_touchdowns"`
	RushingFumbles      sql.NullInt32   `db:"rushing_fumbles"`
	RushingFirstDowns   sql.NullInt32   `db:"rushing_first_downs"`

	Receptions            sql.NullInt32   `db:"receptions"`
	ReceivingYards        sql.NullInt32   `db:"receiving_yards"`
	ReceivingYardsPerGame sql.NullFloat64 `db:"receiving_yards_per_game"`
	ReceivingTouchdowns   sql.NullInt32   `db:"receiving_touchdowns"`
	ReceivingTargets      sql.NullInt32   `db:"receiving_targets"`
	ReceivingFirstDowns   sql.NullInt32   `db:"receiving_first_downs"`

	FumblesForced          sql.NullInt32 `db:"fumbles_forced"`
	FumblesRecovered       sql.NullInt32 `db:"fumbles_recovered"`
	TotalTackles           sql.NullInt32 `db:"total_tackles"`
	DefensiveSacks         sql.NullInt32 `db:"defensive_sacks"`
	DefensiveInterceptions sql.NullInt32 `db:"defensive_interceptions"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PlayerSeasonStatInput is the provider's season stat payload
type PlayerSeasonStatInput struct {
	Player     *PlayerInput `json:"player"`
	Season     int          `json:"season"`
	Postseason bool         `json:"postseason"`

	GamesPlayed *int `json:"games_played"`

	PassingCompletions   *int     `json:"passing_completions"`
	PassingAttempts      *int     `json:"passing_attempts"`
	PassingYards         *int     `json:"passing_yards"`
	PassingTouchdowns    *int     `json:"passing_touchdowns"`
	PassingInterceptions *int     `json:"passing_interceptions"`
	PassingYardsPerGame  *float64 `json:"passing_yards_per_game"`
	PassingCompletionPct *float64 `json:"passing_completion_pct"`
	QBR                  *float64 `json:"qbr"`

	RushingAttempts     *int     `json:"rushing_attempts"`
	RushingYards        *int     `json:"rushing_yards"`
	RushingYardsPerGame *float64 `json:"rushing_yards_per_game"`
	RushingTouchdowns   *int     `json:"rushing_touchdowns"`
	RushingFumbles      *int     `json:"rushing_fumbles"`
	RushingFirstDowns   *int     `json:"rushing_first_downs"`

	Receptions            *int     `json:"receptions"`
	ReceivingYards        *int     `json:"receiving_yards"`
	ReceivingYardsPerGame *float64 `json:"receiving_yards_per_game"`
	ReceivingTouchdowns   *int     `json:"receiving_touchdowns"`
	ReceivingTargets      *int     `json:"receiving_targets"`
	ReceivingFirstDowns   *int     `json:"receiving_first_downs"`

	FumblesForced          *int `json:"fumbles_forced"`
	FumblesRecovered       *int `json:"fumbles_recovered"`
	TotalTackles           *int `json:"total_tackles"`
	DefensiveSacks         *int `json:"defensive_sacks"`
	DefensiveInterceptions *int `json:"defensive_interceptions"`
}

// ToPlayerSeasonStat converts the API payload to the db model
func (si *PlayerSeasonStatInput) ToPlayerSeasonStat() *PlayerSeasonStat {
	s := &PlayerSeasonStat{
		Season:     si.Season,
		Postseason: si.Postseason,

		GamesPlayed: nullInt(si.GamesPlayed),

		PassingCompletions:   nullInt(si.PassingCompletions),
		PassingAttempts:      nullInt(si.PassingAttempts),
		PassingYards:         nullInt(si.PassingYards),
		PassingTouchdowns:    nullInt(si.PassingTouchdowns),
		PassingInterceptions: nullInt(si.PassingInterceptions),
		PassingYardsPerGame:  nullFloat(si.PassingYardsPerGame),
		PassingCompletionPct: nullFloat(si.PassingCompletionPct),
		QBR:                  nullFloat(si.QBR),

		RushingAttempts:     nullInt(si.RushingAttempts),
		RushingYards:        nullInt(si.RushingYards),
		RushingYardsPerGame: nullFloat(si.RushingYardsPerGame),
		RushingTouchdowns:   nullInt(si.RushingTouchdowns),
		RushingFumbles:      nullInt(si.RushingFumbles),
		RushingFirstDowns:   nullInt(si.RushingFirstDowns),

		Receptions:            nullInt(si.Receptions),
		ReceivingYards:        nullInt(si.ReceivingYards),
		ReceivingYardsPerGame: nullFloat(si.ReceivingYardsPerGame),
		ReceivingTouchdowns:   nullInt(si.ReceivingTouchdowns),
		ReceivingTargets:      nullInt(si.ReceivingTargets),
		ReceivingFirstDowns:   nullInt(si.ReceivingFirstDowns),

		FumblesForced:          nullInt(si.FumblesForced),
		FumblesRecovered:       nullInt(si.FumblesRecovered),
		TotalTackles:           nullInt(si.TotalTackles),
		DefensiveSacks:         nullInt(si.DefensiveSacks),
		DefensiveInterceptions: nullInt(si.DefensiveInterceptions),

		UpdatedAt: time.Now().UTC(),
	}

	if si.Player != nil {
		s.PlayerID = si.Player.ID
	}

	return s
}

// Valid reports whether the row carries its natural key
func (s *PlayerSeasonStat) Valid() bool {
	return s.PlayerID != 0 && s.Season != 0
}

// PlayerGameStat represents a player's box score line for one game
type PlayerGameStat struct {
	ID       int           `db:"id"`
	PlayerID int           `db:"player_id"`
	GameID   int           `db:"game_id"`
	TeamID   sql.NullInt32 `db:"team_id"`
	Season   sql.NullInt32 `db:"season"`
	Week     sql.NullInt32 `db:"week"`

	PassingCompletions   sql.NullInt32   `db:"passing_completions"`
	PassingAttempts      sql.NullInt32   `db:"passing_attempts"`
	PassingYards         sql.NullInt32   `db:"passing_yards"`
	PassingTouchdowns    sql.NullInt32   `db:"passing_touchdowns"`
	PassingInterceptions sql.NullInt32   `db:"passing_interceptions"`
	Sacks                sql.NullInt32   `db:"sacks"`
	QBR                  sql.NullFloat64 `db:"qbr"`
	QBRating             sql.NullFloat64 `db:"qb_rating"`

	RushingAttempts   sql.NullInt32 `db:"rushing_attempts"`
	RushingYards      sql.NullInt32 `db:"rushing_yards"`
	RushingTouchdowns sql.NullInt32 `db:"rushing_touchdowns"`

	Receptions          sql.NullInt32 `db:"receptions"`
	ReceivingYards      sql.NullInt32 `db:"receiving_yards"`
	ReceivingTouchdowns sql.NullInt32 `db:"receiving_touchdowns"`
	ReceivingTargets    sql.NullInt32 `db:"receiving_targets"`

	Fumbles                sql.NullInt32 `db:"fumbles"`
	FumblesLost            sql.NullInt32 `db:"fumbles_lost"`
	FumblesRecovered       sql.NullInt32 `db:"fumbles_recovered"`
	TotalTackles           sql.NullInt32 `db:"total_tackles"`
	DefensiveSacks         sql.NullInt32 `db:"defensive_sacks"`
	DefensiveInterceptions sql.NullInt32 `db:"defensive_interceptions"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PlayerGameStatInput is the provider's per-game stat payload. Game identity
// and season context only exist on the nested game object.
type PlayerGameStatInput struct {
	Player *PlayerInput `json:"player"`
	Team   *TeamInput   `json:"team"`
	Game   *GameInput   `json:"game"`

	PassingCompletions   *int     `json:"passing_completions"`
	PassingAttempts      *int     `json:"passing_attempts"`
	PassingYards         *int     `json:"passing_yards"`
	PassingTouchdowns    *int     `json:"passing_touchdowns"`
	PassingInterceptions *int     `json:"passing_interceptions"`
	Sacks                *int     `json:"sacks"`
	QBR                  *float64 `json:"qbr"`
	QBRating             *float64 `json:"qb_rating"`

	RushingAttempts   *int `json:"rushing_attempts"`
	RushingYards      *int `json:"rushing_yards"`
	RushingTouchdowns *int `json:"rushing_touchdowns"`

	Receptions          *int `json:"receptions"`
	ReceivingYards      *int `json:"receiving_yards"`
	ReceivingTouchdowns *int `json:"receiving_touchdowns"`
	ReceivingTargets    *int `json:"receiving_targets"`

	Fumbles                *int `json:"fumbles"`
	FumblesLost            *int `json:"fumbles_lost"`
	FumblesRecovered       *int `json:"fumbles_recovered"`
	TotalTackles           *int `json:"total_tackles"`
	DefensiveSacks         *int `json:"defensive_sacks"`
	DefensiveInterceptions *int `json:"defensive_interceptions"`
}

// ToPlayerGameStat converts the API payload to the db model
func (si *PlayerGameStatInput) ToPlayerGameStat() *PlayerGameStat {
	s := &PlayerGameStat{
		PassingCompletions:   nullInt(si.PassingCompletions),
		PassingAttempts:      nullInt(si.PassingAttempts),
		PassingYards:         nullInt(si.PassingYards),
		PassingTouchdowns:    nullInt(si.PassingTouchdowns),
		PassingInterceptions: nullInt(si.PassingInterceptions),
		Sacks:                nullInt(si.Sacks),
		QBR:                  nullFloat(si.QBR),
		QBRating:             nullFloat(si.QBRating),

		RushingAttempts:   nullInt(si.RushingAttempts),
		RushingYards:      nullInt(si.RushingYards),
		RushingTouchdowns: nullInt(si.RushingTouchdowns),

		Receptions:          nullInt(si.Receptions),
		ReceivingYards:      nullInt(si.ReceivingYards),
		ReceivingTouchdowns: nullInt(si.ReceivingTouchdowns),
		ReceivingTargets:    nullInt(si.ReceivingTargets),

		Fumbles:                nullInt(si.Fumbles),
		FumblesLost:            nullInt(si.FumblesLost),
		FumblesRecovered:       nullInt(si.FumblesRecovered),
		TotalTackles:           nullInt(si.TotalTackles),
		DefensiveSacks:         nullInt(si.DefensiveSacks),
		DefensiveInterceptions: nullInt(si.DefensiveInterceptions),

		UpdatedAt: time.Now().UTC(),
	}

	if si.Player != nil {
		s.PlayerID = si.Player.ID
	}
	if si.Team != nil {
		s.TeamID = sql.NullInt32{Int32: int32(si.Team.ID), Valid: si.Team.ID != 0}
	}
	if si.Game != nil {
		s.GameID = si.Game.ID
		if si.Game.Season != 0 {
			s.Season = sql.NullInt32{Int32: int32(si.Game.Season), Valid: true}
		}
		if si.Game.Week != 0 {
			s.Week = sql.NullInt32{Int32: int32(si.Game.Week), Valid: true}
		}
	}

	return s
}

// Valid reports whether the row carries its natural key
func (s *PlayerGameStat) Valid() bool {
	return s.PlayerID != 0 && s.GameID != 0
}
