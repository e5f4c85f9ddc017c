package models

import (
	"database/sql"
	"encoding/json"
	"time"
)

// TeamSeasonStat represents a team's aggregated line for one season. The
// provider exposes well over a hundred columns on this feed; the prominent
// ones get real columns and the full payload is kept as jsonb.
type TeamSeasonStat struct {
	ID         int           `db:"id"`
	TeamID     int           `db:"team_id"`
	Season     int           `db:"season"`
	SeasonType sql.NullInt32 `db:"season_type"`
	Postseason bool          `db:"postseason"`

	GamesPlayed sql.NullInt32 `db:"games_played"`

	TotalPoints               sql.NullInt32   `db:"total_points"`
	TotalPointsPerGame        sql.NullFloat64 `db:"total_points_per_game"`
	TotalOffensiveYards       sql.NullInt32   `db:"total_offensive_yards"`
	TotalOffensiveYardsPerGame sql.NullFloat64 `db:"total_offensive_yards_per_game"`

	PassingAttempts      sql.NullInt32 `db:"passing_attempts"`
	PassingCompletions   sql.NullInt32 `db:"passing_completions"`
	PassingYards         sql.NullInt32 `db:"passing_yards"`
	PassingTouchdowns    sql.NullInt32 `db:"passing_touchdowns"`
	PassingInterceptions sql.NullInt32 `db:"passing_interceptions"`
	NetPassingYards      sql.NullInt32 `db:"net_passing_yards"`

	RushingAttempts   sql.NullInt32 `db:"rushing_attempts"`
	RushingYards      sql.NullInt32 `db:"rushing_yards"`
	RushingTouchdowns sql.NullInt32 `db:"rushing_touchdowns"`

	ThirdDownConvPct     sql.NullFloat64 `db:"third_down_conv_pct"`
	Turnovers            sql.NullInt32   `db:"turnovers"`
	TurnoverDifferential sql.NullInt32   `db:"turnover_differential"`

	OppTotalPoints        sql.NullInt32   `db:"opp_total_points"`
	OppTotalPointsPerGame sql.NullFloat64 `db:"opp_total_points_per_game"`
	OppTotalOffensiveYards sql.NullInt32  `db:"opp_total_offensive_yards"`
	OppPassingYards       sql.NullInt32   `db:"opp_passing_yards"`
	OppRushingYards       sql.NullInt32   `db:"opp_rushing_yards"`
	OppRushingYardsPerGame sql.NullFloat64 `db:"opp_rushing_yards_per_game"`

	StatsJSON json.RawMessage `db:"stats_json"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TeamSeasonStatInput is the provider's team season stat payload
type TeamSeasonStatInput struct {
	Team       *TeamInput `json:"team"`
	Season     *int       `json:"season"`
	SeasonType *int       `json:"season_type"` // 2 = regular, 3 = postseason

	GamesPlayed *int `json:"games_played"`

	TotalPoints                *int     `json:"total_points"`
	TotalPointsPerGame         *float64 `json:"total_points_per_game"`
	TotalOffensiveYards        *int     `json:"total_offensive_yards"`
	TotalOffensiveYardsPerGame *float64 `json:"total_offensive_yards_per_game"`

	PassingAttempts      *int `json:"passing_attempts"`
	PassingCompletions   *int `json:"passing_completions"`
	PassingYards         *int `json:"passing_yards"`
	PassingTouchdowns    *int `json:"passing_touchdowns"`
	PassingInterceptions *int `json:"passing_interceptions"`
	NetPassingYards      *int `json:"net_passing_yards"`

	RushingAttempts   *int `json:"rushing_attempts"`
	RushingYards      *int `json:"rushing_yards"`
	RushingTouchdowns *int `json:"rushing_touchdowns"`

	ThirdDownConvPct     *float64 `json:"misc_third_down_conv_pct"`
	Turnovers            *int     `json:"misc_total_giveaways"`
	TurnoverDifferential *int     `json:"misc_turnover_differential"`

	OppTotalPoints         *int     `json:"opp_total_points"`
	OppTotalPointsPerGame  *float64 `json:"opp_total_points_per_game"`
	OppTotalOffensiveYards *int     `json:"opp_total_offensive_yards"`
	OppPassingYards        *int     `json:"opp_passing_yards"`
	OppRushingYards        *int     `json:"opp_rushing_yards"`
	OppRushingYardsPerGame *float64 `json:"opp_rushing_yards_per_game"`
}

// ToTeamSeasonStat converts the API payload to the db model. The raw payload
// is preserved verbatim; season fills in when the feed omits it.
func (si *TeamSeasonStatInput) ToTeamSeasonStat(raw json.RawMessage, season int) *TeamSeasonStat {
	s := &TeamSeasonStat{
		Season: season,

		GamesPlayed: nullInt(si.GamesPlayed),

		TotalPoints:                nullInt(si.TotalPoints),
		TotalPointsPerGame:         nullFloat(si.TotalPointsPerGame),
		TotalOffensiveYards:        nullInt(si.TotalOffensiveYards),
		TotalOffensiveYardsPerGame: nullFloat(si.TotalOffensiveYardsPerGame),

		PassingAttempts:      nullInt(si.PassingAttempts),
		PassingCompletions:   nullInt(si.PassingCompletions),
		PassingYards:         nullInt(si.PassingYards),
		PassingTouchdowns:    nullInt(si.PassingTouchdowns),
		PassingInterceptions: nullInt(si.PassingInterceptions),
		NetPassingYards:      nullInt(si.NetPassingYards),

		RushingAttempts:   nullInt(si.RushingAttempts),
		RushingYards:      nullInt(si.RushingYards),
		RushingTouchdowns: nullInt(si.RushingTouchdowns),

		ThirdDownConvPct:     nullFloat(si.ThirdDownConvPct),
		Turnovers:            nullInt(si.Turnovers),
		TurnoverDifferential: nullInt(si.TurnoverDifferential),

		OppTotalPoints:         nullInt(si.OppTotalPoints),
		OppTotalPointsPerGame:  nullFloat(si.OppTotalPointsPerGame),
		OppTotalOffensiveYards: nullInt(si.OppTotalOffensiveYards),
		OppPassingYards:        nullInt(si.OppPassingYards),
		OppRushingYards:        nullInt(si.OppRushingYards),
		OppRushingYardsPerGame: nullFloat(si.OppRushingYardsPerGame),

		StatsJSON: raw,
		UpdatedAt: time.Now().UTC(),
	}

	if si.Team != nil {
		s.TeamID = si.Team.ID
	}
	if si.Season != nil {
		s.Season = *si.Season
	}
	if si.SeasonType != nil {
		s.SeasonType = sql.NullInt32{Int32: int32(*si.SeasonType), Valid: true}
		s.Postseason = *si.SeasonType == 3
	}

	return s
}

// Valid reports whether the row carries its natural key
func (s *TeamSeasonStat) Valid() bool {
	return s.TeamID != 0 && s.Season != 0
}

// TeamGameStat represents a team's box score line for one game
type TeamGameStat struct {
	ID     int           `db:"id"`
	TeamID int           `db:"team_id"`
	GameID int           `db:"game_id"`
	Season sql.NullInt32 `db:"season"`
	Week   sql.NullInt32 `db:"week"`

	HomeAway sql.NullString `db:"home_away"`

	FirstDowns        sql.NullInt32  `db:"first_downs"`
	FirstDownsPassing sql.NullInt32  `db:"first_downs_passing"`
	FirstDownsRushing sql.NullInt32  `db:"first_downs_rushing"`
	FirstDownsPenalty sql.NullInt32  `db:"first_downs_penalty"`
	ThirdDownEff      sql.NullString `db:"third_down_efficiency"`
	ThirdDownConvs    sql.NullInt32  `db:"third_down_conversions"`
	ThirdDownAttempts sql.NullInt32  `db:"third_down_attempts"`
	FourthDownEff     sql.NullString `db:"fourth_down_efficiency"`
	FourthDownConvs   sql.NullInt32  `db:"fourth_down_conversions"`
	FourthDownAttempts sql.NullInt32 `db:"fourth_down_attempts"`

	TotalOffensivePlays sql.NullInt32   `db:"total_offensive_plays"`
	TotalYards          sql.NullInt32   `db:"total_yards"`
	YardsPerPlay        sql.NullFloat64 `db:"yards_per_play"`
	TotalDrives         sql.NullInt32   `db:"total_drives"`

	NetPassingYards    sql.NullInt32   `db:"net_passing_yards"`
	PassingCompletions sql.NullInt32   `db:"passing_completions"`
	PassingAttempts    sql.NullInt32   `db:"passing_attempts"`
	YardsPerPass       sql.NullFloat64 `db:"yards_per_pass"`
	Sacks              sql.NullInt32   `db:"sacks"`
	SackYardsLost      sql.NullInt32   `db:"sack_yards_lost"`

	RushingYards        sql.NullInt32   `db:"rushing_yards"`
	RushingAttempts     sql.NullInt32   `db:"rushing_attempts"`
	YardsPerRushAttempt sql.NullFloat64 `db:"yards_per_rush_attempt"`

	RedZoneScores   sql.NullInt32 `db:"red_zone_scores"`
	RedZoneAttempts sql.NullInt32 `db:"red_zone_attempts"`
	Penalties       sql.NullInt32 `db:"penalties"`
	PenaltyYards    sql.NullInt32 `db:"penalty_yards"`

	Turnovers           sql.NullInt32 `db:"turnovers"`
	FumblesLost         sql.NullInt32 `db:"fumbles_lost"`
	InterceptionsThrown sql.NullInt32 `db:"interceptions_thrown"`
	DefensiveTouchdowns sql.NullInt32 `db:"defensive_touchdowns"`

	PossessionTime        sql.NullString `db:"possession_time"`
	PossessionTimeSeconds sql.NullInt32  `db:"possession_time_seconds"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TeamGameStatInput is the provider's team box score payload
type TeamGameStatInput struct {
	Team *TeamInput `json:"team"`
	Game *GameInput `json:"game"`

	HomeAway string `json:"home_away"`

	FirstDowns         *int   `json:"first_downs"`
	FirstDownsPassing  *int   `json:"first_downs_passing"`
	FirstDownsRushing  *int   `json:"first_downs_rushing"`
	FirstDownsPenalty  *int   `json:"first_downs_penalty"`
	ThirdDownEff       string `json:"third_down_efficiency"`
	ThirdDownConvs     *int   `json:"third_down_conversions"`
	ThirdDownAttempts  *int   `json:"third_down_attempts"`
	FourthDownEff      string `json:"fourth_down_efficiency"`
	FourthDownConvs    *int   `json:"fourth_down_conversions"`
	FourthDownAttempts *int   `json:"fourth_down_attempts"`

	TotalOffensivePlays *int     `json:"total_offensive_plays"`
	TotalYards          *int     `json:"total_yards"`
	YardsPerPlay        *float64 `json:"yards_per_play"`
	TotalDrives         *int     `json:"total_drives"`

	NetPassingYards    *int     `json:"net_passing_yards"`
	PassingCompletions *int     `json:"passing_completions"`
	PassingAttempts    *int     `json:"passing_attempts"`
	YardsPerPass       *float64 `json:"yards_per_pass"`
	Sacks              *int     `json:"sacks"`
	SackYardsLost      *int     `json:"sack_yards_lost"`

	RushingYards        *int     `json:"rushing_yards"`
	RushingAttempts     *int     `json:"rushing_attempts"`
	YardsPerRushAttempt *float64 `json:"yards_per_rush_attempt"`

	RedZoneScores   *int `json:"red_zone_scores"`
	RedZoneAttempts *int `json:"red_zone_attempts"`
	Penalties       *int `json:"penalties"`
	PenaltyYards    *int `json:"penalty_yards"`

	Turnovers           *int `json:"turnovers"`
	FumblesLost         *int `json:"fumbles_lost"`
	InterceptionsThrown *int `json:"interceptions_thrown"`
	DefensiveTouchdowns *int `json:"defensive_touchdowns"`

	PossessionTime        string `json:"possession_time"`
	PossessionTimeSeconds *int   `json:"possession_time_seconds"`
}

// ToTeamGameStat converts the API payload to the db model
func (si *TeamGameStatInput) ToTeamGameStat() *TeamGameStat {
	s := &TeamGameStat{
		HomeAway: nullStr(si.HomeAway),

		FirstDowns:         nullInt(si.FirstDowns),
		FirstDownsPassing:  nullInt(si.FirstDownsPassing),
		FirstDownsRushing:  nullInt(si.FirstDownsRushing),
		FirstDownsPenalty:  nullInt(si.FirstDownsPenalty),
		ThirdDownEff:       nullStr(si.ThirdDownEff),
		ThirdDownConvs:     nullInt(si.ThirdDownConvs),
		ThirdDownAttempts:  nullInt(si.ThirdDownAttempts),
		FourthDownEff:      nullStr(si.FourthDownEff),
		FourthDownConvs:    nullInt(si.FourthDownConvs),
		FourthDownAttempts: nullInt(si.FourthDownAttempts),

		TotalOffensivePlays: nullInt(si.TotalOffensivePlays),
		TotalYards:          nullInt(si.TotalYards),
		YardsPerPlay:        nullFloat(si.YardsPerPlay),
		TotalDrives:         nullInt(si.TotalDrives),

		NetPassingYards:    nullInt(si.NetPassingYards),
		PassingCompletions: nullInt(si.PassingCompletions),
		PassingAttempts:    nullInt(si.PassingAttempts),
		YardsPerPass:       nullFloat(si.YardsPerPass),
		Sacks:              nullInt(si.Sacks),
		SackYardsLost:      nullInt(si.SackYardsLost),

		RushingYards:        nullInt(si.RushingYards),
		RushingAttempts:     nullInt(si.RushingAttempts),
		YardsPerRushAttempt: nullFloat(si.YardsPerRushAttempt),

		RedZoneScores:   nullInt(si.RedZoneScores),
		RedZoneAttempts: nullInt(si.RedZoneAttempts),
		Penalties:       nullInt(si.Penalties),
		PenaltyYards:    nullInt(si.PenaltyYards),

		Turnovers:           nullInt(si.Turnovers),
		FumblesLost:         nullInt(si.FumblesLost),
		InterceptionsThrown: nullInt(si.InterceptionsThrown),
		DefensiveTouchdowns: nullInt(si.DefensiveTouchdowns),

		PossessionTime:        nullStr(si.PossessionTime),
		PossessionTimeSeconds: nullInt(si.PossessionTimeSeconds),

		UpdatedAt: time.Now().UTC(),
	}

	if si.Team != nil {
		s.TeamID = si.Team.ID
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
func (s *TeamGameStat) Valid() bool {
	return s.TeamID != 0 && s.GameID != 0
}
