package models

import (
	"database/sql"
	"time"
)

// AdvancedReceivingStat represents a player's tracking-derived receiving line.
// Week 0 holds the full-season aggregate.
type AdvancedReceivingStat struct {
	ID         int  `db:"id"`
	PlayerID   int  `db:"player_id"`
	Season     int  `db:"season"`
	Week       int  `db:"week"`
	Postseason bool `db:"postseason"`

	Receptions sql.NullInt32 `db:"receptions"`
	Targets    sql.NullInt32 `db:"targets"`
	Yards      sql.NullInt32 `db:"yards"`

	AvgYAC                         sql.NullFloat64 `db:"avg_yac"`
	AvgExpectedYAC                 sql.NullFloat64 `db:"avg_expected_yac"`
	AvgYACAboveExpectation         sql.NullFloat64 `db:"avg_yac_above_expectation"`
	CatchPercentage                sql.NullFloat64 `db:"catch_percentage"`
	AvgCushion                     sql.NullFloat64 `db:"avg_cushion"`
	AvgSeparation                  sql.NullFloat64 `db:"avg_separation"`
	PercentShareOfIntendedAirYards sql.NullFloat64 `db:"percent_share_of_intended_air_yards"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AdvancedRushingStat represents a player's tracking-derived rushing line
type AdvancedRushingStat struct {
	ID         int  `db:"id"`
	PlayerID   int  `db:"player_id"`
	Season     int  `db:"season"`
	Week       int  `db:"week"`
	Postseason bool `db:"postseason"`

	RushAttempts   sql.NullInt32 `db:"rush_attempts"`
	RushYards      sql.NullInt32 `db:"rush_yards"`
	RushTouchdowns sql.NullInt32 `db:"rush_touchdowns"`

	Efficiency                       sql.NullFloat64 `db:"efficiency"`
	AvgRushYards                     sql.NullFloat64 `db:"avg_rush_yards"`
	ExpectedRushYards                sql.NullFloat64 `db:"expected_rush_yards"`
	RushYardsOverExpected            sql.NullFloat64 `db:"rush_yards_over_expected"`
	RushYardsOverExpectedPerAtt      sql.NullFloat64 `db:"rush_yards_over_expected_per_att"`
	RushPctOverExpected              sql.NullFloat64 `db:"rush_pct_over_expected"`
	AvgTimeToLOS                     sql.NullFloat64 `db:"avg_time_to_los"`
	PercentAttemptsGteEightDefenders sql.NullFloat64 `db:"percent_attempts_gte_eight_defenders"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AdvancedPassingStat represents a player's tracking-derived passing line
type AdvancedPassingStat struct {
	ID         int  `db:"id"`
	PlayerID   int  `db:"player_id"`
	Season     int  `db:"season"`
	Week       int  `db:"week"`
	Postseason bool `db:"postseason"`

	Attempts       sql.NullInt32 `db:"attempts"`
	Completions    sql.NullInt32 `db:"completions"`
	PassYards      sql.NullInt32 `db:"pass_yards"`
	PassTouchdowns sql.NullInt32 `db:"pass_touchdowns"`
	Interceptions  sql.NullInt32 `db:"interceptions"`

	PasserRating                         sql.NullFloat64 `db:"passer_rating"`
	CompletionPercentageAboveExpectation sql.NullFloat64 `db:"completion_percentage_above_expectation"`
	ExpectedCompletionPercentage         sql.NullFloat64 `db:"expected_completion_percentage"`
	Aggressiveness                       sql.NullFloat64 `db:"aggressiveness"`
	AvgTimeToThrow                       sql.NullFloat64 `db:"avg_time_to_throw"`
	AvgIntendedAirYards                  sql.NullFloat64 `db:"avg_intended_air_yards"`
	AvgCompletedAirYards                 sql.NullFloat64 `db:"avg_completed_air_yards"`
	AvgAirDistance                       sql.NullFloat64 `db:"avg_air_distance"`
	AvgAirYardsDifferential              sql.NullFloat64 `db:"avg_air_yards_differential"`
	AvgAirYardsToSticks                  sql.NullFloat64 `db:"avg_air_yards_to_sticks"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// advancedKey carries the natural key fields shared by the advanced stat
// payloads. Season, week, and postseason are pointers so a value absent from
// the feed can be backfilled from the request context.
type advancedKey struct {
	Player     *PlayerInput `json:"player"`
	Season     *int         `json:"season"`
	Week       *int         `json:"week"`
	Postseason *bool        `json:"postseason"`
}

func (k *advancedKey) resolve(season, week int, postseason bool) (int, int, int, bool) {
	playerID := 0
	if k.Player != nil {
		playerID = k.Player.ID
	}
	if k.Season != nil {
		season = *k.Season
	}
	if k.Week != nil {
		week = *k.Week
	}
	if k.Postseason != nil {
		postseason = *k.Postseason
	}
	return playerID, season, week, postseason
}

// AdvancedReceivingStatInput is the provider's advanced receiving payload
type AdvancedReceivingStatInput struct {
	advancedKey

	Receptions *int `json:"receptions"`
	Targets    *int `json:"targets"`
	Yards      *int `json:"yards"`

	AvgYAC                         *float64 `json:"avg_yac"`
	AvgExpectedYAC                 *float64 `json:"avg_expected_yac"`
	AvgYACAboveExpectation         *float64 `json:"avg_yac_above_expectation"`
	CatchPercentage                *float64 `json:"catch_percentage"`
	AvgCushion                     *float64 `json:"avg_cushion"`
	AvgSeparation                  *float64 `json:"avg_separation"`
	PercentShareOfIntendedAirYards *float64 `json:"percent_share_of_intended_air_yards"`
}

// ToAdvancedReceivingStat converts the API payload to the db model, filling
// season, week, and postseason from the request context when the feed omits
// them
func (si *AdvancedReceivingStatInput) ToAdvancedReceivingStat(season, week int, postseason bool) *AdvancedReceivingStat {
	playerID, season, week, postseason := si.resolve(season, week, postseason)

	return &AdvancedReceivingStat{
		PlayerID:   playerID,
		Season:     season,
		Week:       week,
		Postseason: postseason,

		Receptions: nullInt(si.Receptions),
		Targets:    nullInt(si.Targets),
		Yards:      nullInt(si.Yards),

		AvgYAC:                         nullFloat(si.AvgYAC),
		AvgExpectedYAC:                 nullFloat(si.AvgExpectedYAC),
		AvgYACAboveExpectation:         nullFloat(si.AvgYACAboveExpectation),
		CatchPercentage:                nullFloat(si.CatchPercentage),
		AvgCushion:                     nullFloat(si.AvgCushion),
		AvgSeparation:                  nullFloat(si.AvgSeparation),
		PercentShareOfIntendedAirYards: nullFloat(si.PercentShareOfIntendedAirYards),

		UpdatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the row carries its natural key
func (s *AdvancedReceivingStat) Valid() bool {
	return s.PlayerID != 0 && s.Season != 0
}

// AdvancedRushingStatInput is the provider's advanced rushing payload
type AdvancedRushingStatInput struct {
	advancedKey

	RushAttempts   *int `json:"rush_attempts"`
	RushYards      *int `json:"rush_yards"`
	RushTouchdowns *int `json:"rush_touchdowns"`

	Efficiency                       *float64 `json:"efficiency"`
	AvgRushYards                     *float64 `json:"avg_rush_yards"`
	ExpectedRushYards                *float64 `json:"expected_rush_yards"`
	RushYardsOverExpected            *float64 `json:"rush_yards_over_expected"`
	RushYardsOverExpectedPerAtt      *float64 `json:"rush_yards_over_expected_per_att"`
	RushPctOverExpected              *float64 `json:"rush_pct_over_expected"`
	AvgTimeToLOS                     *float64 `json:"avg_time_to_los"`
	PercentAttemptsGteEightDefenders *float64 `json:"percent_attempts_gte_eight_defenders"`
}

// ToAdvancedRushingStat converts the API payload to the db model
func (si *AdvancedRushingStatInput) ToAdvancedRushingStat(season, week int, postseason bool) *AdvancedRushingStat {
	playerID, season, week, postseason := si.resolve(season, week, postseason)

	return &AdvancedRushingStat{
		PlayerID:   playerID,
		Season:     season,
		Week:       week,
		Postseason: postseason,

		RushAttempts:   nullInt(si.RushAttempts),
		RushYards:      nullInt(si.RushYards),
		RushTouchdowns: nullInt(si.RushTouchdowns),

		Efficiency:                       nullFloat(si.Efficiency),
		AvgRushYards:                     nullFloat(si.AvgRushYards),
		ExpectedRushYards:                nullFloat(si.ExpectedRushYards),
		RushYardsOverExpected:            nullFloat(si.RushYardsOverExpected),
		RushYardsOverExpectedPerAtt:      nullFloat(si.RushYardsOverExpectedPerAtt),
		RushPctOverExpected:              nullFloat(si.RushPctOverExpected),
		AvgTimeToLOS:                     nullFloat(si.AvgTimeToLOS),
		PercentAttemptsGteEightDefenders: nullFloat(si.PercentAttemptsGteEightDefenders),

		UpdatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the row carries its natural key
func (s *AdvancedRushingStat) Valid() bool {
	return s.PlayerID != 0 && s.Season != 0
}

// AdvancedPassingStatInput is the provider's advanced passing payload
type AdvancedPassingStatInput struct {
	advancedKey

	Attempts       *int `json:"attempts"`
	Completions    *int `json:"completions"`
	PassYards      *int `json:"pass_yards"`
	PassTouchdowns *int `json:"pass_touchdowns"`
	Interceptions  *int `json:"interceptions"`

	PasserRating                         *float64 `json:"passer_rating"`
	CompletionPercentageAboveExpectation *float64 `json:"completion_percentage_above_expectation"`
	ExpectedCompletionPercentage         *float64 `json:"expected_completion_percentage"`
	Aggressiveness                       *float64 `json:"aggressiveness"`
	AvgTimeToThrow                       *float64 `json:"avg_time_to_throw"`
	AvgIntendedAirYards                  *float64 `json:"avg_intended_air_yards"`
	AvgCompletedAirYards                 *float64 `json:"avg_completed_air_yards"`
	AvgAirDistance                       *float64 `json:"avg_air_distance"`
	AvgAirYardsDifferential              *float64 `json:"avg_air_yards_differential"`
	AvgAirYardsToSticks                  *float64 `json:"avg_air_yards_to_sticks"`
}

// ToAdvancedPassingStat converts the API payload to the db model
func (si *AdvancedPassingStatInput) ToAdvancedPassingStat(season, week int, postseason bool) *AdvancedPassingStat {
	playerID, season, week, postseason := si.resolve(season, week, postseason)

	return &AdvancedPassingStat{
		PlayerID:   playerID,
		Season:     season,
		Week:       week,
		Postseason: postseason,

		Attempts:       nullInt(si.Attempts),
		Completions:    nullInt(si.Completions),
		PassYards:      nullInt(si.PassYards),
		PassTouchdowns: nullInt(si.PassTouchdowns),
		Interceptions:  nullInt(si.Interceptions),

		PasserRating:                         nullFloat(si.PasserRating),
		CompletionPercentageAboveExpectation: nullFloat(si.CompletionPercentageAboveExpectation),
		ExpectedCompletionPercentage:         nullFloat(si.ExpectedCompletionPercentage),
		Aggressiveness:                       nullFloat(si.Aggressiveness),
		AvgTimeToThrow:                       nullFloat(si.AvgTimeToThrow),
		AvgIntendedAirYards:                  nullFloat(si.AvgIntendedAirYards),
		AvgCompletedAirYards:                 nullFloat(si.AvgCompletedAirYards),
		AvgAirDistance:                       nullFloat(si.AvgAirDistance),
		AvgAirYardsDifferential:              nullFloat(si.AvgAirYardsDifferential),
		AvgAirYardsToSticks:                  nullFloat(si.AvgAirYardsToSticks),

		UpdatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the row carries its natural key
func (s *AdvancedPassingStat) Valid() bool {
	return s.PlayerID != 0 && s.Season != 0
}
