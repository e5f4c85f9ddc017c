package models

import (
	"bytes"
	"database/sql"
	"strings"
	"time"
)

// FlexID accepts identifiers the provider ships as either numbers or strings
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = FlexID(bytes.Trim(b, `"`))
	return nil
}

func (f FlexID) String() string { return string(f) }

// PropTypes maps the provider's prop type names to canonical market names.
// Props outside this map are not stored.
var PropTypes = map[string]string{
	"passing_yards":           "player_pass_yds",
	"rushing_yards":           "player_rush_yds",
	"receiving_yards":         "player_rec_yds",
	"passing_tds":             "player_pass_tds",
	"passing_attempts":        "player_pass_att",
	"rushing_attempts":        "player_rush_att",
	"rushing_receiving_yards": "player_rush_rec_yds",
	"longest_rush":            "player_longest_rush",
	"longest_reception":       "player_longest_rec",
}

// PlayerProp represents a single vendor line for a player market
type PlayerProp struct {
	ID       int    `db:"id"`
	PropID   string `db:"prop_id"`
	GameID   int    `db:"game_id"`
	PlayerID int    `db:"player_id"`
	Vendor   string `db:"vendor"`
	PropType string `db:"prop_type"`

	MarketType sql.NullString  `db:"market_type"`
	LineValue  sql.NullFloat64 `db:"line_value"`
	OverOdds   sql.NullFloat64 `db:"over_odds"`
	UnderOdds  sql.NullFloat64 `db:"under_odds"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PropMarket is the nested market object on a prop payload
type PropMarket struct {
	Type      string   `json:"type"`
	OverOdds  *float64 `json:"over_odds"`
	UnderOdds *float64 `json:"under_odds"`
}

// PlayerPropInput is the provider's player prop payload. The provider has
// shipped the id as both a number and a string, and the book under both
// vendor and bookmaker keys.
type PlayerPropInput struct {
	ID        FlexID      `json:"id"`
	GameID    int         `json:"game_id"`
	PlayerID  int         `json:"player_id"`
	Vendor    string      `json:"vendor"`
	Bookmaker string      `json:"bookmaker"`
	PropType  string      `json:"prop_type"`
	LineValue *float64    `json:"line_value"`
	Market    *PropMarket `json:"market"`
}

// vendor resolves the book name, preferring vendor over bookmaker
func (pi *PlayerPropInput) vendor() string {
	if pi.Vendor != "" {
		return strings.ToLower(pi.Vendor)
	}
	return strings.ToLower(pi.Bookmaker)
}

// OverUnder reports whether the prop is an over/under market
func (pi *PlayerPropInput) OverUnder() bool {
	return pi.Market != nil && pi.Market.Type == "over_under"
}

// ToPlayerProp converts the API payload to the db model, translating the
// prop type to its canonical name. Returns false for unmapped prop types.
func (pi *PlayerPropInput) ToPlayerProp() (*PlayerProp, bool) {
	propType, ok := PropTypes[pi.PropType]
	if !ok {
		return nil, false
	}

	p := &PlayerProp{
		PropID:    pi.ID.String(),
		GameID:    pi.GameID,
		PlayerID:  pi.PlayerID,
		Vendor:    pi.vendor(),
		PropType:  propType,
		LineValue: nullFloat(pi.LineValue),
		UpdatedAt: time.Now().UTC(),
	}

	if pi.Market != nil {
		p.MarketType = nullStr(pi.Market.Type)
		p.OverOdds = nullFloat(pi.Market.OverOdds)
		p.UnderOdds = nullFloat(pi.Market.UnderOdds)
	}

	return p, true
}

// Valid reports whether the row carries its natural key
func (p *PlayerProp) Valid() bool {
	return p.PropID != "" && p.PlayerID != 0 && p.GameID != 0
}
