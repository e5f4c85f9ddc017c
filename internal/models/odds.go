package models

import (
	"database/sql"
	"time"
)

// GameOdds represents a vendor's game-level betting line (spread, total,
// moneyline)
type GameOdds struct {
	ID     int    `db:"id"`
	OddsID string `db:"odds_id"`
	GameID int    `db:"game_id"`
	Vendor string `db:"vendor"`

	SpreadHomeValue sql.NullFloat64 `db:"spread_home_value"`
	SpreadHomeOdds  sql.NullFloat64 `db:"spread_home_odds"`
	SpreadAwayValue sql.NullFloat64 `db:"spread_away_value"`
	SpreadAwayOdds  sql.NullFloat64 `db:"spread_away_odds"`

	TotalValue     sql.NullFloat64 `db:"total_value"`
	TotalOverOdds  sql.NullFloat64 `db:"total_over_odds"`
	TotalUnderOdds sql.NullFloat64 `db:"total_under_odds"`

	MoneylineHomeOdds sql.NullFloat64 `db:"moneyline_home_odds"`
	MoneylineAwayOdds sql.NullFloat64 `db:"moneyline_away_odds"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GameOddsInput is the provider's odds payload
type GameOddsInput struct {
	ID     FlexID `json:"id"`
	GameID int    `json:"game_id"`
	Vendor string `json:"vendor"`

	SpreadHomeValue *float64 `json:"spread_home_value"`
	SpreadHomeOdds  *float64 `json:"spread_home_odds"`
	SpreadAwayValue *float64 `json:"spread_away_value"`
	SpreadAwayOdds  *float64 `json:"spread_away_odds"`

	TotalValue     *float64 `json:"total_value"`
	TotalOverOdds  *float64 `json:"total_over_odds"`
	TotalUnderOdds *float64 `json:"total_under_odds"`

	MoneylineHomeOdds *float64 `json:"moneyline_home_odds"`
	MoneylineAwayOdds *float64 `json:"moneyline_away_odds"`
}

// ToGameOdds converts GameOddsInput (from API) to GameOdds model
func (oi *GameOddsInput) ToGameOdds() *GameOdds {
	return &GameOdds{
		OddsID: oi.ID.String(),
		GameID: oi.GameID,
		Vendor: oi.Vendor,

		SpreadHomeValue: nullFloat(oi.SpreadHomeValue),
		SpreadHomeOdds:  nullFloat(oi.SpreadHomeOdds),
		SpreadAwayValue: nullFloat(oi.SpreadAwayValue),
		SpreadAwayOdds:  nullFloat(oi.SpreadAwayOdds),

		TotalValue:     nullFloat(oi.TotalValue),
		TotalOverOdds:  nullFloat(oi.TotalOverOdds),
		TotalUnderOdds: nullFloat(oi.TotalUnderOdds),

		MoneylineHomeOdds: nullFloat(oi.MoneylineHomeOdds),
		MoneylineAwayOdds: nullFloat(oi.MoneylineAwayOdds),

		UpdatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the row carries its natural key
func (o *GameOdds) Valid() bool {
	return o.OddsID != "" && o.GameID != 0
}
