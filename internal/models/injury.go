package models

import (
	"database/sql"
	"time"
)

// Injury represents a player's entry on the current injury report
type Injury struct {
	ID         int            `db:"id"`
	PlayerID   int            `db:"player_id"`
	ReportDate string         `db:"report_date"`
	Status     sql.NullString `db:"status"`
	Comment    sql.NullString `db:"comment"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// InjuryInput is the provider's injury report payload
type InjuryInput struct {
	Player  *PlayerInput `json:"player"`
	Status  string       `json:"status"`
	Comment string       `json:"comment"`
	Date    string       `json:"date"`
}

// ToInjury converts InjuryInput (from API) to Injury model
func (ii *InjuryInput) ToInjury() *Injury {
	inj := &Injury{
		ReportDate: ii.Date,
		Status:     nullStr(ii.Status),
		Comment:    nullStr(ii.Comment),
		UpdatedAt:  time.Now().UTC(),
	}

	if ii.Player != nil {
		inj.PlayerID = ii.Player.ID
	}

	return inj
}

// Valid reports whether the row carries its natural key
func (i *Injury) Valid() bool {
	return i.PlayerID != 0 && i.ReportDate != ""
}
