package models

import (
	"database/sql"
	"time"
)

// Team represents an NFL franchise
type Team struct {
	ID           int            `db:"id"`
	TeamID       int            `db:"team_id"`
	Name         string         `db:"name"`
	FullName     string         `db:"full_name"`
	Abbreviation string         `db:"abbreviation"`
	Conference   sql.NullString `db:"conference"`
	Division     sql.NullString `db:"division"`
	Location     sql.NullString `db:"location"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// TeamInput is the provider's team payload
type TeamInput struct {
	ID           int    `json:"id"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

// ToTeam converts TeamInput (from API) to Team model
func (ti *TeamInput) ToTeam() *Team {
	team := &Team{
		TeamID:       ti.ID,
		Name:         ti.Name,
		FullName:     ti.FullName,
		Abbreviation: ti.Abbreviation,
		UpdatedAt:    time.Now().UTC(),
	}

	if ti.Conference != "" {
		team.Conference = sql.NullString{String: ti.Conference, Valid: true}
	}
	if ti.Division != "" {
		team.Division = sql.NullString{String: ti.Division, Valid: true}
	}
	if ti.Location != "" {
		team.Location = sql.NullString{String: ti.Location, Valid: true}
	}

	return team
}

// Valid reports whether the row carries its natural key
func (t *Team) Valid() bool {
	return t.TeamID != 0
}
