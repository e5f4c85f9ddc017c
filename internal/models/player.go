package models

import (
	"database/sql"
	"time"
)

// Player represents an NFL player
type Player struct {
	ID                   int            `db:"id"`
	PlayerID             int            `db:"player_id"`
	FirstName            string         `db:"first_name"`
	LastName             string         `db:"last_name"`
	Position             sql.NullString `db:"position"`
	PositionAbbreviation sql.NullString `db:"position_abbreviation"`
	Height               sql.NullString `db:"height"`
	Weight               sql.NullString `db:"weight"`
	JerseyNumber         sql.NullString `db:"jersey_number"`
	College              sql.NullString `db:"college"`
	Experience           sql.NullString `db:"experience"`
	Age                  sql.NullInt32  `db:"age"`
	TeamID               sql.NullInt32  `db:"team_id"`
	IsActive             bool           `db:"is_active"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

// PlayerInput is the provider's player payload
type PlayerInput struct {
	ID                   int        `json:"id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Position             string     `json:"position"`
	PositionAbbreviation string     `json:"position_abbreviation"`
	Height               string     `json:"height"`
	Weight               string     `json:"weight"`
	JerseyNumber         string     `json:"jersey_number"`
	College              string     `json:"college"`
	Experience           string     `json:"experience"`
	Age                  *int       `json:"age"`
	Team                 *TeamInput `json:"team"`
}

// ToPlayer converts PlayerInput (from API) to Player model
func (pi *PlayerInput) ToPlayer() *Player {
	p := &Player{
		PlayerID:  pi.ID,
		FirstName: pi.FirstName,
		LastName:  pi.LastName,
		UpdatedAt: time.Now().UTC(),
	}

	if pi.Position != "" {
		p.Position = sql.NullString{String: pi.Position, Valid: true}
	}
	if pi.PositionAbbreviation != "" {
		p.PositionAbbreviation = sql.NullString{String: pi.PositionAbbreviation, Valid: true}
	}
	if pi.Height != "" {
		p.Height = sql.NullString{String: pi.Height, Valid: true}
	}
	if pi.Weight != "" {
		p.Weight = sql.NullString{String: pi.Weight, Valid: true}
	}
	if pi.JerseyNumber != "" {
		p.JerseyNumber = sql.NullString{String: pi.JerseyNumber, Valid: true}
	}
	if pi.College != "" {
		p.College = sql.NullString{String: pi.College, Valid: true}
	}
	if pi.Experience != "" {
		p.Experience = sql.NullString{String: pi.Experience, Valid: true}
	}
	if pi.Age != nil {
		p.Age = sql.NullInt32{Int32: int32(*pi.Age), Valid: true}
	}
	if pi.Team != nil && pi.Team.ID != 0 {
		p.TeamID = sql.NullInt32{Int32: int32(pi.Team.ID), Valid: true}
	}

	return p
}

// Valid reports whether the row carries its natural key
func (p *Player) Valid() bool {
	return p.PlayerID != 0
}
