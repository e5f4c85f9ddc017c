package models

import (
	"database/sql"
	"time"
)

// specialTeamsPositions are roster slots a player can hold in addition to a
// primary position. When the feed lists a player twice, the primary entry wins.
var specialTeamsPositions = map[string]bool{
	"KR": true,
	"PR": true,
	"LS": true,
	"P":  true,
	"PK": true,
	"H":  true,
}

// IsSpecialTeamsPosition reports whether pos is a special-teams roster slot
func IsSpecialTeamsPosition(pos string) bool {
	return specialTeamsPositions[pos]
}

// RosterEntry represents one player's slot on a team roster for a season
type RosterEntry struct {
	ID       int `db:"id"`
	TeamID   int `db:"team_id"`
	PlayerID int `db:"player_id"`
	Season   int `db:"season"`

	Position     sql.NullString `db:"position"`
	Depth        sql.NullInt32  `db:"depth"`
	InjuryStatus sql.NullString `db:"injury_status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RosterEntryInput is the provider's roster payload. Team and season come
// from the request, not the payload.
type RosterEntryInput struct {
	Player       *PlayerInput `json:"player"`
	Position     string       `json:"position"`
	Depth        *int         `json:"depth"`
	InjuryStatus string       `json:"injury_status"`
}

// ToRosterEntry converts the API payload to the db model, filling in the
// requested team and season
func (ri *RosterEntryInput) ToRosterEntry(teamID, season int) *RosterEntry {
	e := &RosterEntry{
		TeamID:       teamID,
		Season:       season,
		Position:     nullStr(ri.Position),
		Depth:        nullInt(ri.Depth),
		InjuryStatus: nullStr(ri.InjuryStatus),
		UpdatedAt:    time.Now().UTC(),
	}

	if ri.Player != nil {
		e.PlayerID = ri.Player.ID
	}

	return e
}

// Valid reports whether the row carries its natural key
func (e *RosterEntry) Valid() bool {
	return e.TeamID != 0 && e.PlayerID != 0 && e.Season != 0
}
