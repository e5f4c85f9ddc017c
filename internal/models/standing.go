package models

import (
	"database/sql"
	"time"
)

// Standing represents a team's position in the season table
type Standing struct {
	ID     int `db:"id"`
	TeamID int `db:"team_id"`
	Season int `db:"season"`

	Wins              sql.NullInt32  `db:"wins"`
	Losses            sql.NullInt32  `db:"losses"`
	Ties              sql.NullInt32  `db:"ties"`
	PointsFor         sql.NullInt32  `db:"points_for"`
	PointsAgainst     sql.NullInt32  `db:"points_against"`
	PointDifferential sql.NullInt32  `db:"point_differential"`
	PlayoffSeed       sql.NullInt32  `db:"playoff_seed"`
	OverallRecord     sql.NullString `db:"overall_record"`
	ConferenceRecord  sql.NullString `db:"conference_record"`
	DivisionRecord    sql.NullString `db:"division_record"`
	HomeRecord        sql.NullString `db:"home_record"`
	RoadRecord        sql.NullString `db:"road_record"`
	WinStreak         sql.NullInt32  `db:"win_streak"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// StandingInput is the provider's standings payload
type StandingInput struct {
	Team   *TeamInput `json:"team"`
	Season int        `json:"season"`

	Wins              *int   `json:"wins"`
	Losses            *int   `json:"losses"`
	Ties              *int   `json:"ties"`
	PointsFor         *int   `json:"points_for"`
	PointsAgainst     *int   `json:"points_against"`
	PointDifferential *int   `json:"point_differential"`
	PlayoffSeed       *int   `json:"playoff_seed"`
	OverallRecord     string `json:"overall_record"`
	ConferenceRecord  string `json:"conference_record"`
	DivisionRecord    string `json:"division_record"`
	HomeRecord        string `json:"home_record"`
	RoadRecord        string `json:"road_record"`
	WinStreak         *int   `json:"win_streak"`
}

// ToStanding converts StandingInput (from API) to Standing model
func (si *StandingInput) ToStanding() *Standing {
	s := &Standing{
		Season: si.Season,

		Wins:              nullInt(si.Wins),
		Losses:            nullInt(si.Losses),
		Ties:              nullInt(si.Ties),
		PointsFor:         nullInt(si.PointsFor),
		PointsAgainst:     nullInt(si.PointsAgainst),
		PointDifferential: nullInt(si.PointDifferential),
		PlayoffSeed:       nullInt(si.PlayoffSeed),
		OverallRecord:     nullStr(si.OverallRecord),
		ConferenceRecord:  nullStr(si.ConferenceRecord),
		DivisionRecord:    nullStr(si.DivisionRecord),
		HomeRecord:        nullStr(si.HomeRecord),
		RoadRecord:        nullStr(si.RoadRecord),
		WinStreak:         nullInt(si.WinStreak),

		UpdatedAt: time.Now().UTC(),
	}

	if si.Team != nil {
		s.TeamID = si.Team.ID
	}

	return s
}

// Valid reports whether the row carries its natural key
func (s *Standing) Valid() bool {
	return s.TeamID != 0 && s.Season != 0
}
