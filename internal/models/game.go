package models

import (
	"database/sql"
	"time"
)

// Game represents a scheduled or completed NFL game
type Game struct {
	ID            int            `db:"id"`
	GameID        int            `db:"game_id"`
	Season        int            `db:"season"`
	Week          int            `db:"week"`
	Postseason    bool           `db:"postseason"`
	HomeTeamID    int            `db:"home_team_id"`
	VisitorTeamID int            `db:"visitor_team_id"`
	GameDate      sql.NullTime   `db:"game_date"`
	Status        sql.NullString `db:"status"`
	Venue         sql.NullString `db:"venue"`
	Summary       sql.NullString `db:"summary"`

	// Scores
	HomeScore    sql.NullInt32 `db:"home_score"`
	VisitorScore sql.NullInt32 `db:"visitor_score"`

	// Quarter scores
	HomeQ1 sql.NullInt32 `db:"home_q1"`
	HomeQ2 sql.NullInt32 `db:"home_q2"`
	HomeQ3 sql.NullInt32 `db:"home_q3"`
	HomeQ4 sql.NullInt32 `db:"home_q4"`
	HomeOT sql.NullInt32 `db:"home_ot"`

	VisitorQ1 sql.NullInt32 `db:"visitor_q1"`
	VisitorQ2 sql.NullInt32 `db:"visitor_q2"`
	VisitorQ3 sql.NullInt32 `db:"visitor_q3"`
	VisitorQ4 sql.NullInt32 `db:"visitor_q4"`
	VisitorOT sql.NullInt32 `db:"visitor_ot"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GameInput is the provider's game payload
type GameInput struct {
	ID          int        `json:"id"`
	Season      int        `json:"season"`
	Week        int        `json:"week"`
	Date        string     `json:"date"` // ISO 8601
	Postseason  bool       `json:"postseason"`
	Status      string     `json:"status"`
	Venue       string     `json:"venue"`
	Summary     string     `json:"summary"`
	HomeTeam    *TeamInput `json:"home_team"`
	VisitorTeam *TeamInput `json:"visitor_team"`

	HomeTeamScore *int `json:"home_team_score"`
	HomeTeamQ1    *int `json:"home_team_q1"`
	HomeTeamQ2    *int `json:"home_team_q2"`
	HomeTeamQ3    *int `json:"home_team_q3"`
	HomeTeamQ4    *int `json:"home_team_q4"`
	HomeTeamOT    *int `json:"home_team_ot"`

	VisitorTeamScore *int `json:"visitor_team_score"`
	VisitorTeamQ1    *int `json:"visitor_team_q1"`
	VisitorTeamQ2    *int `json:"visitor_team_q2"`
	VisitorTeamQ3    *int `json:"visitor_team_q3"`
	VisitorTeamQ4    *int `json:"visitor_team_q4"`
	VisitorTeamOT    *int `json:"visitor_team_ot"`
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func nullStr(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// ToGame converts GameInput (from API) to Game model
func (gi *GameInput) ToGame() *Game {
	g := &Game{
		GameID:     gi.ID,
		Season:     gi.Season,
		Week:       gi.Week,
		Postseason: gi.Postseason,
		Status:     nullStr(gi.Status),
		Venue:      nullStr(gi.Venue),
		Summary:    nullStr(gi.Summary),

		HomeScore:    nullInt(gi.HomeTeamScore),
		HomeQ1:       nullInt(gi.HomeTeamQ1),
		HomeQ2:       nullInt(gi.HomeTeamQ2),
		HomeQ3:       nullInt(gi.HomeTeamQ3),
		HomeQ4:       nullInt(gi.HomeTeamQ4),
		HomeOT:       nullInt(gi.HomeTeamOT),
		VisitorScore: nullInt(gi.VisitorTeamScore),
		VisitorQ1:    nullInt(gi.VisitorTeamQ1),
		VisitorQ2:    nullInt(gi.VisitorTeamQ2),
		VisitorQ3:    nullInt(gi.VisitorTeamQ3),
		VisitorQ4:    nullInt(gi.VisitorTeamQ4),
		VisitorOT:    nullInt(gi.VisitorTeamOT),

		UpdatedAt: time.Now().UTC(),
	}

	if gi.HomeTeam != nil {
		g.HomeTeamID = gi.HomeTeam.ID
	}
	if gi.VisitorTeam != nil {
		g.VisitorTeamID = gi.VisitorTeam.ID
	}
	if t, err := time.Parse(time.RFC3339, gi.Date); err == nil {
		g.GameDate = sql.NullTime{Time: t, Valid: true}
	}

	return g
}

// Valid reports whether the row carries its natural key
func (g *Game) Valid() bool {
	return g.GameID != 0
}
