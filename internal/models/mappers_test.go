package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTeam(t *testing.T) {
	in := TeamInput{
		ID:           14,
		Conference:   "NFC",
		Division:     "NORTH",
		Location:     "Green Bay",
		Name:         "Packers",
		FullName:     "Green Bay Packers",
		Abbreviation: "GB",
	}

	team := in.ToTeam()

	assert.Equal(t, 14, team.TeamID)
	assert.Equal(t, "Packers", team.Name)
	assert.True(t, team.Conference.Valid)
	assert.Equal(t, "NFC", team.Conference.String)
	assert.True(t, team.Valid())
}

func TestToPlayerMissingTeam(t *testing.T) {
	in := PlayerInput{
		ID:        901,
		FirstName: "Jordan",
		LastName:  "Love",
		Position:  "Quarterback",
	}

	p := in.ToPlayer()

	assert.Equal(t, 901, p.PlayerID)
	assert.False(t, p.TeamID.Valid)
	assert.False(t, p.Age.Valid)
	assert.False(t, p.IsActive)
	assert.True(t, p.Valid())
}

func TestToGameNestedTeams(t *testing.T) {
	var in GameInput
	payload := `{
		"id": 5501,
		"season": 2025,
		"week": 3,
		"date": "2025-09-21T17:00:00Z",
		"postseason": false,
		"status": "Final",
		"home_team": {"id": 14},
		"visitor_team": {"id": 7},
		"home_team_score": 27,
		"visitor_team_score": 24,
		"home_team_q1": 7
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	g := in.ToGame()

	assert.Equal(t, 5501, g.GameID)
	assert.Equal(t, 14, g.HomeTeamID)
	assert.Equal(t, 7, g.VisitorTeamID)
	require.True(t, g.GameDate.Valid)
	assert.Equal(t, 2025, g.GameDate.Time.Year())
	assert.True(t, g.HomeScore.Valid)
	assert.Equal(t, int32(27), g.HomeScore.Int32)
	assert.True(t, g.HomeQ1.Valid)
	assert.False(t, g.HomeQ2.Valid)
	assert.True(t, g.Valid())
}

func TestToPlayerGameStatBackfillsFromGame(t *testing.T) {
	yards := 112
	in := PlayerGameStatInput{
		Player:         &PlayerInput{ID: 901},
		Team:           &TeamInput{ID: 14},
		Game:           &GameInput{ID: 5501, Season: 2025, Week: 3},
		ReceivingYards: &yards,
	}

	s := in.ToPlayerGameStat()

	assert.Equal(t, 901, s.PlayerID)
	assert.Equal(t, 5501, s.GameID)
	require.True(t, s.Season.Valid)
	assert.Equal(t, int32(2025), s.Season.Int32)
	require.True(t, s.Week.Valid)
	assert.Equal(t, int32(3), s.Week.Int32)
	assert.True(t, s.ReceivingYards.Valid)
	assert.True(t, s.Valid())
}

func TestToPlayerGameStatMissingNested(t *testing.T) {
	in := PlayerGameStatInput{}

	s := in.ToPlayerGameStat()

	assert.Equal(t, 0, s.PlayerID)
	assert.Equal(t, 0, s.GameID)
	assert.False(t, s.Valid())
}

func TestToTeamSeasonStatSeasonOverride(t *testing.T) {
	seasonType := 3
	in := TeamSeasonStatInput{
		Team:       &TeamInput{ID: 14},
		SeasonType: &seasonType,
	}
	raw := json.RawMessage(`{"team":{"id":14}}`)

	s := in.ToTeamSeasonStat(raw, 2025)

	assert.Equal(t, 14, s.TeamID)
	assert.Equal(t, 2025, s.Season)
	assert.True(t, s.Postseason)
	assert.Equal(t, raw, s.StatsJSON)
	assert.True(t, s.Valid())
}

func TestToAdvancedReceivingStatBackfill(t *testing.T) {
	yac := 5.8
	in := AdvancedReceivingStatInput{
		AvgYAC: &yac,
	}
	in.Player = &PlayerInput{ID: 901}

	s := in.ToAdvancedReceivingStat(2025, 0, false)

	// Season, week, and postseason come from the request context when the
	// feed omits them.
	assert.Equal(t, 901, s.PlayerID)
	assert.Equal(t, 2025, s.Season)
	assert.Equal(t, 0, s.Week)
	assert.False(t, s.Postseason)
	assert.True(t, s.AvgYAC.Valid)
	assert.True(t, s.Valid())
}

func TestToAdvancedPassingStatFeedValuesWin(t *testing.T) {
	var in AdvancedPassingStatInput
	payload := `{
		"player": {"id": 901},
		"season": 2024,
		"week": 7,
		"postseason": true,
		"attempts": 31,
		"passer_rating": 104.2
	}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	s := in.ToAdvancedPassingStat(2025, 0, false)

	assert.Equal(t, 2024, s.Season)
	assert.Equal(t, 7, s.Week)
	assert.True(t, s.Postseason)
	assert.True(t, s.Attempts.Valid)
	assert.Equal(t, int32(31), s.Attempts.Int32)
	assert.True(t, s.PasserRating.Valid)
	assert.True(t, s.Valid())
}

func TestToAdvancedRushingStatMissingPlayer(t *testing.T) {
	var in AdvancedRushingStatInput

	s := in.ToAdvancedRushingStat(2025, 0, false)

	assert.Equal(t, 0, s.PlayerID)
	assert.False(t, s.Valid())
}

func TestToInjury(t *testing.T) {
	in := InjuryInput{
		Player: &PlayerInput{ID: 901},
		Status: "Questionable",
		Date:   "2025-09-18",
	}

	inj := in.ToInjury()

	assert.Equal(t, 901, inj.PlayerID)
	assert.Equal(t, "2025-09-18", inj.ReportDate)
	assert.True(t, inj.Valid())

	missing := (&InjuryInput{Status: "Out"}).ToInjury()
	assert.False(t, missing.Valid())
}

func TestToRosterEntryContext(t *testing.T) {
	in := RosterEntryInput{
		Player:   &PlayerInput{ID: 901},
		Position: "WR",
	}

	e := in.ToRosterEntry(14, 2025)

	assert.Equal(t, 14, e.TeamID)
	assert.Equal(t, 2025, e.Season)
	assert.Equal(t, "WR", e.Position.String)
	assert.True(t, e.Valid())
}

func TestIsSpecialTeamsPosition(t *testing.T) {
	assert.True(t, IsSpecialTeamsPosition("PR"))
	assert.True(t, IsSpecialTeamsPosition("LS"))
	assert.False(t, IsSpecialTeamsPosition("WR"))
	assert.False(t, IsSpecialTeamsPosition(""))
}

func TestToPlayerPropMapsType(t *testing.T) {
	line := 249.5
	over := -110.0
	in := PlayerPropInput{
		ID:        FlexID("31337"),
		GameID:    5501,
		PlayerID:  901,
		Vendor:    "draftkings",
		PropType:  "passing_yards",
		LineValue: &line,
		Market:    &PropMarket{Type: "over_under", OverOdds: &over},
	}

	p, ok := in.ToPlayerProp()
	require.True(t, ok)

	assert.Equal(t, "31337", p.PropID)
	assert.Equal(t, "player_pass_yds", p.PropType)
	assert.True(t, p.LineValue.Valid)
	assert.True(t, p.OverOdds.Valid)
	assert.False(t, p.UnderOdds.Valid)
	assert.True(t, p.Valid())
}

func TestToPlayerPropBookmakerFallback(t *testing.T) {
	in := PlayerPropInput{
		ID:        FlexID("55"),
		GameID:    5501,
		PlayerID:  901,
		Bookmaker: "FanDuel",
		PropType:  "rushing_yards",
	}

	p, ok := in.ToPlayerProp()
	require.True(t, ok)
	assert.Equal(t, "fanduel", p.Vendor)

	// An explicit vendor wins over the bookmaker key.
	in.Vendor = "DraftKings"
	p, ok = in.ToPlayerProp()
	require.True(t, ok)
	assert.Equal(t, "draftkings", p.Vendor)
}

func TestToPlayerPropUnmappedType(t *testing.T) {
	in := PlayerPropInput{
		ID:       FlexID("1"),
		GameID:   5501,
		PlayerID: 901,
		PropType: "tackles_assists",
	}

	_, ok := in.ToPlayerProp()
	assert.False(t, ok)
}

func TestFlexIDAcceptsNumbers(t *testing.T) {
	var in GameOddsInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":9042,"game_id":1}`), &in))
	assert.Equal(t, "9042", in.ID.String())
}

func TestToGameOddsStringID(t *testing.T) {
	spread := -3.5
	var in GameOddsInput
	payload := `{"id":"odds-77","game_id":5501,"vendor":"draftkings","spread_home_value":-3.5}`
	require.NoError(t, json.Unmarshal([]byte(payload), &in))
	in.SpreadHomeValue = &spread

	o := in.ToGameOdds()

	assert.Equal(t, "odds-77", o.OddsID)
	assert.Equal(t, 5501, o.GameID)
	assert.True(t, o.SpreadHomeValue.Valid)
	assert.True(t, o.Valid())
}
