package ingest

import (
	"database/sql"
	"testing"

	"nflgoat/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prop(propID string, playerID int, propType, vendor string) *models.PlayerProp {
	return &models.PlayerProp{
		PropID:   propID,
		GameID:   100,
		PlayerID: playerID,
		Vendor:   vendor,
		PropType: propType,
	}
}

func TestBestPropsPrefersHigherPriorityVendor(t *testing.T) {
	props := []*models.PlayerProp{
		prop("a", 1, "player_pass_yds", "fanduel"),
		prop("b", 1, "player_pass_yds", "draftkings"),
		prop("c", 1, "player_rush_yds", "betmgm"),
	}

	best := BestProps(props)
	require.Len(t, best, 2)

	byType := map[string]*models.PlayerProp{}
	for _, p := range best {
		byType[p.PropType] = p
	}
	assert.Equal(t, "draftkings", byType["player_pass_yds"].Vendor)
	assert.Equal(t, "betmgm", byType["player_rush_yds"].Vendor)
}

func TestBestPropsDropsUnrankedVendors(t *testing.T) {
	props := []*models.PlayerProp{
		prop("a", 1, "player_pass_yds", "pinnacle"),
		prop("b", 2, "player_rec_yds", "fanduel"),
	}

	best := BestProps(props)
	require.Len(t, best, 1)
	assert.Equal(t, "fanduel", best[0].Vendor)
}

func TestBestPropsTieKeepsFirst(t *testing.T) {
	props := []*models.PlayerProp{
		prop("first", 1, "player_pass_yds", "draftkings"),
		prop("second", 1, "player_pass_yds", "draftkings"),
	}

	best := BestProps(props)
	require.Len(t, best, 1)
	assert.Equal(t, "first", best[0].PropID)
}

func TestBestPropsKeysPerPlayer(t *testing.T) {
	props := []*models.PlayerProp{
		prop("a", 1, "player_pass_yds", "fanduel"),
		prop("b", 2, "player_pass_yds", "betway"),
	}

	best := BestProps(props)
	assert.Len(t, best, 2, "Same market for different players stays separate")
}

func rosterEntry(playerID int, position string) *models.RosterEntry {
	return &models.RosterEntry{
		TeamID:   14,
		PlayerID: playerID,
		Season:   2025,
		Position: sql.NullString{String: position, Valid: position != ""},
	}
}

func TestCollapseRosterPrimaryBeatsSpecialTeams(t *testing.T) {
	entries := []*models.RosterEntry{
		rosterEntry(1, "PR"),
		rosterEntry(1, "WR"),
		rosterEntry(2, "QB"),
	}

	out := CollapseRoster(entries)
	require.Len(t, out, 2)
	assert.Equal(t, "WR", out[0].Position.String, "Primary position replaces the returner slot")
	assert.Equal(t, "QB", out[1].Position.String)
}

func TestCollapseRosterSpecialTeamsDoesNotReplacePrimary(t *testing.T) {
	entries := []*models.RosterEntry{
		rosterEntry(1, "WR"),
		rosterEntry(1, "KR"),
	}

	out := CollapseRoster(entries)
	require.Len(t, out, 1)
	assert.Equal(t, "WR", out[0].Position.String)
}
