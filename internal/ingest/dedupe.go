package ingest

import (
	"nflgoat/ingestion/internal/models"
)

// VendorPriority ranks sportsbooks for best-line selection. Lower is better.
// Vendors outside this table are discarded.
var VendorPriority = map[string]int{
	"draftkings": 1,
	"fanduel":    2,
	"betmgm":     3,
	"bet365":     4,
	"betway":     5,
}

// CollapseBest keeps one winner per key. The first row seen for a key holds
// the slot until a later row is strictly better, so ties keep the earlier
// row. Input order is preserved.
func CollapseBest[T any, K comparable](rows []T, key func(T) K, better func(incoming, held T) bool) []T {
	held := make(map[K]int, len(rows))
	out := make([]T, 0, len(rows))

	for _, r := range rows {
		k := key(r)
		if i, ok := held[k]; ok {
			if better(r, out[i]) {
				out[i] = r
			}
			continue
		}
		held[k] = len(out)
		out = append(out, r)
	}

	return out
}

type propKey struct {
	playerID int
	propType string
}

// BestProps collapses prop lines to a single best line per (player, market):
// unranked vendors are dropped, then the highest-priority vendor wins.
func BestProps(props []*models.PlayerProp) []*models.PlayerProp {
	ranked := make([]*models.PlayerProp, 0, len(props))
	for _, p := range props {
		if _, ok := VendorPriority[p.Vendor]; ok {
			ranked = append(ranked, p)
		}
	}

	return CollapseBest(ranked,
		func(p *models.PlayerProp) propKey {
			return propKey{playerID: p.PlayerID, propType: p.PropType}
		},
		func(incoming, held *models.PlayerProp) bool {
			return VendorPriority[incoming.Vendor] < VendorPriority[held.Vendor]
		},
	)
}

type rosterKey struct {
	teamID   int
	playerID int
	season   int
}

// CollapseRoster keeps one roster entry per (team, player, season). Players
// doubling as returners or holders appear twice in the feed; the primary
// position entry replaces the special-teams one.
func CollapseRoster(entries []*models.RosterEntry) []*models.RosterEntry {
	return CollapseBest(entries,
		func(e *models.RosterEntry) rosterKey {
			return rosterKey{teamID: e.TeamID, playerID: e.PlayerID, season: e.Season}
		},
		func(incoming, _ *models.RosterEntry) bool {
			return !models.IsSpecialTeamsPosition(incoming.Position.String)
		},
	)
}
