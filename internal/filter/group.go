package filter

import "github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"

// LeagueGroup is one league's slice of the roster.
type LeagueGroup struct {
	League  string           `json:"league"`
	Players []players.Player `json:"players"`
}

// LeagueCount is the per-league tally shown on the league tabs.
type LeagueCount struct {
	League   string `json:"league"`
	Total    int    `json:"total"`
	Matching int    `json:"matching"`
}

// GroupByLeague partitions items by league, with groups in order of each
// league's first appearance and players in input order within a group.
func GroupByLeague(items []players.Player) []LeagueGroup {
	index := make(map[string]int)
	groups := make([]LeagueGroup, 0)
	for _, p := range items {
		i, ok := index[p.League]
		if !ok {
			i = len(groups)
			index[p.League] = i
			groups = append(groups, LeagueGroup{League: p.League})
		}
		groups[i].Players = append(groups[i].Players, p)
	}
	return groups
}

// LeagueCounts groups the unfiltered list, then applies the matcher per group.
func LeagueCounts(items []players.Player, m Matcher) []LeagueCount {
	groups := GroupByLeague(items)
	out := make([]LeagueCount, 0, len(groups))
	for _, g := range groups {
		matching := len(g.Players)
		if m.Active() {
			matching = len(m.Filter(g.Players))
		}
		out = append(out, LeagueCount{League: g.League, Total: len(g.Players), Matching: matching})
	}
	return out
}
