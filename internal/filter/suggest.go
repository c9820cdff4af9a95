package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
)

// DefaultSuggestLimit caps suggestions when the caller gives no limit.
const DefaultSuggestLimit = 10

// Suggestion is a fuzzy name match for the search box.
type Suggestion struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Team     string           `json:"team"`
	Position players.Position `json:"position"`
	Score    int              `json:"score"`
}

type nameSource []players.Player

func (s nameSource) String(i int) string { return s[i].Name }
func (s nameSource) Len() int            { return len(s) }

// Suggest ranks players by fuzzy name match, best first.
func Suggest(items []players.Player, query string, limit int) []Suggestion {
	out := make([]Suggestion, 0)
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 {
		return out
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	for _, m := range fuzzy.FindFrom(query, nameSource(items)) {
		if len(out) == limit {
			break
		}
		p := items[m.Index]
		out = append(out, Suggestion{ID: p.ID, Name: p.Name, Team: p.Team, Position: p.Position, Score: m.Score})
	}
	return out
}
