// Package filter implements the player table's search, filter, sort and
// grouping rules, plus the lighter search used by the notes and video pages.
// Everything here is a pure function over in-memory slices.
package filter

import (
	"net/url"
	"strings"
)

// All is the sentinel value meaning "no filtering" for enum filters.
const All = "all"

// PlayerFilters holds one raw value per filter control. Enum filters use All
// as their default; range bounds use the empty string.
type PlayerFilters struct {
	Position       string `json:"position"`
	Status         string `json:"status"`
	Shoots         string `json:"shoots"`
	Nationality    string `json:"nationality"`
	League         string `json:"league"`
	DraftRound     string `json:"draftRound"`
	ContractStatus string `json:"contractStatus"`
	Rating         string `json:"rating"`
	PlayerStyle    string `json:"playerStyle"`
	DraftEligible  string `json:"draftEligible"`
	Team           string `json:"team"`

	AgeMin            string `json:"ageMin"`
	AgeMax            string `json:"ageMax"`
	HeightMin         string `json:"heightMin"`
	HeightMax         string `json:"heightMax"`
	WeightMin         string `json:"weightMin"`
	WeightMax         string `json:"weightMax"`
	ContractExpiryMin string `json:"contractExpiryMin"`
	ContractExpiryMax string `json:"contractExpiryMax"`
	SalaryMin         string `json:"salaryMin"`
	SalaryMax         string `json:"salaryMax"`
	GamesPlayedMin    string `json:"gamesPlayedMin"`
	GamesPlayedMax    string `json:"gamesPlayedMax"`
	GoalsMin          string `json:"goalsMin"`
	GoalsMax          string `json:"goalsMax"`
	AssistsMin        string `json:"assistsMin"`
	AssistsMax        string `json:"assistsMax"`
	PointsMin         string `json:"pointsMin"`
	PointsMax         string `json:"pointsMax"`
	YearsInLeagueMin  string `json:"yearsInLeagueMin"`
	YearsInLeagueMax  string `json:"yearsInLeagueMax"`
}

// Default returns filters that match every player.
func Default() PlayerFilters {
	return PlayerFilters{
		Position:       All,
		Status:         All,
		Shoots:         All,
		Nationality:    All,
		League:         All,
		DraftRound:     All,
		ContractStatus: All,
		Rating:         All,
		PlayerStyle:    All,
		DraftEligible:  All,
	}
}

// Reset discards every field.
func (PlayerFilters) Reset() PlayerFilters {
	return Default()
}

// IsDefault reports whether no filter is active.
func (f PlayerFilters) IsDefault() bool {
	return len(f.activeValues()) == 0
}

// activeValues returns the fields Compile turns into predicates. Only enum
// and text fields honour the All sentinel; a numeric bound is active whenever
// it is non-blank, so "all" there is a malformed bound, not a default.
func (f *PlayerFilters) activeValues() map[string]string {
	bounds := make(map[*string]bool)
	for _, r := range ranges(f) {
		bounds[r.min] = true
		bounds[r.max] = true
	}
	out := make(map[string]string)
	for name, v := range f.values() {
		on := active(*v)
		if bounds[v] {
			on = strings.TrimSpace(*v) != ""
		}
		if on {
			out[name] = *v
		}
	}
	return out
}

// values exposes every field by its query parameter name.
func (f *PlayerFilters) values() map[string]*string {
	return map[string]*string{
		"position":          &f.Position,
		"status":            &f.Status,
		"shoots":            &f.Shoots,
		"nationality":       &f.Nationality,
		"league":            &f.League,
		"draftRound":        &f.DraftRound,
		"contractStatus":    &f.ContractStatus,
		"rating":            &f.Rating,
		"playerStyle":       &f.PlayerStyle,
		"draftEligible":     &f.DraftEligible,
		"team":              &f.Team,
		"ageMin":            &f.AgeMin,
		"ageMax":            &f.AgeMax,
		"heightMin":         &f.HeightMin,
		"heightMax":         &f.HeightMax,
		"weightMin":         &f.WeightMin,
		"weightMax":         &f.WeightMax,
		"contractExpiryMin": &f.ContractExpiryMin,
		"contractExpiryMax": &f.ContractExpiryMax,
		"salaryMin":         &f.SalaryMin,
		"salaryMax":         &f.SalaryMax,
		"gamesPlayedMin":    &f.GamesPlayedMin,
		"gamesPlayedMax":    &f.GamesPlayedMax,
		"goalsMin":          &f.GoalsMin,
		"goalsMax":          &f.GoalsMax,
		"assistsMin":        &f.AssistsMin,
		"assistsMax":        &f.AssistsMax,
		"pointsMin":         &f.PointsMin,
		"pointsMax":         &f.PointsMax,
		"yearsInLeagueMin":  &f.YearsInLeagueMin,
		"yearsInLeagueMax":  &f.YearsInLeagueMax,
	}
}

// Set assigns a filter by its query parameter name. Unknown names report false.
func (f *PlayerFilters) Set(name, value string) bool {
	ptr, ok := f.values()[name]
	if !ok {
		return false
	}
	*ptr = value
	return true
}

// Names lists the accepted filter parameter names.
func Names() []string {
	var f PlayerFilters
	names := make([]string, 0, 32)
	for name := range f.values() {
		names = append(names, name)
	}
	return names
}

// Query is the complete table state: filters, free-text search and sort.
type Query struct {
	Filters PlayerFilters
	Search  string
	Sort    SortState
}

// NewQuery returns a query that matches everything, unsorted.
func NewQuery() Query {
	return Query{Filters: Default()}
}

// Reset restores default filters and clears the search term. Sort is a
// table preference and survives a reset.
func (q Query) Reset() Query {
	return Query{Filters: Default(), Sort: q.Sort}
}

// Key is a canonical form of the query, used for memoization.
func (q Query) Key() string {
	return q.Values().Encode()
}

// Values renders the query as URL parameters, skipping inactive filters.
func (q Query) Values() url.Values {
	out := url.Values{}
	f := q.Filters
	for name, v := range f.activeValues() {
		out.Set(name, v)
	}
	if q.Search != "" {
		out.Set("search", q.Search)
	}
	if q.Sort.Column != "" {
		out.Set("sort", q.Sort.Column)
		if q.Sort.Descending {
			out.Set("order", "desc")
		}
	}
	return out
}

// FromValues builds a Query from URL parameters of the same names as the
// PlayerFilters JSON fields, plus search, sort and order=asc|desc.
func FromValues(v url.Values) Query {
	q := NewQuery()
	for name := range v {
		q.Filters.Set(name, v.Get(name))
	}
	q.Search = v.Get("search")
	q.Sort = SortState{
		Column:     strings.TrimSpace(v.Get("sort")),
		Descending: strings.EqualFold(v.Get("order"), "desc"),
	}
	return q
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}
