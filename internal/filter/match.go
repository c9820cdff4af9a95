package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
)

type predicate func(players.Player) bool

func never(players.Player) bool { return false }

// Matcher is a compiled PlayerFilters plus search term.
type Matcher struct {
	preds []predicate
}

// Compile turns raw filter values into predicates. Every predicate must hold
// for a player to match. A malformed value compiles to a predicate that
// rejects every player.
func Compile(f PlayerFilters, search string) Matcher {
	var preds []predicate

	if search != "" {
		term := strings.ToLower(search)
		preds = append(preds, func(p players.Player) bool {
			return containsFold(p.Name, term) ||
				containsFold(p.Team, term) ||
				containsFold(p.Birthplace, term) ||
				containsFold(p.Nationality, term)
		})
	}

	preds = appendEnum(preds, f.Position, players.ParsePosition, func(p players.Player) players.Position { return p.Position })
	preds = appendEnum(preds, f.Status, players.ParseStatus, func(p players.Player) players.Status { return p.Status })
	preds = appendEnum(preds, f.Shoots, players.ParseShoots, func(p players.Player) players.Shoots { return p.Shoots })
	preds = appendEnum(preds, f.ContractStatus, players.ParseContractStatus, func(p players.Player) players.ContractStatus { return p.Contract })
	preds = appendEnum(preds, f.Rating, players.ParseRating, func(p players.Player) players.Rating { return p.Rating })
	preds = appendEnum(preds, f.PlayerStyle, players.ParseStyle, func(p players.Player) players.Style { return p.PlayerStyle })

	if active(f.Nationality) {
		want := f.Nationality
		preds = append(preds, func(p players.Player) bool { return p.Nationality == want })
	}
	if active(f.League) {
		want := f.League
		preds = append(preds, func(p players.Player) bool { return p.League == want })
	}
	if active(f.Team) {
		term := strings.ToLower(f.Team)
		preds = append(preds, func(p players.Player) bool { return containsFold(p.Team, term) })
	}
	if active(f.DraftRound) {
		preds = append(preds, draftRoundPredicate(f.DraftRound))
	}
	if active(f.DraftEligible) {
		preds = append(preds, draftEligiblePredicate(f.DraftEligible))
	}

	for _, r := range ranges(&f) {
		preds = appendBound(preds, *r.min, r.value, func(v, bound float64) bool { return v >= bound })
		preds = appendBound(preds, *r.max, r.value, func(v, bound float64) bool { return v <= bound })
	}

	return Matcher{preds: preds}
}

// Match reports whether p satisfies every active filter.
func (m Matcher) Match(p players.Player) bool {
	for _, pred := range m.preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// Active reports whether the matcher filters anything at all.
func (m Matcher) Active() bool {
	return len(m.preds) > 0
}

// Filter returns the matching players in input order. The result is never nil.
func (m Matcher) Filter(items []players.Player) []players.Player {
	out := make([]players.Player, 0, len(items))
	for _, p := range items {
		if m.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Players is the one-shot form of Compile(f, search).Filter(items).
func Players(items []players.Player, f PlayerFilters, search string) []players.Player {
	return Compile(f, search).Filter(items)
}

type rangeField struct {
	min, max *string
	value    func(players.Player) float64
}

func ranges(f *PlayerFilters) []rangeField {
	return []rangeField{
		{&f.AgeMin, &f.AgeMax, func(p players.Player) float64 { return float64(p.Age) }},
		{&f.HeightMin, &f.HeightMax, func(p players.Player) float64 { return float64(p.HeightCm) }},
		{&f.WeightMin, &f.WeightMax, func(p players.Player) float64 { return float64(p.WeightLbs) }},
		{&f.ContractExpiryMin, &f.ContractExpiryMax, func(p players.Player) float64 { return float64(p.ContractExpiry) }},
		{&f.SalaryMin, &f.SalaryMax, func(p players.Player) float64 { return p.SalaryValue }},
		{&f.GamesPlayedMin, &f.GamesPlayedMax, func(p players.Player) float64 { return float64(p.GamesPlayed) }},
		{&f.GoalsMin, &f.GoalsMax, func(p players.Player) float64 { return float64(p.Goals) }},
		{&f.AssistsMin, &f.AssistsMax, func(p players.Player) float64 { return float64(p.Assists) }},
		{&f.PointsMin, &f.PointsMax, func(p players.Player) float64 { return float64(p.Points) }},
		{&f.YearsInLeagueMin, &f.YearsInLeagueMax, func(p players.Player) float64 { return float64(p.YearsInLeague) }},
	}
}

func appendBound(preds []predicate, raw string, value func(players.Player) float64, ok func(v, bound float64) bool) []predicate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return preds
	}
	bound, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(bound) {
		return append(preds, never)
	}
	return append(preds, func(p players.Player) bool { return ok(value(p), bound) })
}

func appendEnum[T comparable](preds []predicate, raw string, parse func(string) (T, bool), get func(players.Player) T) []predicate {
	if !active(raw) {
		return preds
	}
	want, ok := parse(raw)
	if !ok {
		return append(preds, never)
	}
	return append(preds, func(p players.Player) bool { return get(p) == want })
}

// UndraftedValue selects players without a draft round.
const UndraftedValue = "undrafted"

func draftRoundPredicate(raw string) predicate {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, UndraftedValue) {
		return func(p players.Player) bool { return p.Undrafted() }
	}
	round, err := strconv.Atoi(raw)
	if err != nil {
		return never
	}
	return func(p players.Player) bool { return p.DraftRound != nil && *p.DraftRound == round }
}

func draftEligiblePredicate(raw string) predicate {
	want, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "yes":
			want = true
		case "no":
			want = false
		default:
			return never
		}
	}
	return func(p players.Player) bool { return p.DraftEligible == want }
}

// containsFold expects term to be lower-cased already.
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
