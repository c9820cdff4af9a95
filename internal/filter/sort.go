package filter

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
)

// SortState is the single active sort column of the player table.
type SortState struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending"`
}

// Toggle returns the state after a click on column: the same column flips
// direction, a new column starts ascending.
func (s SortState) Toggle(column string) SortState {
	if s.Column == column {
		return SortState{Column: column, Descending: !s.Descending}
	}
	return SortState{Column: column}
}

type columnKind int

const (
	stringColumn columnKind = iota
	numberColumn
)

type column struct {
	kind columnKind
	str  func(players.Player) string
	// num reports ok=false for a missing optional value.
	num func(players.Player) (float64, bool)
}

func strCol(get func(players.Player) string) column {
	return column{kind: stringColumn, str: get}
}

func intCol(get func(players.Player) int) column {
	return column{kind: numberColumn, num: func(p players.Player) (float64, bool) { return float64(get(p)), true }}
}

func optCol(get func(players.Player) *int) column {
	return column{kind: numberColumn, num: func(p players.Player) (float64, bool) {
		v := get(p)
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	}}
}

var columns = map[string]column{
	"name":           strCol(func(p players.Player) string { return p.Name }),
	"team":           strCol(func(p players.Player) string { return p.Team }),
	"league":         strCol(func(p players.Player) string { return p.League }),
	"nationality":    strCol(func(p players.Player) string { return p.Nationality }),
	"birthplace":     strCol(func(p players.Player) string { return p.Birthplace }),
	"position":       strCol(func(p players.Player) string { return string(p.Position) }),
	"shoots":         strCol(func(p players.Player) string { return string(p.Shoots) }),
	"contract":       strCol(func(p players.Player) string { return string(p.Contract) }),
	"status":         strCol(func(p players.Player) string { return string(p.Status) }),
	"rating":         strCol(func(p players.Player) string { return string(p.Rating) }),
	"playerStyle":    strCol(func(p players.Player) string { return string(p.PlayerStyle) }),
	"number":         intCol(func(p players.Player) int { return p.Number }),
	"age":            intCol(func(p players.Player) int { return p.Age }),
	"heightCm":       intCol(func(p players.Player) int { return p.HeightCm }),
	"weightLbs":      intCol(func(p players.Player) int { return p.WeightLbs }),
	"yearsInLeague":  intCol(func(p players.Player) int { return p.YearsInLeague }),
	"contractExpiry": intCol(func(p players.Player) int { return p.ContractExpiry }),
	"gamesPlayed":    intCol(func(p players.Player) int { return p.GamesPlayed }),
	"goals":          intCol(func(p players.Player) int { return p.Goals }),
	"assists":        intCol(func(p players.Player) int { return p.Assists }),
	"points":         intCol(func(p players.Player) int { return p.Points }),
	"draftYear":      optCol(func(p players.Player) *int { return p.DraftYear }),
	"draftRound":     optCol(func(p players.Player) *int { return p.DraftRound }),
	"salaryValue": {kind: numberColumn, num: func(p players.Player) (float64, bool) {
		return p.SalaryValue, true
	}},
	"draftEligible": {kind: numberColumn, num: func(p players.Player) (float64, bool) {
		if p.DraftEligible {
			return 1, true
		}
		return 0, true
	}},
}

// SortColumns lists the column names Sort understands.
func SortColumns() []string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidColumn reports whether name is sortable.
func ValidColumn(name string) bool {
	_, ok := columns[name]
	return ok
}

// Sort returns a stably sorted copy of items. Equal keys keep their input
// order in both directions. An empty or unknown column returns the copy
// unsorted. Missing optional numbers sort before present ones ascending.
func Sort(items []players.Player, s SortState) []players.Player {
	out := slices.Clone(items)
	if out == nil {
		out = []players.Player{}
	}
	col, ok := columns[s.Column]
	if !ok {
		return out
	}

	var compare func(a, b players.Player) int
	switch col.kind {
	case stringColumn:
		// A Collator keeps scratch buffers, so each call gets its own.
		c := collate.New(language.English, collate.IgnoreCase)
		compare = func(a, b players.Player) int { return c.CompareString(col.str(a), col.str(b)) }
	default:
		compare = func(a, b players.Player) int {
			av, aok := col.num(a)
			bv, bok := col.num(b)
			switch {
			case !aok && !bok:
				return 0
			case !aok:
				return -1
			case !bok:
				return 1
			}
			return cmp.Compare(av, bv)
		}
	}
	if s.Descending {
		asc := compare
		compare = func(a, b players.Player) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}
