package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Number", "number"},
		{"Position", "position"},
		{"Team", "team"},
		{"League", "league"},
		{"HeightCm", "heightCm"},
		{"WeightLbs", "weightLbs"},
		{"DraftRound", "draftRound,omitempty"},
		{"YearsInLeague", "yearsInLeague"},
		{"DraftEligible", "draftEligible"},
		{"Contract", "contract"},
		{"ContractExpiry", "contractExpiry"},
		{"SalaryValue", "salaryValue"},
		{"GamesPlayed", "gamesPlayed"},
		{"PlayerStyle", "playerStyle"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestNormalizeDerivesPoints(t *testing.T) {
	p := Normalize(Player{Goals: 12, Assists: 30, Points: 99})
	if p.Points != 42 {
		t.Fatalf("expected points 42, got %d", p.Points)
	}

	all := NormalizeAll([]Player{{Goals: 1, Assists: 1}, {Goals: 2}})
	if all[0].Points != 2 || all[1].Points != 2 {
		t.Fatalf("unexpected normalized points %+v", all)
	}
}

func TestUndrafted(t *testing.T) {
	if !(Player{}).Undrafted() {
		t.Fatalf("expected nil draft round to be undrafted")
	}
	if (Player{DraftRound: IntPtr(3)}).Undrafted() {
		t.Fatalf("expected drafted player")
	}
}

func TestEnumParsing(t *testing.T) {
	if got, ok := ParsePosition("defense"); !ok || got != PositionDefense {
		t.Fatalf("expected Defense, got %q ok=%v", got, ok)
	}
	if _, ok := ParsePosition("winger"); ok {
		t.Fatalf("expected unknown position to fail")
	}
	if got, ok := ParseRating("top line"); !ok || got != RatingTopLine {
		t.Fatalf("expected Top Line, got %q", got)
	}
	if got, ok := ParseShoots("Right"); !ok || got != ShootsRight {
		t.Fatalf("expected R, got %q", got)
	}
	if got, ok := ParseContractStatus("ufa"); !ok || got != ContractUFA {
		t.Fatalf("expected UFA, got %q", got)
	}
	if got, ok := ParseStyle("two-way"); !ok || got != StyleTwoWay {
		t.Fatalf("expected Two-Way, got %q", got)
	}
	if got, ok := ParseStatus("INJURED"); !ok || got != StatusInjured {
		t.Fatalf("expected Injured, got %q", got)
	}
}

func TestEnumValid(t *testing.T) {
	for _, p := range Positions() {
		if !p.Valid() {
			t.Fatalf("expected %q valid", p)
		}
	}
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Fatalf("expected %q valid", s)
		}
	}
	for _, r := range Ratings() {
		if !r.Valid() {
			t.Fatalf("expected %q valid", r)
		}
	}
	for _, c := range ContractStatuses() {
		if !c.Valid() {
			t.Fatalf("expected %q valid", c)
		}
	}
	for _, s := range Styles() {
		if !s.Valid() {
			t.Fatalf("expected %q valid", s)
		}
	}
	if Position("Center").Valid() || Shoots("X").Valid() {
		t.Fatalf("expected unknown values to be invalid")
	}
}
