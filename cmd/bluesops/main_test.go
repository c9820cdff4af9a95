package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appplayers "github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/file"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeRoster(t *testing.T, roster []players.Player) string {
	t.Helper()
	data, err := json.Marshal(file.Document{Players: roster})
	if err != nil {
		t.Fatalf("marshal roster: %v", err)
	}
	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestPlayersTableFromFixture(t *testing.T) {
	out, err := execute(t, "players", "--position", "Defense", "--sort", "name")
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	if !strings.Contains(out, "Colton Parayko") {
		t.Fatalf("expected Parayko in output:\n%s", out)
	}
	if strings.Contains(out, "Robert Thomas") {
		t.Fatalf("expected forwards to be filtered out:\n%s", out)
	}
}

func TestPlayersJSONFromRosterFile(t *testing.T) {
	a := testutil.SamplePlayer("a")
	a.Goals = 30
	b := testutil.SamplePlayer("b")
	b.Goals = 5
	path := writeRoster(t, []players.Player{b, a})

	out, err := execute(t, "--roster", path, "players", "--sort", "goals", "--desc", "--json")
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	var res appplayers.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.Count != 2 || res.Players[0].ID != "a" {
		t.Fatalf("expected goals descending, got %+v", res.Players)
	}
}

func TestPlayersRejectsUnknownSort(t *testing.T) {
	if _, err := execute(t, "players", "--sort", "shoe_size"); err == nil {
		t.Fatalf("expected unknown sort column error")
	}
}

func TestLeaguesJSON(t *testing.T) {
	out, err := execute(t, "leagues", "--json")
	if err != nil {
		t.Fatalf("leagues: %v", err)
	}
	var counts []filter.LeagueCount
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(counts) == 0 || counts[0].Total != counts[0].Matching {
		t.Fatalf("expected unfiltered counts, got %+v", counts)
	}
}

func TestSuggest(t *testing.T) {
	out, err := execute(t, "suggest", "parayk", "--limit", "1")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.HasPrefix(out, "Colton Parayko") {
		t.Fatalf("unexpected suggestions %q", out)
	}
}

func TestMissingRosterFile(t *testing.T) {
	_, err := execute(t, "--roster", filepath.Join(t.TempDir(), "nope.json"), "players")
	if err == nil || !strings.Contains(err.Error(), "load roster") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestFormatSalary(t *testing.T) {
	if got := formatSalary(5.02); got != "$5.02M" {
		t.Fatalf("unexpected salary %q", got)
	}
	if got := formatSalary(0); got != "-" {
		t.Fatalf("unexpected empty salary %q", got)
	}
}
