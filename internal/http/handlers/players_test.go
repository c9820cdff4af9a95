package handlers

import (
	"net/http"
	"testing"

	appplayers "github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
)

func rosterHandler(t *testing.T) *Handler {
	t.Helper()
	center := testutil.SamplePlayer("p1")
	center.Name = "Robert Thomas"

	defense := testutil.SamplePlayer("p2")
	defense.Name = "Colton Parayko"
	defense.Position = players.PositionDefense
	defense.Goals = 5

	prospect := testutil.SamplePlayer("p3")
	prospect.Name = "Jimmy Snuggerud"
	prospect.League = "NCAA"
	prospect.Team = "Minnesota"
	prospect.Goals = 24

	svc, _ := testutil.NewPlayerService([]players.Player{center, defense, prospect})
	return NewHandler(Deps{Players: svc})
}

func TestPlayersFiltersAndSorts(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players?league=NHL&sort=goals&order=desc", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res appplayers.Result
	testutil.DecodeJSON(t, rr, &res)
	if res.Count != 2 || len(res.Players) != 2 {
		t.Fatalf("expected two NHL players, got %+v", res)
	}
	if res.Players[0].ID != "p1" || res.Players[1].ID != "p2" {
		t.Fatalf("expected goals descending, got %s then %s", res.Players[0].ID, res.Players[1].ID)
	}
}

func TestPlayersSearch(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players?search=parayko", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var res appplayers.Result
	testutil.DecodeJSON(t, rr, &res)
	if res.Count != 1 || res.Players[0].ID != "p2" {
		t.Fatalf("expected Parayko only, got %+v", res)
	}
}

func TestPlayersRejectsUnknownSortColumn(t *testing.T) {
	h := rosterHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players?sort=shoe_size", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestPlayersWithoutServiceUnavailable(t *testing.T) {
	h := NewHandler(Deps{})
	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestPlayerByID(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/p3", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var p players.Player
	testutil.DecodeJSON(t, rr, &p)
	if p.Name != "Jimmy Snuggerud" {
		t.Fatalf("unexpected player %+v", p)
	}

	rr = testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/missing", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestLeagues(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/leagues?position=Defense", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var counts []filter.LeagueCount
	testutil.DecodeJSON(t, rr, &counts)
	if len(counts) != 2 {
		t.Fatalf("expected two leagues, got %+v", counts)
	}
}

func TestSuggest(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.PlayerRoutes), http.MethodGet, "/api/players/suggest?q=thom&limit=5", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var got []filter.Suggestion
	testutil.DecodeJSON(t, rr, &got)
	if len(got) == 0 || got[0].ID != "p1" {
		t.Fatalf("expected Thomas first, got %+v", got)
	}
}

func TestSuggestEmptyQueryReturnsArray(t *testing.T) {
	h := rosterHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Suggest), http.MethodGet, "/api/players/suggest", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestSuggestRejectsBadLimit(t *testing.T) {
	h := rosterHandler(t)
	for _, limit := range []string{"0", "-1", "ten"} {
		rr := testutil.Serve(http.HandlerFunc(h.Suggest), http.MethodGet, "/api/players/suggest?q=a&limit="+limit, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}
