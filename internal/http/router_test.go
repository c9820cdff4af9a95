package http

import (
	"net/http"
	"testing"

	"github.com/blakethaselberger/StarsOps-sub001/internal/app/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/app/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/http/handlers"
	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
	"github.com/blakethaselberger/StarsOps-sub001/internal/uistate"
)

func newTestRouter() http.Handler {
	svc, ms := testutil.NewPlayerService([]players.Player{testutil.SamplePlayer("p1")})
	h := handlers.NewHandler(handlers.Deps{
		Players: svc,
		Notes:   notes.NewService(ms),
		Videos:  videos.NewService(ms),
		UIState: uistate.NewStore(uistate.NewMemoryAdapter(), nil, nil),
	})
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":                     http.StatusOK,
		"/ready":                      http.StatusOK,
		"/api/players":                http.StatusOK,
		"/api/players/p1":             http.StatusOK,
		"/api/players/missing":        http.StatusNotFound,
		"/api/players/leagues":        http.StatusOK,
		"/api/players/suggest?q=samp": http.StatusOK,
		"/api/notes":                  http.StatusOK,
		"/api/videos":                 http.StatusOK,
		"/api/ui-state":               http.StatusOK,
		"/api/chat":                   http.StatusMethodNotAllowed,
		"/api/session":                http.StatusMethodNotAllowed,
		"/api/players?sort=shoe_size": http.StatusBadRequest,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter()

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRouterChatWithoutServiceIsConfigurationError(t *testing.T) {
	router := newTestRouter()
	rr := testutil.ServeJSON(router, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}
