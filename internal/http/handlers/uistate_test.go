package handlers

import (
	"net/http"
	"testing"

	"github.com/blakethaselberger/StarsOps-sub001/internal/testutil"
	"github.com/blakethaselberger/StarsOps-sub001/internal/uistate"
)

func uiHandler() (*Handler, *uistate.MemoryAdapter) {
	adapter := uistate.NewMemoryAdapter()
	store := uistate.NewStore(adapter, uistate.DemoAuthenticator{Username: "demo", Password: "blues"}, nil)
	return NewHandler(Deps{UIState: store}), adapter
}

func TestUIStateGetInitial(t *testing.T) {
	h, _ := uiHandler()

	rr := testutil.Serve(http.HandlerFunc(h.UIState), http.MethodGet, "/api/ui-state", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var st uistate.State
	testutil.DecodeJSON(t, rr, &st)
	if st != uistate.Initial() {
		t.Fatalf("expected initial state, got %+v", st)
	}
}

func TestUIStatePutSidebar(t *testing.T) {
	h, adapter := uiHandler()

	rr := testutil.ServeJSON(http.HandlerFunc(h.UIState), http.MethodPut, "/api/ui-state", `{"sidebarCollapsed":true}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var st uistate.State
	testutil.DecodeJSON(t, rr, &st)
	if !st.SidebarCollapsed {
		t.Fatalf("expected collapsed sidebar, got %+v", st)
	}
	if adapter.Saves() != 1 {
		t.Fatalf("expected one save, got %d", adapter.Saves())
	}
}

func TestUIStatePutRequiresField(t *testing.T) {
	h, _ := uiHandler()
	rr := testutil.ServeJSON(http.HandlerFunc(h.UIState), http.MethodPut, "/api/ui-state", `{}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSessionSignInAndOut(t *testing.T) {
	h, _ := uiHandler()

	rr := testutil.ServeJSON(http.HandlerFunc(h.Session), http.MethodPost, "/api/session", `{"username":"demo","password":"nope"}`)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ServeJSON(http.HandlerFunc(h.Session), http.MethodPost, "/api/session", `{"username":"demo","password":"blues"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var st uistate.State
	testutil.DecodeJSON(t, rr, &st)
	if !st.SignedIn {
		t.Fatalf("expected signed in, got %+v", st)
	}

	rr = testutil.Serve(http.HandlerFunc(h.Session), http.MethodDelete, "/api/session", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	st = uistate.State{}
	testutil.DecodeJSON(t, rr, &st)
	if st.SignedIn {
		t.Fatalf("expected signed out, got %+v", st)
	}
}

func TestUIStateUnavailableAndMethods(t *testing.T) {
	h := NewHandler(Deps{})
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.UIState), http.MethodGet, "/api/ui-state", nil), http.StatusServiceUnavailable)

	h, _ = uiHandler()
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.UIState), http.MethodPost, "/api/ui-state", nil), http.StatusMethodNotAllowed)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.Session), http.MethodGet, "/api/session", nil), http.StatusMethodNotAllowed)
}
