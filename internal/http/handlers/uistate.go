package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/blakethaselberger/StarsOps-sub001/internal/http/requestutil"
	"github.com/blakethaselberger/StarsOps-sub001/internal/uistate"
)

type uiStatePatch struct {
	SidebarCollapsed *bool `json:"sidebarCollapsed"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UIState reads (GET) or patches (PUT) the dashboard chrome state.
func (h *Handler) UIState(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ui == nil {
		h.unavailable(w, r, "ui state")
		return
	}
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, h.ui.Get(), h.logger)
	case nethttp.MethodPut:
		var patch uiStatePatch
		if err := requestutil.DecodeJSON(w, r, &patch); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		if patch.SidebarCollapsed == nil {
			writeError(w, r, nethttp.StatusBadRequest, "sidebarCollapsed is required", h.logger)
			return
		}
		state, err := h.ui.SetSidebarCollapsed(*patch.SidebarCollapsed)
		if err != nil {
			writeError(w, r, nethttp.StatusInternalServerError, "failed to save ui state", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, state, h.logger)
	default:
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet, nethttp.MethodPut)
	}
}

// Session signs in (POST) or out (DELETE) of demo mode.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ui == nil {
		h.unavailable(w, r, "ui state")
		return
	}
	switch r.Method {
	case nethttp.MethodPost:
		var req signInRequest
		if err := requestutil.DecodeJSON(w, r, &req); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		state, err := h.ui.SignIn(req.Username, req.Password)
		switch {
		case errors.Is(err, uistate.ErrInvalidCredentials):
			writeError(w, r, nethttp.StatusUnauthorized, err.Error(), h.logger)
		case err != nil:
			writeError(w, r, nethttp.StatusInternalServerError, "failed to save ui state", h.logger)
		default:
			writeJSON(w, nethttp.StatusOK, state, h.logger)
		}
	case nethttp.MethodDelete:
		state, err := h.ui.SignOut()
		if err != nil {
			writeError(w, r, nethttp.StatusInternalServerError, "failed to save ui state", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, state, h.logger)
	default:
		methodNotAllowed(w, r, h.logger, nethttp.MethodPost, nethttp.MethodDelete)
	}
}
