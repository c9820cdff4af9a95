package handlers

import (
	"log/slog"
	nethttp "net/http"

	appnotes "github.com/blakethaselberger/StarsOps-sub001/internal/app/notes"
	appplayers "github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	appvideos "github.com/blakethaselberger/StarsOps-sub001/internal/app/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/poller"
	"github.com/blakethaselberger/StarsOps-sub001/internal/uistate"
)

// Deps are the services exposed over HTTP. Any of them may be nil in tests.
type Deps struct {
	Players *appplayers.Service
	Notes   *appnotes.Service
	Videos  *appvideos.Service
	Chat    *chat.Service
	UIState *uistate.Store
	Status  func() poller.Status
	Logger  *slog.Logger
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	players  *appplayers.Service
	notes    *appnotes.Service
	videos   *appvideos.Service
	chat     *chat.Service
	ui       *uistate.Store
	statusFn func() poller.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(d Deps) *Handler {
	return &Handler{
		players:  d.Players,
		notes:    d.Notes,
		videos:   d.Videos,
		chat:     d.Chat,
		ui:       d.UIState,
		statusFn: d.Status,
		logger:   d.Logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the roster has loaded and the poller is healthy.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound is the JSON fallback for unknown paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func (h *Handler) unavailable(w nethttp.ResponseWriter, r *nethttp.Request, what string) {
	writeError(w, r, nethttp.StatusServiceUnavailable, what+" not configured", h.logger)
}
