package handlers

import (
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

const maxSuggestLimit = 50

// Players serves the filtered, searched and sorted player table.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.players == nil {
		h.unavailable(w, r, "player service")
		return
	}
	q := filter.FromValues(r.URL.Query())
	if q.Sort.Column != "" && !filter.ValidColumn(q.Sort.Column) {
		writeError(w, r, nethttp.StatusBadRequest, "unknown sort column "+strconv.Quote(q.Sort.Column), h.logger)
		return
	}

	res := h.players.Search(q)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Debug("served players", "count", res.Count)
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// PlayerRoutes dispatches /api/players/{id}, /api/players/leagues and /api/players/suggest.
func (h *Handler) PlayerRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/players/")
	switch rest {
	case "leagues":
		h.Leagues(w, r)
	case "suggest":
		h.Suggest(w, r)
	default:
		h.PlayerByID(w, r)
	}
}

// PlayerByID returns a single player if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.players == nil {
		h.unavailable(w, r, "player service")
		return
	}
	idRaw := strings.TrimPrefix(r.URL.Path, "/api/players/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	player, ok := h.players.PlayerByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// Leagues returns per-league totals and matching counts for the current query.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.players == nil {
		h.unavailable(w, r, "player service")
		return
	}
	writeJSON(w, nethttp.StatusOK, h.players.Leagues(filter.FromValues(r.URL.Query())), h.logger)
}

// Suggest returns fuzzy name matches for the search box.
func (h *Handler) Suggest(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.players == nil {
		h.unavailable(w, r, "player service")
		return
	}
	limit := filter.DefaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		limit = min(n, maxSuggestLimit)
	}
	suggestions := h.players.Suggest(r.URL.Query().Get("q"), limit)
	if suggestions == nil {
		suggestions = []filter.Suggestion{}
	}
	writeJSON(w, nethttp.StatusOK, suggestions, h.logger)
}
