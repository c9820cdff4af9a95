package http

import (
	nethttp "net/http"

	"github.com/blakethaselberger/StarsOps-sub001/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/players", handler.Players)
	mux.HandleFunc("/api/players/", handler.PlayerRoutes)
	mux.HandleFunc("/api/notes", handler.Notes)
	mux.HandleFunc("/api/videos", handler.Videos)
	mux.HandleFunc("/api/chat", handler.Chat)
	mux.HandleFunc("/api/ui-state", handler.UIState)
	mux.HandleFunc("/api/session", handler.Session)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}
