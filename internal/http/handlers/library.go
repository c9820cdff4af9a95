package handlers

import (
	nethttp "net/http"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

type notesResponse struct {
	Count int          `json:"count"`
	Notes []notes.Note `json:"notes"`
}

type videosResponse struct {
	Count  int            `json:"count"`
	Videos []videos.Video `json:"videos"`
}

// Notes lists meeting notes filtered by search, category, author and date range.
func (h *Handler) Notes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.notes == nil {
		h.unavailable(w, r, "notes service")
		return
	}
	q := r.URL.Query()
	items := h.notes.Search(filter.NoteFilters{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Author:   q.Get("author"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	})
	if items == nil {
		items = []notes.Note{}
	}
	writeJSON(w, nethttp.StatusOK, notesResponse{Count: len(items), Notes: items}, h.logger)
}

// Videos lists the video library filtered by search, category, team and player.
func (h *Handler) Videos(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		methodNotAllowed(w, r, h.logger, nethttp.MethodGet)
		return
	}
	if h.videos == nil {
		h.unavailable(w, r, "video service")
		return
	}
	q := r.URL.Query()
	items := h.videos.Search(filter.VideoFilters{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Team:     q.Get("team"),
		Player:   q.Get("player"),
	})
	if items == nil {
		items = []videos.Video{}
	}
	writeJSON(w, nethttp.StatusOK, videosResponse{Count: len(items), Videos: items}, h.logger)
}
