package filter

import (
	"strings"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/timeutil"
)

// Search keeps the items where any of fields(item) contains term,
// case-insensitively. An empty term keeps everything.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	return Where(items, searchPredicate(term, fields))
}

// Where keeps the items accepted by keep, in input order. Never nil.
func Where[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func searchPredicate[T any](term string, fields func(T) []string) func(T) bool {
	if term == "" {
		return func(T) bool { return true }
	}
	term = strings.ToLower(term)
	return func(it T) bool {
		for _, f := range fields(it) {
			if containsFold(f, term) {
				return true
			}
		}
		return false
	}
}

func and[T any](preds ...func(T) bool) func(T) bool {
	return func(it T) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// NoteFilters narrows the meeting notes page. From and To are inclusive
// YYYY-MM-DD bounds.
type NoteFilters struct {
	Search   string
	Category string
	Author   string
	From     string
	To       string
}

func noteFields(n notes.Note) []string {
	return append([]string{n.Title, n.Content, n.Author}, n.Tags...)
}

// Notes applies NoteFilters. A malformed date bound matches nothing, as does
// a note whose own date cannot be parsed while a bound is set.
func Notes(items []notes.Note, f NoteFilters) []notes.Note {
	preds := []func(notes.Note) bool{searchPredicate(f.Search, noteFields)}
	if active(f.Category) {
		want := notes.Category(strings.TrimSpace(f.Category))
		preds = append(preds, func(n notes.Note) bool { return strings.EqualFold(string(n.Category), string(want)) })
	}
	if active(f.Author) {
		term := strings.ToLower(strings.TrimSpace(f.Author))
		preds = append(preds, func(n notes.Note) bool { return containsFold(n.Author, term) })
	}
	preds = appendDateBound(preds, f.From, func(d, bound time.Time) bool { return !d.Before(bound) })
	preds = appendDateBound(preds, f.To, func(d, bound time.Time) bool { return !d.After(bound) })
	return Where(items, and(preds...))
}

func appendDateBound(preds []func(notes.Note) bool, raw string, ok func(d, bound time.Time) bool) []func(notes.Note) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return preds
	}
	bound, err := timeutil.ParseDate(raw)
	if err != nil {
		return append(preds, func(notes.Note) bool { return false })
	}
	return append(preds, func(n notes.Note) bool {
		d, err := timeutil.ParseDate(n.Date)
		return err == nil && ok(d, bound)
	})
}

// VideoFilters narrows the video library page.
type VideoFilters struct {
	Search   string
	Category string
	Team     string
	Player   string
}

func videoFields(v videos.Video) []string {
	return append([]string{v.Title, v.Player, v.Team}, v.Tags...)
}

// Videos applies VideoFilters.
func Videos(items []videos.Video, f VideoFilters) []videos.Video {
	preds := []func(videos.Video) bool{searchPredicate(f.Search, videoFields)}
	if active(f.Category) {
		want := strings.TrimSpace(f.Category)
		preds = append(preds, func(v videos.Video) bool { return strings.EqualFold(string(v.Category), want) })
	}
	if active(f.Team) {
		term := strings.ToLower(strings.TrimSpace(f.Team))
		preds = append(preds, func(v videos.Video) bool { return containsFold(v.Team, term) })
	}
	if active(f.Player) {
		term := strings.ToLower(strings.TrimSpace(f.Player))
		preds = append(preds, func(v videos.Video) bool { return containsFold(v.Player, term) })
	}
	return Where(items, and(preds...))
}
