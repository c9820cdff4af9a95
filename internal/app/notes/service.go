package notes

import (
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

// Store defines the contract for persisting and retrieving notes.
type Store interface {
	ListNotes() []notes.Note
	SetNotes([]notes.Note)
}

// Service coordinates note operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Notes returns every stored note.
func (s *Service) Notes() []notes.Note {
	return s.store.ListNotes()
}

// Search returns the notes matching f, in stored order.
func (s *Service) Search(f filter.NoteFilters) []notes.Note {
	return filter.Notes(s.store.ListNotes(), f)
}

// ReplaceNotes swaps the stored notes.
func (s *Service) ReplaceNotes(items []notes.Note) {
	s.store.SetNotes(items)
}
