package store

import (
	"slices"
	"sync"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// MemoryStore keeps a thread-safe snapshot of the roster, notes and videos.
// Players keep their source order; the table relies on it for stable output.
type MemoryStore struct {
	mu      sync.RWMutex
	players []players.Player
	byID    map[string]int
	notes   []notes.Note
	videos  []videos.Video
	version uint64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// ListPlayers returns a copy of the current players in source order.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.players)
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.players[i], true
}

// SetPlayers replaces the roster. A later duplicate ID replaces the earlier
// record in place.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	list := make([]players.Player, 0, len(items))
	byID := make(map[string]int, len(items))
	for _, p := range items {
		if i, dup := byID[p.ID]; dup {
			list[i] = p
			continue
		}
		byID[p.ID] = len(list)
		list = append(list, p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = list
	s.byID = byID
	s.version++
}

// PlayersVersion returns the roster generation with the players it describes.
func (s *MemoryStore) PlayersVersion() ([]players.Player, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.players), s.version
}

// Version increments on every SetPlayers call.
func (s *MemoryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// ListNotes returns a copy of the stored notes.
func (s *MemoryStore) ListNotes() []notes.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.notes)
}

// SetNotes replaces the stored notes.
func (s *MemoryStore) SetNotes(items []notes.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = slices.Clone(items)
}

// ListVideos returns a copy of the stored videos.
func (s *MemoryStore) ListVideos() []videos.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.videos)
}

// SetVideos replaces the stored videos.
func (s *MemoryStore) SetVideos(items []videos.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.videos = slices.Clone(items)
}
