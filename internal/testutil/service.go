package testutil

import (
	"github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	domain "github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/store"
)

// NewPlayerService builds a player service backed by an in-memory store preloaded with the roster.
func NewPlayerService(roster []domain.Player) (*players.Service, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	if len(roster) > 0 {
		ms.SetPlayers(domain.NormalizeAll(roster))
	}
	return players.NewService(ms, 16), ms
}
