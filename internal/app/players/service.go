package players

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	SetPlayers([]players.Player)
	PlayersVersion() ([]players.Player, uint64)
}

// Result is one page of the player table.
type Result struct {
	Count   int              `json:"count"`
	Players []players.Player `json:"players"`
}

// Service coordinates player queries over a Store.
type Service struct {
	store Store
	// cache memoizes Search results by roster version and query; nil disables it.
	cache *lru.Cache
}

// NewService constructs a Service. cacheSize <= 0 disables memoization.
func NewService(store Store, cacheSize int) *Service {
	svc := &Service{store: store}
	if cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		svc.cache, _ = lru.New(cacheSize)
	}
	return svc
}

// Players returns the current roster in source order.
func (s *Service) Players() []players.Player {
	return s.store.ListPlayers()
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// ReplacePlayers normalizes and swaps in a new roster.
func (s *Service) ReplacePlayers(items []players.Player) {
	s.store.SetPlayers(players.NormalizeAll(items))
}

// Search filters, searches and sorts the roster.
func (s *Service) Search(q filter.Query) Result {
	roster, version := s.store.PlayersVersion()
	key := fmt.Sprintf("%d|%s", version, q.Key())

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			items := slices.Clone(cached.([]players.Player))
			return Result{Count: len(items), Players: items}
		}
	}

	items := filter.Compile(q.Filters, q.Search).Filter(roster)
	items = filter.Sort(items, q.Sort)

	if s.cache != nil {
		s.cache.Add(key, slices.Clone(items))
	}
	return Result{Count: len(items), Players: items}
}

// Leagues reports per-league totals and how many players match q.
func (s *Service) Leagues(q filter.Query) []filter.LeagueCount {
	return filter.LeagueCounts(s.store.ListPlayers(), filter.Compile(q.Filters, q.Search))
}

// Suggest returns fuzzy name matches for the search box.
func (s *Service) Suggest(query string, limit int) []filter.Suggestion {
	return filter.Suggest(s.store.ListPlayers(), query, limit)
}

// CacheLen reports how many queries are memoized.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}
