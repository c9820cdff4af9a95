package uistate

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Store is the typed application state with a swappable persistence adapter.
// A failed save leaves the previous state in place.
type Store struct {
	mu      sync.Mutex
	state   State
	adapter Adapter
	auth    Authenticator
	logger  *slog.Logger
}

// NewStore loads the persisted state. Unreadable state is logged and replaced by Initial.
func NewStore(adapter Adapter, auth Authenticator, logger *slog.Logger) *Store {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	s := &Store{adapter: adapter, auth: auth, logger: logger, state: Initial()}
	loaded, err := adapter.Load()
	if err != nil {
		logging.Warn(logger, "ui state load failed; using initial state", "error", err)
		return s
	}
	s.state = loaded
	return s
}

// Get returns the current state.
func (s *Store) Get() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetSidebarCollapsed updates the sidebar preference.
func (s *Store) SetSidebarCollapsed(collapsed bool) (State, error) {
	return s.update(func(st *State) { st.SidebarCollapsed = collapsed })
}

// SignIn flips the signed-in flag when the demo credentials match.
func (s *Store) SignIn(username, password string) (State, error) {
	if s.auth == nil || !s.auth.Authenticate(username, password) {
		return s.Get(), ErrInvalidCredentials
	}
	return s.update(func(st *State) { st.SignedIn = true })
}

func (s *Store) SignOut() (State, error) {
	return s.update(func(st *State) { st.SignedIn = false })
}

// Reset restores and persists Initial.
func (s *Store) Reset() (State, error) {
	return s.update(func(st *State) { *st = Initial() })
}

func (s *Store) update(fn func(*State)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	fn(&next)
	if err := s.adapter.Save(next); err != nil {
		logging.Error(s.logger, "ui state save failed", err)
		return s.state, err
	}
	s.state = next
	return next, nil
}
