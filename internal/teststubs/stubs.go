package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Players []players.Player
	Notes   []notes.Note
	Videos  []videos.Video
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	notifyOnce sync.Once
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	return s.Players, s.Err
}

// FetchNotes returns configured notes.
func (s *StubProvider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	_ = ctx
	return s.Notes, nil
}

// FetchVideos returns configured videos.
func (s *StubProvider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	_ = ctx
	return s.Videos, nil
}

// StubSink records what a poller refresh wrote.
type StubSink struct {
	mu      sync.Mutex
	Players []players.Player
	Notes   []notes.Note
	Videos  []videos.Video
	Writes  int
}

func (s *StubSink) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Players = items
	s.Writes++
}

func (s *StubSink) SetNotes(items []notes.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notes = items
}

func (s *StubSink) SetVideos(items []videos.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Videos = items
}

// WriteCount returns how many rosters were written.
func (s *StubSink) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Writes
}

// StubCompleter is a test double for chat.Completer.
type StubCompleter struct {
	Reply  chat.Completion
	Err    error
	Calls  atomic.Int32
	mu     sync.Mutex
	LastIn chat.CompletionRequest
}

// Complete records the request and returns the configured reply.
func (s *StubCompleter) Complete(ctx context.Context, req chat.CompletionRequest) (chat.Completion, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.LastIn = req
	s.mu.Unlock()
	if s.Err != nil {
		return chat.Completion{}, s.Err
	}
	return s.Reply, nil
}

// Last returns the most recent request.
func (s *StubCompleter) Last() chat.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.LastIn
}
