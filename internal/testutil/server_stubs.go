package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/blakethaselberger/StarsOps-sub001/internal/poller"
)

// StubPoller implements the server's poller dependency.
type StubPoller struct {
	mu         sync.Mutex
	StartCalls int
	StopCalls  int
	Err        error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(ctx context.Context) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StartCalls++
}

func (p *StubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

// Counts returns start and stop call counts.
func (p *StubPoller) Counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.StartCalls, p.StopCalls
}

// StubHTTPServer implements the server's httpServer dependency. ListenAndServe
// blocks until Shutdown when Block is set, otherwise it returns ListenErr.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       bool

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
	once          sync.Once
	closed        chan struct{}
}

func (s *StubHTTPServer) init() {
	s.once.Do(func() { s.closed = make(chan struct{}) })
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.init()
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	if s.Block {
		<-s.closed
		return http.ErrServerClosed
	}
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.init()
	s.mu.Lock()
	s.shutdownCalls++
	first := s.shutdownCalls == 1
	s.mu.Unlock()
	if first {
		close(s.closed)
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// Calls returns listen and shutdown call counts.
func (s *StubHTTPServer) Calls() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls, s.shutdownCalls
}

// BlockingHTTPServer simulates a shutdown that waits on an unblock channel.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}
