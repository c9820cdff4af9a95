package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
)

const (
	defaultInterval = 5 * time.Minute
	// failureThreshold consecutive failed refreshes mark the service not ready.
	failureThreshold = 3
)

// Sink receives each successful refresh.
type Sink interface {
	SetPlayers([]players.Player)
	SetNotes([]notes.Note)
	SetVideos([]videos.Video)
}

// Archiver persists a successful refresh. Failures are logged and never fail the refresh.
type Archiver interface {
	Archive([]players.Player, []notes.Note, []videos.Video) error
}

// Poller loads the roster, notes and videos on an interval and swaps them into a Sink.
type Poller struct {
	provider providers.DataProvider
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	archiver Archiver

	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has loaded data and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < failureThreshold
}

// New constructs a Poller with sane defaults.
func New(provider providers.DataProvider, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// SetArchiver registers an archive for successful refreshes. Call before Start.
func (p *Poller) SetArchiver(a Archiver) {
	p.archiver = a
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.exited)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
	// Initial fetch to warm data on boot.
	p.RefreshOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "poller stopped")
			return
		case <-p.done:
			logging.Info(p.logger, "poller stopped")
			return
		case <-ticker.C:
			p.RefreshOnce(ctx)
		}
	}
}

// Stop halts the polling loop and waits for it to exit or for ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.done) })

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RefreshOnce fetches every data set concurrently. The sink is only updated
// when all three fetches succeed.
func (p *Poller) RefreshOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	var (
		roster  []players.Player
		noteSet []notes.Note
		vids    []videos.Video
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		roster, err = p.provider.FetchPlayers(gctx)
		return err
	})
	g.Go(func() (err error) {
		noteSet, err = p.provider.FetchNotes(gctx)
		return err
	})
	g.Go(func() (err error) {
		vids, err = p.provider.FetchVideos(gctx)
		return err
	})
	err := g.Wait()

	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	p.sink.SetPlayers(roster)
	p.sink.SetNotes(noteSet)
	p.sink.SetVideos(vids)
	p.recordSuccess(start)
	if p.archiver != nil {
		if err := p.archiver.Archive(roster, noteSet, vids); err != nil {
			logging.Warn(p.logger, "snapshot archive failed", "error", err)
		}
	}
	logging.Info(p.logger, "poller refreshed roster",
		logging.FieldCount, len(roster),
		"notes", len(noteSet),
		"videos", len(vids),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
