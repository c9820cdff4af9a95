package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/notes"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and
// records every attempt.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if providerName == "" {
		providerName = metrics.ProviderRoster
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return withRetry(ctx, r, "players", func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx)
	})
}

func (r *retryingProvider) FetchNotes(ctx context.Context) ([]notes.Note, error) {
	return withRetry(ctx, r, "notes", func(ctx context.Context) ([]notes.Note, error) {
		return r.inner.FetchNotes(ctx)
	})
}

func (r *retryingProvider) FetchVideos(ctx context.Context) ([]videos.Video, error) {
	return withRetry(ctx, r, "videos", func(ctx context.Context) ([]videos.Video, error) {
		return r.inner.FetchVideos(ctx)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, resource string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		out, err := fetch(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "resource", resource, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "resource", resource, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logWithProvider(ctx, logging.FromContext(ctx, r.logger), slog.LevelWarn, r.providerName, msg, args...)
}
