package server

import (
	"log/slog"

	"github.com/blakethaselberger/StarsOps-sub001/internal/config"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
)

// providerFactory assembles the roster provider with the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg.Roster, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Roster.Provider, base), 0, 0)
}
