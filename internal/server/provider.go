package server

import (
	"log/slog"

	"github.com/blakethaselberger/StarsOps-sub001/internal/config"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/file"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/fixture"
)

func selectProvider(cfg config.RosterConfig, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "file":
		return file.New(cfg.File)
	default:
		logging.Warn(logger, "unknown roster provider, falling back to fixture", slog.String("provider", cfg.Provider))
		return fixture.New()
	}
}
