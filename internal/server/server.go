package server

import (
	"context"
	"log/slog"
	"net/http"

	appnotes "github.com/blakethaselberger/StarsOps-sub001/internal/app/notes"
	appplayers "github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	appvideos "github.com/blakethaselberger/StarsOps-sub001/internal/app/videos"
	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/config"
	httpserver "github.com/blakethaselberger/StarsOps-sub001/internal/http"
	"github.com/blakethaselberger/StarsOps-sub001/internal/http/handlers"
	"github.com/blakethaselberger/StarsOps-sub001/internal/http/middleware"
	"github.com/blakethaselberger/StarsOps-sub001/internal/logging"
	"github.com/blakethaselberger/StarsOps-sub001/internal/metrics"
	"github.com/blakethaselberger/StarsOps-sub001/internal/poller"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
	"github.com/blakethaselberger/StarsOps-sub001/internal/store"
	"github.com/blakethaselberger/StarsOps-sub001/internal/uistate"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	playersService *appplayers.Service
	chatService    *chat.Service
	prompts        *chat.PromptWatcher
	httpServer     httpServer
	metricsServer  httpServer
	poller         Poller
	metricsStop    func(context.Context) error
}

// services groups everything the router needs.
type services struct {
	store   *store.MemoryStore
	players *appplayers.Service
	notes   *appnotes.Service
	videos  *appvideos.Service
	ui      *uistate.Store
}

// New constructs a server with the configured roster provider and chat backend.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Roster.Provider, provider), 0, 0)
	}
	svcs := buildServices(cfg, logger)
	plr := poller.New(provider, svcs.store, logger, recorder, cfg.Roster.RefreshInterval)
	wireSnapshots(cfg.Snapshots, svcs.store, plr, logger)

	prompts := buildPromptWatcher(cfg.Chat, logger)
	chatSvc := buildChat(context.Background(), cfg.Chat, promptSource(prompts), logger, recorder)
	httpSrv := buildHTTPServer(cfg, svcs, chatSvc, logger, recorder, plr)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          svcs.store,
		playersService: svcs.players,
		chatService:    chatSvc,
		prompts:        prompts,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		poller:         plr,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, playerSvc *appplayers.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:            cfg,
		logger:         logger,
		playersService: playerSvc,
		httpServer:     httpSrv,
		poller:         plr,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger) services {
	memoryStore := store.NewMemoryStore()
	return services{
		store:   memoryStore,
		players: appplayers.NewService(memoryStore, cfg.FilterCacheSize),
		notes:   appnotes.NewService(memoryStore),
		videos:  appvideos.NewService(memoryStore),
		ui:      buildUIState(cfg.UIState, logger),
	}
}

func buildUIState(cfg config.UIStateConfig, logger *slog.Logger) *uistate.Store {
	var adapter uistate.Adapter = uistate.NewMemoryAdapter()
	if cfg.File != "" {
		adapter = uistate.NewFileAdapter(cfg.File)
	}
	auth := uistate.DemoAuthenticator{Username: cfg.DemoUsername, Password: cfg.DemoPassword}
	return uistate.NewStore(adapter, auth, logger)
}

func buildHTTPServer(cfg config.Config, svcs services, chatSvc *chat.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(handlers.Deps{
		Players: svcs.players,
		Notes:   svcs.notes,
		Videos:  svcs.videos,
		Chat:    chatSvc,
		UIState: svcs.ui,
		Status:  statusFn,
		Logger:  logger,
	})
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.Recover(router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.Chat.Timeout),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	if s.prompts != nil {
		s.prompts.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.prompts != nil {
		if err := s.prompts.Close(); err != nil {
			logging.Warn(s.logger, "prompt watcher close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
