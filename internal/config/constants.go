package config

import "time"

const (
	envPort         = "PORT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envProvider     = "ROSTER_PROVIDER"
	envRosterFile   = "ROSTER_FILE"
	envPollInterval = "ROSTER_REFRESH_INTERVAL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envUIStateFile  = "UI_STATE_FILE"
	envDemoUser     = "DEMO_USERNAME"
	envDemoPassword = "DEMO_PASSWORD"
	envFilterCache  = "FILTER_CACHE_SIZE"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envSnapshotDays = "SNAPSHOT_RETENTION_DAYS"

	defaultPort      = "4000"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	// Roster data is static between deploys; a slow refresh only picks up edits to ROSTER_FILE.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultRosterFile   = "data/roster.json"
	defaultMetricsPort  = "9090"
	defaultDemoUser     = "demo"
	defaultDemoPassword = "blues"
	defaultFilterCache  = 256
	defaultSnapshotDays = 14

	// ServiceName is reported in logs and telemetry.
	ServiceName = "bluesops"
)
