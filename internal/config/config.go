package config

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Log             LogConfig
	Roster          RosterConfig
	Snapshots       SnapshotConfig
	UIState         UIStateConfig
	FilterCacheSize int
	Chat            ChatConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Only the chat block can fail; the rest falls back to defaults on bad input.
func Load() (Config, error) {
	chat, err := LoadChat()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port: envOrDefault(envPort, defaultPort),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Roster:          loadRoster(),
		Snapshots:       loadSnapshots(),
		UIState:         loadUIState(),
		FilterCacheSize: intEnvOrDefault(envFilterCache, defaultFilterCache),
		Chat:            chat,
		Metrics:         loadMetrics(),
	}, nil
}
