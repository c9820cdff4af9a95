package config

// RosterConfig selects where player, note and video data comes from.
type RosterConfig struct {
	Provider        string // fixture|file
	File            string
	RefreshInterval Duration
}

func loadRoster() RosterConfig {
	return RosterConfig{
		Provider:        envOrDefault(envProvider, defaultProvider),
		File:            envOrDefault(envRosterFile, defaultRosterFile),
		RefreshInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
	}
}

// UIStateConfig controls the persisted dashboard state and the demo sign-in.
type UIStateConfig struct {
	File         string // empty keeps state in memory
	DemoUsername string
	DemoPassword string
}

func loadUIState() UIStateConfig {
	return UIStateConfig{
		File:         envOrDefault(envUIStateFile, ""),
		DemoUsername: envOrDefault(envDemoUser, defaultDemoUser),
		DemoPassword: envOrDefault(envDemoPassword, defaultDemoPassword),
	}
}

// SnapshotConfig controls the on-disk archive of refreshed data.
type SnapshotConfig struct {
	Dir           string // empty disables archiving
	RetentionDays int
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:           envOrDefault(envSnapshotDir, ""),
		RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
	}
}
