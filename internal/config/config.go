package config

import "github.com/subosito/gotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Snapshots    SnapshotsConfig
	ESPN         ESPNConfig
	Reddit       RedditConfig
	Threads      ThreadsConfig
	Metrics      MetricsConfig
}

// SnapshotsConfig controls on-disk game snapshots.
type SnapshotsConfig struct {
	Dir           string
	RetentionDays int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	_ = gotenv.Load()

	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Snapshots: SnapshotsConfig{
			Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
			RetentionDays: intEnvOrDefault(envSnapshotDays, defaultSnapshotDays),
		},
		ESPN:    loadESPN(),
		Reddit:  loadReddit(),
		Threads: loadThreads(),
		Metrics: loadMetrics(),
	}
}
