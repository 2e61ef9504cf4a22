package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envSnapshotDays = "SNAPSHOT_RETENTION_DAYS"

	defaultPort = "8080"
	// Conservative default poll interval to respect the scoreboard upstream.
	defaultPollInterval = 2 * Duration(time.Minute)
	defaultMetricsPort  = "9090"
	defaultSnapshotDir  = "data/snapshots"
	defaultSnapshotDays = 14
)
