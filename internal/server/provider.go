package server

import (
	"log/slog"

	"pressbox-service/internal/config"
	"pressbox-service/internal/metrics"
	"pressbox-service/internal/scoreboard"
	"pressbox-service/internal/scoreboard/espn"
)

// buildProvider wraps the ESPN client with retry behavior.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) scoreboard.Provider {
	client := espn.NewClient(espn.Config{
		BaseURL: cfg.ESPN.BaseURL,
		Logger:  logger,
	})
	return scoreboard.NewRetryingProvider(client, logger, recorder, "espn", 0, 0)
}
