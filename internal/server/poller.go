package server

import (
	"context"

	"pressbox-service/internal/poller"
)

// Poller abstracts the background game poller for easier testing.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
