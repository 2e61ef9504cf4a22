package reddit

import (
	"context"
	"log/slog"
	"time"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/logging"
	"pressbox-service/internal/metrics"
)

// Searcher is the forum search contract consumed by the thread pipeline.
type Searcher interface {
	Search(ctx context.Context, subreddit, query string, since time.Time) ([]domain.Post, error)
}

// resilientSearcher decorates a Searcher so one failing forum never aborts
// a whole aggregation: errors are logged, counted, and degraded to an empty
// result set.
type resilientSearcher struct {
	inner   Searcher
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewResilientSearcher wraps the given searcher with partial-failure semantics.
func NewResilientSearcher(inner Searcher, logger *slog.Logger, recorder *metrics.Recorder) Searcher {
	return &resilientSearcher{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
	}
}

func (s *resilientSearcher) Search(ctx context.Context, subreddit, query string, since time.Time) ([]domain.Post, error) {
	start := time.Now()
	posts, err := s.inner.Search(ctx, subreddit, query, since)
	s.metrics.RecordForumSearch(subreddit, time.Since(start), err)
	if err != nil {
		logging.Warn(s.logger, "forum search failed, degrading to empty",
			logging.FieldSubreddit, subreddit, "err", err)
		return []domain.Post{}, nil
	}
	return posts, nil
}
