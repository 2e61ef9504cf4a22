package reddit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/testutil"
)

type stubSearcher struct {
	posts []domain.Post
	err   error
}

func (s *stubSearcher) Search(ctx context.Context, subreddit, query string, since time.Time) ([]domain.Post, error) {
	return s.posts, s.err
}

func TestResilientSearcherPassesThrough(t *testing.T) {
	inner := &stubSearcher{posts: []domain.Post{{ID: "p1"}}}
	s := NewResilientSearcher(inner, nil, nil)

	posts, err := s.Search(context.Background(), "nfl", "q", time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Fatalf("unexpected posts %+v", posts)
	}
}

func TestResilientSearcherDegradesFailureToEmpty(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := &stubSearcher{err: errors.New("listing unavailable")}
	s := NewResilientSearcher(inner, logger, nil)

	posts, err := s.Search(context.Background(), "Patriots", "q", time.Time{})
	if err != nil {
		t.Fatalf("expected degraded nil error, got %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", posts)
	}
	if !strings.Contains(buf.String(), "forum search failed") {
		t.Fatalf("expected warning logged, got %q", buf.String())
	}
}
