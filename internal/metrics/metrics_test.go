package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("espn", 125*time.Millisecond, nil)
	r.RecordProviderAttempt("espn", 250*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("espn")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastCallLatency != 250*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()

	r.RecordRateLimit("espn", 30*time.Second)
	r.RecordRateLimit("espn", 0)

	snap := r.Snapshot("espn")
	if snap.RateLimitHits != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 30*time.Second {
		t.Fatalf("expected zero Retry-After ignored, got %v", snap.LastRetryAfter)
	}
}

func TestRecordForumSearchScopesProvider(t *testing.T) {
	r := NewRecorder()

	r.RecordForumSearch("nfl", 80*time.Millisecond, nil)
	r.RecordForumSearch("Patriots", 90*time.Millisecond, errors.New("down"))

	if calls := r.ProviderCalls("reddit:nfl"); calls != 1 {
		t.Fatalf("expected 1 nfl search, got %d", calls)
	}
	if errs := r.ProviderErrors("reddit:Patriots"); errs != 1 {
		t.Fatalf("expected 1 Patriots error, got %d", errs)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	r := NewRecorder()

	r.RecordCacheLookup(true)
	r.RecordCacheLookup(true)
	r.RecordCacheLookup(false)

	if r.CacheHits() != 2 || r.CacheMisses() != 1 {
		t.Fatalf("unexpected cache stats hits=%d misses=%d", r.CacheHits(), r.CacheMisses())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder

	r.RecordProviderAttempt("espn", time.Second, nil)
	r.RecordRateLimit("espn", time.Second)
	r.RecordForumSearch("nfl", time.Second, nil)
	r.RecordCacheLookup(true)
	r.RecordAggregation(time.Second, 3)
	r.RecordHTTPRequest("GET", "/games", 200, time.Second)
	r.RecordPollerCycle(time.Second, nil)

	if r.CacheHits() != 0 || r.ProviderCalls("espn") != 0 {
		t.Fatal("expected zero stats from nil recorder")
	}
}

func TestSnapshotUnknownProvider(t *testing.T) {
	r := NewRecorder()

	if snap := r.Snapshot("unknown"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
