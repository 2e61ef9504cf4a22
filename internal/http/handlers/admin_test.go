package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pressbox-service/internal/cache"
	"pressbox-service/internal/domain"
	"pressbox-service/internal/store"
	"pressbox-service/internal/testutil"
)

type stubSnapshotWriter struct {
	written map[string]domain.TodayResponse
	err     error
}

func (s *stubSnapshotWriter) WriteGamesSnapshot(date string, snapshot domain.TodayResponse) error {
	if s.written == nil {
		s.written = make(map[string]domain.TodayResponse)
	}
	s.written[date] = snapshot
	return s.err
}

func adminRequest(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestPurgeThreadCache(t *testing.T) {
	threadCache := cache.New(time.Minute, nil)
	if _, err := threadCache.GetOrCompute(context.Background(), "game-1", false,
		func(ctx context.Context) ([]domain.GameThread, error) {
			return []domain.GameThread{{Subreddit: "nfl"}}, nil
		}); err != nil {
		t.Fatalf("seed errored: %v", err)
	}

	admin := NewAdminHandler(store.NewMemoryStore(), nil, threadCache, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(admin.PurgeThreadCache), adminRequest("/admin/threads/purge", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["purged"] != float64(1) {
		t.Fatalf("expected 1 purged, got %v", resp["purged"])
	}
	if threadCache.Len() != 0 {
		t.Fatalf("expected cache emptied, got %d entries", threadCache.Len())
	}
}

func TestAdminRejectsBadToken(t *testing.T) {
	admin := NewAdminHandler(store.NewMemoryStore(), nil, cache.New(time.Minute, nil), "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(admin.PurgeThreadCache), adminRequest("/admin/threads/purge", "wrong"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	rr = testutil.ServeRequest(http.HandlerFunc(admin.PurgeThreadCache), adminRequest("/admin/threads/purge", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRejectsWhenNoTokenConfigured(t *testing.T) {
	admin := NewAdminHandler(store.NewMemoryStore(), nil, cache.New(time.Minute, nil), "", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(admin.PurgeThreadCache), adminRequest("/admin/threads/purge", ""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestRefreshSnapshots(t *testing.T) {
	gameStore := store.NewMemoryStore()
	gameStore.SetGames([]domain.Game{testutil.SampleGame("game-1")})
	writer := &stubSnapshotWriter{}

	admin := NewAdminHandler(gameStore, writer, nil, "secret", nil)
	admin.now = testutil.NowAt(time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC))

	rr := testutil.ServeRequest(http.HandlerFunc(admin.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	snap, ok := writer.written["2025-10-12"]
	if !ok {
		t.Fatal("expected snapshot written for today")
	}
	if len(snap.Games) != 1 || snap.Games[0].ID != "game-1" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRefreshSnapshotsNoGames(t *testing.T) {
	admin := NewAdminHandler(store.NewMemoryStore(), &stubSnapshotWriter{}, nil, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(admin.RefreshSnapshots), adminRequest("/admin/snapshots/refresh", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestAdminMethodNotAllowed(t *testing.T) {
	admin := NewAdminHandler(store.NewMemoryStore(), nil, cache.New(time.Minute, nil), "secret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/threads/purge", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := testutil.ServeRequest(http.HandlerFunc(admin.PurgeThreadCache), req)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
