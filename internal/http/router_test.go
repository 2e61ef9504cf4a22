package http

import (
	"context"
	nethttp "net/http"
	"testing"
	"time"

	"pressbox-service/internal/cache"
	"pressbox-service/internal/domain"
	"pressbox-service/internal/http/handlers"
	"pressbox-service/internal/store"
	"pressbox-service/internal/testutil"
	"pressbox-service/internal/threads"
)

type noopSearcher struct{}

func (noopSearcher) Search(ctx context.Context, subreddit, query string, since time.Time) ([]domain.Post, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, admin *handlers.AdminHandler) nethttp.Handler {
	t.Helper()
	gameStore := store.NewMemoryStore()
	gameStore.SetGames([]domain.Game{testutil.SampleGame("game-1")})
	finder := threads.NewFinder(noopSearcher{}, threads.NewDirectory(), nil, nil)
	handler := handlers.NewHandler(gameStore, nil, finder, cache.New(time.Minute, nil), nil, nil, nil)
	return NewRouter(handler, admin)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	cases := []struct {
		path string
		want int
	}{
		{"/health", nethttp.StatusOK},
		{"/ready", nethttp.StatusOK},
		{"/games", nethttp.StatusOK},
		{"/games/today", nethttp.StatusOK},
		{"/games/game-1", nethttp.StatusOK},
		{"/games/game-1/threads", nethttp.StatusOK},
		{"/games/missing", nethttp.StatusNotFound},
		{"/threads/nfl/abc/comments", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, nethttp.MethodGet, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("GET %s = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}

func TestRouterAdminUnmountedWithoutToken(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := testutil.Serve(router, nethttp.MethodPost, "/admin/threads/purge", nil)
	if rr.Code != nethttp.StatusNotFound {
		t.Fatalf("expected admin route absent, got %d", rr.Code)
	}
}

func TestRouterAdminMountedWithToken(t *testing.T) {
	admin := handlers.NewAdminHandler(store.NewMemoryStore(), nil, cache.New(time.Minute, nil), "secret", nil)
	router := newTestRouter(t, admin)

	rr := testutil.Serve(router, nethttp.MethodPost, "/admin/threads/purge", nil)
	if rr.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected unauthorized without bearer token, got %d", rr.Code)
	}
}
