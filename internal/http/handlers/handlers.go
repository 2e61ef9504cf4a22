package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pressbox-service/internal/cache"
	"pressbox-service/internal/domain"
	"pressbox-service/internal/poller"
	"pressbox-service/internal/snapshots"
	"pressbox-service/internal/store"
	"pressbox-service/internal/threads"
	"pressbox-service/internal/timeutil"
)

type nowFunc func() time.Time

// CommentsClient fetches read-only comment listings for a thread.
type CommentsClient interface {
	Comments(ctx context.Context, subreddit, postID, sort string, limit int) ([]domain.Comment, error)
}

// Handler wires HTTP routes to the game store and the thread pipeline.
type Handler struct {
	store    *store.MemoryStore
	snaps    snapshots.Store
	finder   *threads.Finder
	cache    *cache.Cache
	comments CommentsClient
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(gameStore *store.MemoryStore, snaps snapshots.Store, finder *threads.Finder, threadCache *cache.Cache, comments CommentsClient, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		store:    gameStore,
		snaps:    snaps,
		finder:   finder,
		cache:    threadCache,
		comments: comments,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// GamesToday returns the current games, or a snapshot for ?date= queries.
func (h *Handler) GamesToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	dateParam := r.URL.Query().Get("date")
	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, nethttp.StatusNotFound, "no snapshot for date", h.logger)
			return
		}
		if logger != nil {
			logger.Info("served snapshot games", "date", snap.Date, "count", len(snap.Games))
		}
		writeJSON(w, nethttp.StatusOK, snap, h.logger)
		return
	}

	date := timeutil.FormatDate(h.now())
	games := h.store.ListGames()
	if len(games) == 0 {
		if snap, err := h.loadSnapshot(date); err == nil {
			games = snap.Games
		}
	}
	writeJSON(w, nethttp.StatusOK, domain.NewTodayResponse(date, games), h.logger)
}

// GameRoutes dispatches /games/{id} and /games/{id}/threads.
func (h *Handler) GameRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/games/")
	if wantsThreads := strings.HasSuffix(rest, "/threads"); wantsThreads {
		id, ok := parseID(strings.TrimSuffix(rest, "/threads"))
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
			return
		}
		h.gameThreads(w, r, id)
		return
	}

	id, ok := parseID(rest)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, found := h.store.GetGame(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

func (h *Handler) gameThreads(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	game, found := h.store.GetGame(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	force := r.URL.Query().Get("refresh") == "1"

	result, err := h.cache.GetOrCompute(r.Context(), game.ID, force, func(ctx context.Context) ([]domain.GameThread, error) {
		return h.finder.Find(ctx, game)
	})
	if err != nil {
		status := nethttp.StatusBadGateway
		if errors.Is(err, threads.ErrInvalidGame) {
			status = nethttp.StatusUnprocessableEntity
		}
		writeError(w, r, status, "thread discovery failed", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, domain.ThreadsResponse{GameID: game.ID, Threads: result}, h.logger)
}

// ThreadComments serves /threads/{subreddit}/{postID}/comments.
func (h *Handler) ThreadComments(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.comments == nil {
		writeError(w, r, nethttp.StatusNotFound, "comments not configured", h.logger)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/threads/"), "/")
	if len(parts) != 3 || parts[2] != "comments" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid thread path", h.logger)
		return
	}
	subreddit, okSub := parseID(parts[0])
	postID, okPost := parseID(parts[1])
	if !okSub || !okPost {
		writeError(w, r, nethttp.StatusBadRequest, "invalid thread path", h.logger)
		return
	}

	sort := r.URL.Query().Get("sort")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	comments, err := h.comments.Comments(r.Context(), subreddit, postID, sort, limit)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "comments unavailable", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"comments": comments}, h.logger)
}

func (h *Handler) loadSnapshot(date string) (domain.TodayResponse, error) {
	if h.snaps == nil {
		return domain.TodayResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadGames(date)
}

func parseID(raw string) (string, bool) {
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", false
	}
	return id, true
}
