package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"pressbox-service/internal/cache"
	"pressbox-service/internal/domain"
	"pressbox-service/internal/logging"
	"pressbox-service/internal/poller"
	"pressbox-service/internal/store"
	"pressbox-service/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (cache purge, snapshot refresh).
type AdminHandler struct {
	store  *store.MemoryStore
	writer poller.SnapshotWriter
	cache  *cache.Cache
	token  string
	logger *slog.Logger
	now    nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(gameStore *store.MemoryStore, writer poller.SnapshotWriter, threadCache *cache.Cache, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  gameStore,
		writer: writer,
		cache:  threadCache,
		token:  token,
		logger: logger,
		now:    time.Now,
	}
}

// PurgeThreadCache drops every cached thread set so the next request
// recomputes from live searches. Guarded by ADMIN_TOKEN; 401 if missing/invalid.
func (h *AdminHandler) PurgeThreadCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String(logging.FieldPath, r.URL.Path))
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "thread cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	purged := h.cache.Purge()
	writeJSON(w, http.StatusOK, map[string]any{"purged": purged, "status": "ok"}, logger)
	logging.Info(logger, "admin purged thread cache", slog.Int(logging.FieldCount, purged))
}

// RefreshSnapshots writes today's snapshot from the current store contents.
// Guarded by ADMIN_TOKEN; 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String(logging.FieldPath, r.URL.Path))
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.store == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	games := h.store.ListGames()
	if len(games) == 0 {
		logging.Warn(logger, "admin snapshot no games")
		writeError(w, r, http.StatusBadRequest, "no games to snapshot", logger)
		return
	}

	date := timeutil.FormatDate(h.now())
	snap := domain.NewTodayResponse(date, games)
	if err := h.writer.WriteGamesSnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(games)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"snapshots": len(games),
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
