package http

import (
	nethttp "net/http"

	"pressbox-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are only
// mounted when an AdminHandler is provided.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/games", h.GamesToday)
	mux.HandleFunc("/games/today", h.GamesToday)
	mux.HandleFunc("/games/", h.GameRoutes)
	mux.HandleFunc("/threads/", h.ThreadComments)
	if admin != nil {
		mux.HandleFunc("/admin/threads/purge", admin.PurgeThreadCache)
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	return mux
}
