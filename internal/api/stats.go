package api

import (
	"net/http"

	"github.com/controleapp/controle/internal/store"
)

// StatsHandler serves the dashboard summary.
type StatsHandler struct {
	Store *store.Store
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.Stats(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}
