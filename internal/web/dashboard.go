package web

import (
	"log/slog"
	"net/http"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	stats, err := s.Store.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute stats for dashboard", "error", err)
		stats = &store.Stats{}
	}

	sales, err := s.Store.Sales(r.Context())
	if err != nil {
		slog.Error("failed to list sales for dashboard", "error", err)
	}

	// Most recent sales first, capped at 5.
	recent := make([]model.Sale, 0, 5)
	for i := len(sales) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, sales[i])
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Stats       *store.Stats
		RecentSales []model.Sale
	}{
		PageData:    PageData{Title: "Painel", User: claims},
		Stats:       stats,
		RecentSales: recent,
	})
}
