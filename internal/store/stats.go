package store

import (
	"context"

	"github.com/controleapp/controle/internal/model"
)

// Stats holds the derived dashboard aggregates. They are pure
// projections recomputed on every call; at this scale caching would
// buy nothing.
type Stats struct {
	ContactCount int `json:"contact_count"`
	// RevenueCents counts completed sales only.
	RevenueCents int64        `json:"revenue_cents"`
	LowStock     []model.Item `json:"low_stock"`
	PendingTasks int          `json:"pending_tasks"`

	// Sales-page counters, which include every status.
	SalesCount     int   `json:"sales_count"`
	CompletedSales int   `json:"completed_sales"`
	AllSalesCents  int64 `json:"all_sales_cents"`
}

// Stats computes the dashboard aggregates from current state.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	contacts, err := s.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	st := &Stats{
		ContactCount: len(contacts),
		SalesCount:   len(sales),
	}

	for _, sale := range sales {
		st.AllSalesCents += sale.TotalCents
		if sale.Status == model.SaleCompleted {
			st.CompletedSales++
			st.RevenueCents += sale.TotalCents
		}
	}

	for _, item := range items {
		if item.LowStock() {
			st.LowStock = append(st.LowStock, item)
		}
	}

	for _, task := range tasks {
		if task.Status != model.TaskCompleted {
			st.PendingTasks++
		}
	}

	return st, nil
}
