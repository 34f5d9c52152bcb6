package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// SalesPage handles GET /sales.
func (s *Server) SalesPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	sales, err := s.Store.Sales(r.Context())
	if err != nil {
		slog.Error("failed to list sales", "error", err)
	}

	// Newest first.
	reversed := make([]model.Sale, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		reversed = append(reversed, sales[i])
	}

	var totalCents int64
	for _, sale := range sales {
		totalCents += sale.TotalCents
	}

	s.Templates.Render(w, "sales.html", &struct {
		PageData
		Sales      []model.Sale
		TotalCents int64
	}{
		PageData:   PageData{Title: "Vendas", User: claims},
		Sales:      reversed,
		TotalCents: totalCents,
	})
}

// SaleNewPage handles GET /sales/new. Only clients can buy, so the
// contact picker excludes suppliers.
func (s *Server) SaleNewPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	contacts, err := s.Store.Contacts(r.Context())
	if err != nil {
		slog.Error("failed to list contacts for sale form", "error", err)
	}
	clients := store.FilterContacts(contacts, "", model.RoleClient)

	items, err := s.Store.Items(r.Context())
	if err != nil {
		slog.Error("failed to list items for sale form", "error", err)
	}

	s.Templates.Render(w, "sale_new.html", &struct {
		PageData
		Clients []model.Contact
		Items   []model.Item
	}{
		PageData: PageData{Title: "Nova venda", User: claims},
		Clients:  clients,
		Items:    items,
	})
}

// SaleCreateSubmit handles POST /sales/new. The form posts parallel
// item_id and quantity fields, one pair per line; blank rows are
// skipped.
func (s *Server) SaleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	contactID := r.FormValue("contact_id")
	status := r.FormValue("status")
	if status == "" {
		status = model.SaleCompleted
	}

	itemIDs := r.PostForm["item_id"]
	quantities := r.PostForm["quantity"]

	var lines []store.SaleLineInput
	for i, itemID := range itemIDs {
		if itemID == "" {
			continue
		}
		quantity := 0
		if i < len(quantities) {
			quantity, _ = strconv.Atoi(quantities[i])
		}
		lines = append(lines, store.SaleLineInput{ItemID: itemID, Quantity: quantity})
	}

	sale, err := s.Store.RecordSale(r.Context(), contactID, lines, status)
	if err != nil {
		slog.Warn("failed to record sale", "error", err)
		switch {
		case errors.Is(err, store.ErrInvalidQuantity),
			errors.Is(err, store.ErrInvalidStatus),
			errors.Is(err, store.ErrUnresolvedReference),
			errors.Is(err, store.ErrSupplierSale):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "failed to record sale", http.StatusInternalServerError)
		}
		return
	}

	slog.Info("sale recorded", "user", claims.Username,
		"contact", sale.ContactName, "total", model.FormatCents(sale.TotalCents),
		"lines", len(sale.Lines), "status", sale.Status)
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

// SaleDeleteSubmit handles POST /sales/{id}/delete. Deleting a sale
// removes the record only; deducted stock stays deducted.
func (s *Server) SaleDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	err := s.Store.DeleteSale(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to delete sale", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("sale deleted", "user", claims.Username, "id", id)
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}
