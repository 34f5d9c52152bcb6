package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// SalesHandler handles sale endpoints.
type SalesHandler struct {
	Store *store.Store
}

type saleLineRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type createSaleRequest struct {
	ContactID string            `json:"contact_id" validate:"required"`
	Lines     []saleLineRequest `json:"lines" validate:"required,min=1,dive"`
	Status    string            `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
}

// List handles GET /api/sales.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Store.Sales(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list sales")
		return
	}
	if sales == nil {
		sales = []model.Sale{}
	}
	jsonResponse(w, http.StatusOK, sales)
}

// Get handles GET /api/sales/{id}.
func (h *SalesHandler) Get(w http.ResponseWriter, r *http.Request) {
	sale, err := h.Store.GetSale(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get sale")
		return
	}
	if sale == nil {
		jsonError(w, http.StatusNotFound, "sale not found")
		return
	}
	jsonResponse(w, http.StatusOK, sale)
}

// Create handles POST /api/sales.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSaleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "contact_id and at least one line with quantity >= 1 required")
		return
	}

	if req.Status == "" {
		req.Status = model.SaleCompleted
	}

	lines := make([]store.SaleLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = store.SaleLineInput{ItemID: l.ItemID, Quantity: l.Quantity}
	}

	sale, err := h.Store.RecordSale(r.Context(), req.ContactID, lines, req.Status)
	switch {
	case errors.Is(err, store.ErrInvalidQuantity), errors.Is(err, store.ErrInvalidStatus):
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrUnresolvedReference), errors.Is(err, store.ErrSupplierSale):
		jsonError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "failed to record sale")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("sale recorded", "user", claims.Username,
		"contact", sale.ContactName, "total", model.FormatCents(sale.TotalCents),
		"lines", len(sale.Lines), "status", sale.Status)
	jsonResponse(w, http.StatusCreated, sale)
}

// Delete handles DELETE /api/sales/{id}. Stock deducted when the sale
// was recorded stays deducted.
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteSale(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "sale not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete sale")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "sale deleted"})
}
