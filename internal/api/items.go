package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/controleapp/controle/internal/imaging"
	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// ItemsHandler handles inventory item CRUD endpoints.
type ItemsHandler struct {
	Store *store.Store
}

// Price travels as a decimal string ("12.50") and is parsed into
// centavos, never through a float.
type itemRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity" validate:"min=0"`
	Price       string `json:"price" validate:"required"`
}

// List handles GET /api/items with an optional q filter.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.Items(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	items = store.FilterItems(items, r.URL.Query().Get("q"))
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "name and price required")
		return
	}

	priceCents, err := model.ParseCents(req.Price)
	if err != nil || priceCents < 0 {
		jsonError(w, http.StatusBadRequest, "invalid price")
		return
	}

	item, err := h.Store.CreateItem(r.Context(), req.Name, req.Category, req.Quantity, req.MinQuantity, priceCents)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "name and price required")
		return
	}

	priceCents, err := model.ParseCents(req.Price)
	if err != nil || priceCents < 0 {
		jsonError(w, http.StatusBadRequest, "invalid price")
		return
	}

	item, err := h.Store.UpdateItem(r.Context(), r.PathValue("id"), req.Name, req.Category, req.Quantity, req.MinQuantity, priceCents)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteItem(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(io.LimitReader(file, 5<<20))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.Store.SetItemImage(r.Context(), r.PathValue("id"), result.Data, result.MIME)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.Store.GetItemImage(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
