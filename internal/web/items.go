package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/controleapp/controle/internal/imaging"
	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// ItemsPage handles GET /items with an optional q filter.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	items, err := s.Store.Items(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	query := r.URL.Query().Get("q")
	items = store.FilterItems(items, query)

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items []model.Item
		Query string
	}{
		PageData: PageData{Title: "Estoque", User: claims},
		Items:    items,
		Query:    query,
	})
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	item, err := s.Store.GetItem(r.Context(), id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	// Sales that snapshot this item, newest first.
	sales, err := s.Store.Sales(r.Context())
	if err != nil {
		slog.Error("failed to list sales for item detail", "error", err)
	}
	var history []model.Sale
	for i := len(sales) - 1; i >= 0; i-- {
		for _, line := range sales[i].Lines {
			if line.ItemID == id {
				history = append(history, sales[i])
				break
			}
		}
	}

	imageData, _, err := s.Store.GetItemImage(r.Context(), id)
	if err != nil {
		slog.Error("failed to check item image", "error", err)
	}

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item     *model.Item
		History  []model.Sale
		HasImage bool
	}{
		PageData: PageData{Title: item.Name, User: claims},
		Item:     item,
		History:  history,
		HasImage: imageData != nil,
	})
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	name := r.FormValue("name")
	if name == "" {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
		return
	}

	priceCents, err := model.ParseCents(r.FormValue("price"))
	if err != nil || priceCents < 0 {
		http.Error(w, "preço inválido", http.StatusBadRequest)
		return
	}
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	minQuantity, _ := strconv.Atoi(r.FormValue("min_quantity"))

	_, err = s.Store.CreateItem(r.Context(), name, r.FormValue("category"), quantity, minQuantity, priceCents)
	if err != nil {
		slog.Error("failed to create item", "error", err)
	} else {
		slog.Info("item created", "user", claims.Username, "item", name)
	}
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	name := r.FormValue("name")
	if name == "" {
		http.Redirect(w, r, "/items/"+id, http.StatusSeeOther)
		return
	}

	priceCents, err := model.ParseCents(r.FormValue("price"))
	if err != nil || priceCents < 0 {
		http.Error(w, "preço inválido", http.StatusBadRequest)
		return
	}
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	minQuantity, _ := strconv.Atoi(r.FormValue("min_quantity"))

	_, err = s.Store.UpdateItem(r.Context(), id, name, r.FormValue("category"), quantity, minQuantity, priceCents)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update item", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("item updated", "user", claims.Username, "item", name)
	http.Redirect(w, r, "/items/"+id, http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	err := s.Store.DeleteItem(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("item deleted", "user", claims.Username, "id", id)
	http.Redirect(w, r, "/items", http.StatusSeeOther)
}

// ItemImageSubmit handles POST /items/{id}/image.
func (s *Server) ItemImageSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Process the image: validate format by sniffing bytes, downscale, compress.
	result, err := imaging.Process(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.Store.SetItemImage(r.Context(), id, result.Data, result.MIME)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to save image", "error", err)
		http.Error(w, "failed to save image", http.StatusInternalServerError)
		return
	}

	slog.Info("item image uploaded", "user", claims.Username, "id", id)
	http.Redirect(w, r, "/items/"+id, http.StatusSeeOther)
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	data, mime, err := s.Store.GetItemImage(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
