package api

import (
	"errors"
	"net/http"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// ContactsHandler handles contact CRUD endpoints.
type ContactsHandler struct {
	Store *store.Store
}

type contactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Role  string `json:"role" validate:"required,oneof=contact supplier"`
}

// List handles GET /api/contacts with optional q and role filters.
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Store.Contacts(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	contacts = store.FilterContacts(contacts, r.URL.Query().Get("q"), r.URL.Query().Get("role"))
	if contacts == nil {
		contacts = []model.Contact{}
	}
	jsonResponse(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts.
func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "name and a role of contact or supplier required")
		return
	}

	contact, err := h.Store.CreateContact(r.Context(), req.Name, req.Email, req.Phone, req.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create contact")
		return
	}

	jsonResponse(w, http.StatusCreated, contact)
}

// Get handles GET /api/contacts/{id}.
func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Store.GetContact(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get contact")
		return
	}
	if contact == nil {
		jsonError(w, http.StatusNotFound, "contact not found")
		return
	}
	jsonResponse(w, http.StatusOK, contact)
}

// Update handles PUT /api/contacts/{id}.
func (h *ContactsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "name and a role of contact or supplier required")
		return
	}

	contact, err := h.Store.UpdateContact(r.Context(), r.PathValue("id"), req.Name, req.Email, req.Phone, req.Role)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "contact not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update contact")
		return
	}

	jsonResponse(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteContact(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "contact not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete contact")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "contact deleted"})
}
