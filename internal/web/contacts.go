package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// ContactsPage handles GET /contacts with optional q and role filters.
func (s *Server) ContactsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	contacts, err := s.Store.Contacts(r.Context())
	if err != nil {
		slog.Error("failed to list contacts", "error", err)
	}

	query := r.URL.Query().Get("q")
	role := r.URL.Query().Get("role")
	contacts = store.FilterContacts(contacts, query, role)

	s.Templates.Render(w, "contacts.html", &struct {
		PageData
		Contacts []model.Contact
		Query    string
		Role     string
	}{
		PageData: PageData{Title: "Contatos", User: claims},
		Contacts: contacts,
		Query:    query,
		Role:     role,
	})
}

// ContactCreateSubmit handles POST /contacts.
func (s *Server) ContactCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	name := r.FormValue("name")
	role := r.FormValue("role")
	if name == "" || !model.ValidContactRole(role) {
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return
	}

	_, err := s.Store.CreateContact(r.Context(), name, r.FormValue("email"), r.FormValue("phone"), role)
	if err != nil {
		slog.Error("failed to create contact", "error", err)
	} else {
		slog.Info("contact created", "user", claims.Username, "contact", name, "role", role)
	}
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

// ContactUpdateSubmit handles POST /contacts/{id}.
func (s *Server) ContactUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	name := r.FormValue("name")
	role := r.FormValue("role")
	if name == "" || !model.ValidContactRole(role) {
		http.Redirect(w, r, "/contacts", http.StatusSeeOther)
		return
	}

	_, err := s.Store.UpdateContact(r.Context(), id, name, r.FormValue("email"), r.FormValue("phone"), role)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "contact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update contact", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("contact updated", "user", claims.Username, "contact", name)
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}

// ContactDeleteSubmit handles POST /contacts/{id}/delete.
func (s *Server) ContactDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	err := s.Store.DeleteContact(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to delete contact", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("contact deleted", "user", claims.Username, "id", id)
	http.Redirect(w, r, "/contacts", http.StatusSeeOther)
}
