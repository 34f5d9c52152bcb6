package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/controleapp/controle/internal/store"
)

var validate = validator.New()

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s *store.Store, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: s, JWTSecret: jwtSecret}
	contactsHandler := &ContactsHandler{Store: s}
	itemsHandler := &ItemsHandler{Store: s}
	salesHandler := &SalesHandler{Store: s}
	tasksHandler := &TasksHandler{Store: s}
	statsHandler := &StatsHandler{Store: s}

	authMW := AuthMiddleware(jwtSecret, s)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Contacts.
	mux.Handle("GET /api/contacts", authMW(http.HandlerFunc(contactsHandler.List)))
	mux.Handle("POST /api/contacts", authMW(http.HandlerFunc(contactsHandler.Create)))
	mux.Handle("GET /api/contacts/{id}", authMW(http.HandlerFunc(contactsHandler.Get)))
	mux.Handle("PUT /api/contacts/{id}", authMW(http.HandlerFunc(contactsHandler.Update)))
	mux.Handle("DELETE /api/contacts/{id}", authMW(http.HandlerFunc(contactsHandler.Delete)))

	// Inventory items.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))

	// Sales.
	mux.Handle("GET /api/sales", authMW(http.HandlerFunc(salesHandler.List)))
	mux.Handle("POST /api/sales", authMW(http.HandlerFunc(salesHandler.Create)))
	mux.Handle("GET /api/sales/{id}", authMW(http.HandlerFunc(salesHandler.Get)))
	mux.Handle("DELETE /api/sales/{id}", authMW(http.HandlerFunc(salesHandler.Delete)))

	// Tasks.
	mux.Handle("GET /api/tasks", authMW(http.HandlerFunc(tasksHandler.List)))
	mux.Handle("POST /api/tasks", authMW(http.HandlerFunc(tasksHandler.Create)))
	mux.Handle("GET /api/tasks/{id}", authMW(http.HandlerFunc(tasksHandler.Get)))
	mux.Handle("PUT /api/tasks/{id}", authMW(http.HandlerFunc(tasksHandler.Update)))
	mux.Handle("PUT /api/tasks/{id}/status", authMW(http.HandlerFunc(tasksHandler.SetStatus)))
	mux.Handle("DELETE /api/tasks/{id}", authMW(http.HandlerFunc(tasksHandler.Delete)))

	// Dashboard summary.
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))

	return mux
}
