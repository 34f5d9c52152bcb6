package web

import (
	"net/http"

	"github.com/controleapp/controle/internal/store"
	webembed "github.com/controleapp/controle/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(s *store.Store, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	srv := &Server{
		Store:     s,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, s)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", srv.LoginPage)
	mux.HandleFunc("POST /login", srv.LoginSubmit)
	mux.HandleFunc("POST /logout", srv.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(srv.Dashboard)))

	mux.Handle("GET /contacts", cookieAuth(http.HandlerFunc(srv.ContactsPage)))
	mux.Handle("POST /contacts", cookieAuth(http.HandlerFunc(srv.ContactCreateSubmit)))
	mux.Handle("POST /contacts/{id}", cookieAuth(http.HandlerFunc(srv.ContactUpdateSubmit)))
	mux.Handle("POST /contacts/{id}/delete", cookieAuth(http.HandlerFunc(srv.ContactDeleteSubmit)))

	mux.Handle("GET /items", cookieAuth(http.HandlerFunc(srv.ItemsPage)))
	mux.Handle("POST /items", cookieAuth(http.HandlerFunc(srv.ItemCreateSubmit)))
	mux.Handle("GET /items/{id}", cookieAuth(http.HandlerFunc(srv.ItemDetailPage)))
	mux.Handle("POST /items/{id}", cookieAuth(http.HandlerFunc(srv.ItemUpdateSubmit)))
	mux.Handle("POST /items/{id}/delete", cookieAuth(http.HandlerFunc(srv.ItemDeleteSubmit)))
	mux.Handle("POST /items/{id}/image", cookieAuth(http.HandlerFunc(srv.ItemImageSubmit)))
	mux.Handle("GET /items/{id}/image", cookieAuth(http.HandlerFunc(srv.ItemImageGet)))

	mux.Handle("GET /sales", cookieAuth(http.HandlerFunc(srv.SalesPage)))
	mux.Handle("GET /sales/new", cookieAuth(http.HandlerFunc(srv.SaleNewPage)))
	mux.Handle("POST /sales/new", cookieAuth(http.HandlerFunc(srv.SaleCreateSubmit)))
	mux.Handle("POST /sales/{id}/delete", cookieAuth(http.HandlerFunc(srv.SaleDeleteSubmit)))

	mux.Handle("GET /tasks", cookieAuth(http.HandlerFunc(srv.TasksPage)))
	mux.Handle("POST /tasks", cookieAuth(http.HandlerFunc(srv.TaskCreateSubmit)))
	mux.Handle("POST /tasks/{id}/status", cookieAuth(http.HandlerFunc(srv.TaskStatusSubmit)))
	mux.Handle("POST /tasks/{id}/delete", cookieAuth(http.HandlerFunc(srv.TaskDeleteSubmit)))

	mux.Handle("GET /settings", cookieAuth(http.HandlerFunc(srv.SettingsPage)))
	mux.Handle("POST /settings", cookieAuth(http.HandlerFunc(srv.SettingsSubmit)))

	return mux, nil
}
