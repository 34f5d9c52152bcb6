package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/controleapp/controle/internal/auth"
	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
	webembed "github.com/controleapp/controle/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money": model.FormatCents,
		"roleName": func(role string) string {
			switch role {
			case model.RoleClient:
				return "Cliente"
			case model.RoleSupplier:
				return "Fornecedor"
			default:
				return role
			}
		},
		"saleStatusName": func(status string) string {
			switch status {
			case model.SaleCompleted:
				return "Concluída"
			case model.SalePending:
				return "Pendente"
			case model.SaleCancelled:
				return "Cancelada"
			default:
				return status
			}
		},
		"taskStatusName": func(status string) string {
			switch status {
			case model.TaskPending:
				return "Pendente"
			case model.TaskInProgress:
				return "Em andamento"
			case model.TaskCompleted:
				return "Concluída"
			default:
				return status
			}
		},
		"priorityName": func(priority string) string {
			switch priority {
			case model.PriorityLow:
				return "Baixa"
			case model.PriorityMedium:
				return "Média"
			case model.PriorityHigh:
				return "Alta"
			default:
				return priority
			}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"dashboard.html",
		"contacts.html",
		"items.html",
		"item_detail.html",
		"sales.html",
		"sale_new.html",
		"tasks.html",
		"settings.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.Claims
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store     *store.Store
	Templates *Templates
	JWTSecret string
}
