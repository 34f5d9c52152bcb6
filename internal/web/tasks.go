package web

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// TasksPage handles GET /tasks with an optional status filter.
// Tasks are shown highest priority first, earliest deadline within a
// priority.
func (s *Server) TasksPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	tasks, err := s.Store.Tasks(r.Context())
	if err != nil {
		slog.Error("failed to list tasks", "error", err)
	}

	status := r.URL.Query().Get("status")
	tasks = store.FilterTasks(tasks, status)

	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := model.PriorityRank(tasks[i].Priority), model.PriorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return tasks[i].Deadline < tasks[j].Deadline
	})

	s.Templates.Render(w, "tasks.html", &struct {
		PageData
		Tasks  []model.Task
		Status string
	}{
		PageData: PageData{Title: "Tarefas", User: claims},
		Tasks:    tasks,
		Status:   status,
	})
}

// TaskCreateSubmit handles POST /tasks.
func (s *Server) TaskCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	title := r.FormValue("title")
	if title == "" {
		http.Redirect(w, r, "/tasks", http.StatusSeeOther)
		return
	}

	status := r.FormValue("status")
	if status == "" {
		status = model.TaskPending
	}
	priority := r.FormValue("priority")
	if priority == "" {
		priority = model.PriorityMedium
	}

	_, err := s.Store.CreateTask(r.Context(), title, r.FormValue("description"), r.FormValue("deadline"), status, priority)
	if err != nil {
		slog.Error("failed to create task", "error", err)
	} else {
		slog.Info("task created", "user", claims.Username, "task", title)
	}
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// TaskStatusSubmit handles POST /tasks/{id}/status.
func (s *Server) TaskStatusSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	status := r.FormValue("status")
	if !model.ValidTaskStatus(status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	_, err := s.Store.SetTaskStatus(r.Context(), id, status)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to update task status", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("task status changed", "user", claims.Username, "id", id, "status", status)
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// TaskDeleteSubmit handles POST /tasks/{id}/delete.
func (s *Server) TaskDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id := r.PathValue("id")

	err := s.Store.DeleteTask(r.Context(), id)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to delete task", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("task deleted", "user", claims.Username, "id", id)
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}
