package api

import (
	"errors"
	"net/http"

	"github.com/controleapp/controle/internal/model"
	"github.com/controleapp/controle/internal/store"
)

// TasksHandler handles task CRUD endpoints.
type TasksHandler struct {
	Store *store.Store
}

type taskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type taskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed"`
}

// List handles GET /api/tasks with an optional status filter.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Store.Tasks(r.Context())
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	tasks = store.FilterTasks(tasks, r.URL.Query().Get("status"))
	if tasks == nil {
		tasks = []model.Task{}
	}
	jsonResponse(w, http.StatusOK, tasks)
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}

	if req.Status == "" {
		req.Status = model.TaskPending
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	task, err := h.Store.CreateTask(r.Context(), req.Title, req.Description, req.Deadline, req.Status, req.Priority)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	jsonResponse(w, http.StatusCreated, task)
}

// Get handles GET /api/tasks/{id}.
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.Store.GetTask(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get task")
		return
	}
	if task == nil {
		jsonError(w, http.StatusNotFound, "task not found")
		return
	}
	jsonResponse(w, http.StatusOK, task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}

	if req.Status == "" {
		req.Status = model.TaskPending
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}

	task, err := h.Store.UpdateTask(r.Context(), r.PathValue("id"), req.Title, req.Description, req.Deadline, req.Status, req.Priority)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update task")
		return
	}

	jsonResponse(w, http.StatusOK, task)
}

// SetStatus handles PUT /api/tasks/{id}/status.
func (h *TasksHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req taskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "status must be pending, in-progress, or completed")
		return
	}

	task, err := h.Store.SetTaskStatus(r.Context(), r.PathValue("id"), req.Status)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update task status")
		return
	}

	jsonResponse(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteTask(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
