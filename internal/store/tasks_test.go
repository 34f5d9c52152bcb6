package store

import (
	"context"
	"errors"
	"testing"

	"github.com/controleapp/controle/internal/model"
)

func TestCreateAndUpdateTask(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	task, err := s.CreateTask(ctx, "Fechar balanço", "Balanço mensal", "2026-09-30", "pending", "high")
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := s.UpdateTask(ctx, task.ID, "Fechar balanço", "Balanço mensal revisado", "2026-10-05", "in-progress", "medium")
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Status != model.TaskInProgress || updated.Priority != model.PriorityMedium {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestCreateTaskRejectsUnknownValues(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateTask(ctx, "X", "", "2026-01-01", "done", "high"); err == nil {
		t.Error("expected error for unknown status")
	}
	if _, err := s.CreateTask(ctx, "X", "", "2026-01-01", "pending", "urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestSetTaskStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	task, _ := s.CreateTask(ctx, "X", "", "2026-01-01", "pending", "low")

	updated, err := s.SetTaskStatus(ctx, task.ID, model.TaskCompleted)
	if err != nil {
		t.Fatalf("SetTaskStatus: %v", err)
	}
	if updated.Status != model.TaskCompleted {
		t.Errorf("status not applied: %q", updated.Status)
	}
	if updated.Title != "X" || updated.Priority != "low" {
		t.Errorf("other fields changed: %+v", updated)
	}

	if _, err := s.SetTaskStatus(ctx, "missing", model.TaskCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	task, _ := s.CreateTask(ctx, "X", "", "2026-01-01", "pending", "low")

	if err := s.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	tasks, _ := s.Tasks(ctx)
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(tasks))
	}

	if err := s.DeleteTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestFilterTasks(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.CreateTask(ctx, "A", "", "2026-01-01", "pending", "low")
	s.CreateTask(ctx, "B", "", "2026-01-01", "completed", "low")
	s.CreateTask(ctx, "C", "", "2026-01-01", "in-progress", "high")

	tasks, _ := s.Tasks(ctx)

	if got := FilterTasks(tasks, "completed"); len(got) != 1 || got[0].Title != "B" {
		t.Errorf("filter completed: got %+v", got)
	}
	if got := FilterTasks(tasks, "all"); len(got) != 3 {
		t.Errorf("filter all: got %d", len(got))
	}
}
