package store

import (
	"context"
	"fmt"

	"github.com/controleapp/controle/internal/model"
)

// Tasks returns all tasks in insertion order.
func (s *Store) Tasks(ctx context.Context) ([]model.Task, error) {
	return loadCollection[model.Task](ctx, s.db, CollectionTasks)
}

// GetTask returns a task by ID, or nil if absent.
func (s *Store) GetTask(ctx context.Context, id string) (*model.Task, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

// CreateTask creates a new task and persists the collection.
func (s *Store) CreateTask(ctx context.Context, title, description, deadline, status, priority string) (*model.Task, error) {
	if !model.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status %q", status)
	}
	if !model.ValidTaskPriority(priority) {
		return nil, fmt.Errorf("invalid task priority %q", priority)
	}

	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	task := model.Task{
		ID:          s.NewID(),
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Status:      status,
		Priority:    priority,
	}
	tasks = append(tasks, task)

	if err := saveCollection(ctx, s.db, CollectionTasks, tasks); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates all of a task's fields.
func (s *Store) UpdateTask(ctx context.Context, id, title, description, deadline, status, priority string) (*model.Task, error) {
	if !model.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status %q", status)
	}
	if !model.ValidTaskPriority(priority) {
		return nil, fmt.Errorf("invalid task priority %q", priority)
	}

	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Title = title
		tasks[i].Description = description
		tasks[i].Deadline = deadline
		tasks[i].Status = status
		tasks[i].Priority = priority
		if err := saveCollection(ctx, s.db, CollectionTasks, tasks); err != nil {
			return nil, err
		}
		return &tasks[i], nil
	}
	return nil, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
}

// SetTaskStatus changes only a task's status (the inline control on
// the tasks page).
func (s *Store) SetTaskStatus(ctx context.Context, id, status string) (*model.Task, error) {
	if !model.ValidTaskStatus(status) {
		return nil, fmt.Errorf("invalid task status %q", status)
	}

	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = status
		if err := saveCollection(ctx, s.db, CollectionTasks, tasks); err != nil {
			return nil, err
		}
		return &tasks[i], nil
	}
	return nil, fmt.Errorf("updating task %s: %w", id, ErrNotFound)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return saveCollection(ctx, s.db, CollectionTasks, tasks)
		}
	}
	return fmt.Errorf("deleting task %s: %w", id, ErrNotFound)
}

// FilterTasks narrows tasks by status.
func FilterTasks(tasks []model.Task, status string) []model.Task {
	if status == "" || status == "all" {
		return tasks
	}
	var out []model.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
