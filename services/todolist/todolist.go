package todolist

import (
	"context"
	"database/sql"
	"errors"

	"go_todo_api/model"
)

var ErrNotFound = errors.New("task not found")

type Storage interface {
	GetTasks(ctx context.Context) ([]model.Task, error)
	GetTaskById(ctx context.Context, id int64) (model.Task, error)
	InsertTask(ctx context.Context, title string) (model.Task, error)
	UpdateTask(ctx context.Context, task model.Task) error
	DeleteTask(ctx context.Context, id int64) error
}

type TodoList struct {
	storage Storage
}

func New(storage Storage) *TodoList {
	return &TodoList{
		storage: storage,
	}
}

// ListAll returns every task, newest id first.
func (t *TodoList) ListAll(ctx context.Context) ([]model.Task, error) {
	return t.storage.GetTasks(ctx)
}

// Create stores a new, not completed task.
func (t *TodoList) Create(ctx context.Context, title string) (model.Task, error) {
	return t.storage.InsertTask(ctx, title)
}

func (t *TodoList) FindByID(ctx context.Context, id int64) (model.Task, error) {
	task, err := t.storage.GetTaskById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}

	return task, err
}

// Update applies title and completed to an existing task; unknown ids are
// ignored.
func (t *TodoList) Update(ctx context.Context, id int64, title string, completed bool) error {
	return t.storage.UpdateTask(ctx, model.Task{
		ID:        id,
		Title:     title,
		Completed: completed,
	})
}

func (t *TodoList) Delete(ctx context.Context, id int64) error {
	return t.storage.DeleteTask(ctx, id)
}
