package todolist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"go_todo_api/model"
)

type fakeStorage struct {
	tasks  map[int64]model.Task
	nextID int64
	err    error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{tasks: map[int64]model.Task{}}
}

func (f *fakeStorage) GetTasks(ctx context.Context) ([]model.Task, error) {
	if f.err != nil {
		return nil, f.err
	}

	tasks := []model.Task{}
	for id := f.nextID; id > 0; id-- {
		if task, ok := f.tasks[id]; ok {
			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}

func (f *fakeStorage) GetTaskById(ctx context.Context, id int64) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}

	task, ok := f.tasks[id]
	if !ok {
		return model.Task{}, fmt.Errorf("selectTask failed: %w", sql.ErrNoRows)
	}

	return task, nil
}

func (f *fakeStorage) InsertTask(ctx context.Context, title string) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}

	f.nextID++
	task := model.Task{ID: f.nextID, Title: title}
	f.tasks[task.ID] = task

	return task, nil
}

func (f *fakeStorage) UpdateTask(ctx context.Context, task model.Task) error {
	if f.err != nil {
		return f.err
	}

	if _, ok := f.tasks[task.ID]; ok {
		f.tasks[task.ID] = task
	}

	return nil
}

func (f *fakeStorage) DeleteTask(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}

	delete(f.tasks, id)

	return nil
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	list := New(newFakeStorage())

	created, err := list.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Completed {
		t.Fatal("new task must not be completed")
	}

	found, err := list.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != created {
		t.Fatalf("found %+v, want %+v", found, created)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	list := New(newFakeStorage())

	_, err := list.FindByID(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByID_StorageErrorPassesThrough(t *testing.T) {
	storage := newFakeStorage()
	storage.err = errors.New("disk on fire")
	list := New(storage)

	_, err := list.FindByID(context.Background(), 1)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	list := New(newFakeStorage())

	created, err := list.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := list.Update(ctx, created.ID, "buy milk", true); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := list.Update(ctx, created.ID+1, "ghost", true); err != nil {
		t.Fatalf("Update missing: %v", err)
	}

	tasks, err := list.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed || tasks[0].Title != "buy milk" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	list := New(newFakeStorage())

	created, err := list.Create(ctx, "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := list.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := list.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}

	if _, err := list.FindByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
