package transform

import (
	"errors"

	"go_todo_api/model"
)

var (
	ErrNoID    = errors.New("wrong id")
	ErrNoTitle = errors.New("empty title")
)

// NewTitle extracts the title of a creation request.
func NewTitle(dto model.TaskDTO) (string, error) {
	if dto.Title == nil {
		return "", ErrNoTitle
	}

	return *dto.Title, nil
}

// DtoToTask converts a request that refers to an existing task.
func DtoToTask(dto model.TaskDTO) (model.Task, error) {
	if dto.ID == nil {
		return model.Task{}, ErrNoID
	}

	if dto.Title == nil {
		return model.Task{}, ErrNoTitle
	}

	return model.Task{
		ID:        *dto.ID,
		Title:     *dto.Title,
		Completed: dto.Completed,
	}, nil
}

func DtoToID(dto model.TaskDTO) (int64, error) {
	if dto.ID == nil {
		return 0, ErrNoID
	}

	return *dto.ID, nil
}

func TasksToDto(tasks []model.Task) []model.TaskDTO {
	dtos := make([]model.TaskDTO, 0, len(tasks))

	for _, task := range tasks {
		dtos = append(dtos, TaskToDto(task))
	}

	return dtos
}

func TaskToDto(task model.Task) model.TaskDTO {
	id := task.ID
	title := task.Title

	return model.TaskDTO{
		ID:        &id,
		Title:     &title,
		Completed: task.Completed,
	}
}
