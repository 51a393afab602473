package service

import (
	"context"
	"errors"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrTextRequired = errors.New("task text is required")
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService handles task business logic. Every method takes the owner id
// resolved by the auth middleware; a caller can never reach another user's
// tasks, only its own or a not-found answer.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all tasks owned by the given user.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Create inserts a new incomplete task for the given owner. Whitespace-only
// text is rejected before reaching the store.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.CreateTaskRequest) (model.Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return model.Task{}, ErrTextRequired
	}

	task := model.Task{
		UserID:    ownerID,
		Text:      text,
		Completed: false,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return model.Task{}, err
	}

	return task, nil
}

// Update changes the text and completed flag of a task owned by the given
// user. A task that does not exist, or belongs to another user, reports
// ErrTaskNotFound either way.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req model.UpdateTaskRequest) error {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return ErrTextRequired
	}

	err := s.repo.Update(ctx, ownerID, taskID, text, req.Completed)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// Delete removes a task owned by the given user, with the same not-found
// semantics as Update. Deleting an already deleted task reports
// ErrTaskNotFound rather than succeeding silently.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	err := s.repo.Delete(ctx, ownerID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}
