// File: services/task/task.go
package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	taskRepo "campwise/database/repository/task"
	"campwise/models"
)

// ErrVersionConflict signals a task update carrying a stale version token.
var ErrVersionConflict = errors.New("task was modified by a concurrent edit")

// TaskService manages group tasks under the same version-token discipline
// as camp days.
type TaskService interface {
	List(ctx context.Context, groupID string) ([]models.Task, error)
	Get(ctx context.Context, taskID string) (*models.Task, error)
	Update(ctx context.Context, taskID string, patch models.TaskPatch, version string) (*models.Task, error)
}

type DefaultTaskService struct {
	Repo taskRepo.TaskRepository
}

func (s *DefaultTaskService) List(ctx context.Context, groupID string) ([]models.Task, error) {
	tasks, err := s.Repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *DefaultTaskService) Get(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.Repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("task not found: %w", err)
	}
	return task, nil
}

func (s *DefaultTaskService) Update(ctx context.Context, taskID string, patch models.TaskPatch, version string) (*models.Task, error) {
	updated, err := s.Repo.UpdateWithVersion(ctx, taskID, patch, version, uuid.New().String())
	if err != nil {
		if errors.Is(err, taskRepo.ErrVersionMismatch) {
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}
