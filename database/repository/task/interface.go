// File: database/repository/task/interface.go
package taskRepo

import (
	"context"

	"campwise/database"
	"campwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TaskRepository persists group tasks with the same version-token discipline
// as days.
type TaskRepository interface {
	Create(ctx context.Context, task models.Task) (*models.Task, error)
	GetByID(ctx context.Context, taskID string) (*models.Task, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.Task, error)
	UpdateWithVersion(ctx context.Context, taskID string, patch models.TaskPatch, expectedVersion, newVersion string) (*models.Task, error)
}

type mongoTaskRepo struct {
	coll *mongo.Collection
}

// NewMongoTaskRepo constructs a new MongoDB TaskRepository.
func NewMongoTaskRepo() TaskRepository {
	return &mongoTaskRepo{coll: database.DB().Collection("tasks")}
}
