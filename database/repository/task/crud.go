// File: database/repository/task/crud.go
package taskRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campwise/models"
)

// ErrVersionMismatch is returned when an update presents a stale version
// token, or the task no longer exists.
var ErrVersionMismatch = errors.New("task version mismatch")

func (r *mongoTaskRepo) Create(ctx context.Context, task models.Task) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.Version = uuid.New().String()

	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return &task, nil
}

func (r *mongoTaskRepo) GetByID(ctx context.Context, taskID string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task models.Task
	if err := r.coll.FindOne(ctx, bson.M{"id": taskID}).Decode(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *mongoTaskRepo) ListByGroup(ctx context.Context, groupID string) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"groupId": groupID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *mongoTaskRepo) UpdateWithVersion(ctx context.Context, taskID string, patch models.TaskPatch, expectedVersion, newVersion string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"version": newVersion}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Done != nil {
		set["done"] = *patch.Done
	}

	filter := bson.M{"id": taskID, "version": expectedVersion}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVersionMismatch
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}
