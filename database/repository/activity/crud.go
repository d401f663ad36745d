// File: database/repository/activity/crud.go
package activityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"campwise/models"
)

func (r *mongoActivityRepo) Create(ctx context.Context, act models.Activity) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if act.ID == "" {
		act.ID = uuid.New().String()
	}
	if act.Status == "" {
		act.Status = models.ActivityStatusIdea
	}
	if _, err := r.coll.InsertOne(ctx, act); err != nil {
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}
	return &act, nil
}

func (r *mongoActivityRepo) GetByID(ctx context.Context, activityID string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var act models.Activity
	if err := r.coll.FindOne(ctx, bson.M{"id": activityID}).Decode(&act); err != nil {
		return nil, err
	}
	return &act, nil
}
