// File: database/repository/activity/interface.go
package activityRepo

import (
	"context"

	"campwise/database"
	"campwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityRepository persists activities.
type ActivityRepository interface {
	Create(ctx context.Context, act models.Activity) (*models.Activity, error)
	GetByID(ctx context.Context, activityID string) (*models.Activity, error)
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo constructs a new MongoDB ActivityRepository.
func NewMongoActivityRepo() ActivityRepository {
	return &mongoActivityRepo{coll: database.DB().Collection("activities")}
}
