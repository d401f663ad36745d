// File: database/repository/group/interface.go
package groupRepo

import (
	"context"
	"fmt"
	"time"

	"campwise/database"
	"campwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GroupRepository persists the minimal group record the scheduler needs
// (id plus the overall camp date range).
type GroupRepository interface {
	Create(ctx context.Context, group models.Group) (*models.Group, error)
	GetByID(ctx context.Context, groupID string) (*models.Group, error)
}

type mongoGroupRepo struct {
	coll *mongo.Collection
}

// NewMongoGroupRepo constructs a new MongoDB GroupRepository.
func NewMongoGroupRepo() GroupRepository {
	return &mongoGroupRepo{coll: database.DB().Collection("groups")}
}

func (r *mongoGroupRepo) Create(ctx context.Context, group models.Group) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}
	return &group, nil
}

func (r *mongoGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var group models.Group
	if err := r.coll.FindOne(ctx, bson.M{"id": groupID}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}
