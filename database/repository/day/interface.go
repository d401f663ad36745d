// File: database/repository/day/interface.go
package dayRepo

import (
	"context"

	"campwise/database"
	"campwise/models"
	"campwise/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// DayRepository persists camp days. Update is a compare-and-swap on the
// version token: a write presenting a stale token matches nothing and
// reports ErrVersionMismatch.
type DayRepository interface {
	Create(ctx context.Context, day models.CampDay) (*models.CampDay, error)
	GetByID(ctx context.Context, dayID string) (*models.CampDay, error)
	ListByGroup(ctx context.Context, groupID string) ([]models.CampDay, error)
	CountByGroup(ctx context.Context, groupID string) (int, error)
	UpdateWithVersion(ctx context.Context, dayID string, patch models.DayPatch, expectedVersion, newVersion string) (*models.CampDay, error)
	DeleteByID(ctx context.Context, dayID string) error
}

type mongoDayRepo struct {
	coll *mongo.Collection
}

// NewMongoDayRepo constructs a new MongoDB DayRepository.
func NewMongoDayRepo() DayRepository {
	r := &mongoDayRepo{coll: database.DB().Collection("days")}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("day repo: failed to ensure indexes: %v", err)
	}
	return r
}
