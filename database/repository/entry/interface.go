// File: database/repository/entry/interface.go
package entryRepo

import (
	"context"

	"campwise/database"
	"campwise/models"
	"campwise/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// EntryRepository persists schedule entries. Updates are plain, without a
// version precondition: time-range edits arrive as debounced patches and the
// last write wins.
type EntryRepository interface {
	Create(ctx context.Context, entry models.ScheduleEntry) (*models.ScheduleEntry, error)
	GetByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error)
	ListByDay(ctx context.Context, dayID string) ([]models.ScheduleEntry, error)
	Update(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error)
	SetOrders(ctx context.Context, orders map[string]int) error
	DeleteByID(ctx context.Context, entryID string) error
}

type mongoEntryRepo struct {
	coll *mongo.Collection
}

// NewMongoEntryRepo constructs a new MongoDB EntryRepository.
func NewMongoEntryRepo() EntryRepository {
	r := &mongoEntryRepo{coll: database.DB().Collection("schedule_entries")}
	if err := r.EnsureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("entry repo: failed to ensure indexes: %v", err)
	}
	return r
}
