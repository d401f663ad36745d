// File: database/repository/entry/crud.go
package entryRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"campwise/models"
)

func (r *mongoEntryRepo) Create(ctx context.Context, entry models.ScheduleEntry) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert schedule entry: %w", err)
	}
	return &entry, nil
}

func (r *mongoEntryRepo) GetByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": entryID}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *mongoEntryRepo) ListByDay(ctx context.Context, dayID string) ([]models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "orderInDay", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"dayId": dayID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoEntryRepo) Update(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{}
	if patch.Start != nil {
		set["start"] = *patch.Start
	}
	if patch.End != nil {
		set["end"] = *patch.End
	}
	if patch.OrderInDay != nil {
		set["orderInDay"] = *patch.OrderInDay
	}
	if len(set) == 0 {
		return r.GetByID(ctx, entryID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var entry models.ScheduleEntry
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": entryID}, bson.M{"$set": set}, opts).Decode(&entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule entry: %w", err)
	}
	return &entry, nil
}

// SetOrders rewrites orderInDay for the given entries in one bulk write.
// Used when the service renumbers a day after a delete or an order collision.
func (r *mongoEntryRepo) SetOrders(ctx context.Context, orders map[string]int) error {
	if len(orders) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(orders))
	for id, ord := range orders {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": id}).
			SetUpdate(bson.M{"$set": bson.M{"orderInDay": ord}}))
	}
	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to renumber schedule entries: %w", err)
	}
	return nil
}

func (r *mongoEntryRepo) DeleteByID(ctx context.Context, entryID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": entryID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
