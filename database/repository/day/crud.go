// File: database/repository/day/crud.go
package dayRepo

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
// token, or the day no longer exists.
var ErrVersionMismatch = errors.New("day version mismatch")

func (r *mongoDayRepo) Create(ctx context.Context, day models.CampDay) (*models.CampDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if day.ID == "" {
		day.ID = uuid.New().String()
	}
	day.Version = uuid.New().String()

	if _, err := r.coll.InsertOne(ctx, day); err != nil {
		return nil, fmt.Errorf("failed to insert day: %w", err)
	}
	return &day, nil
}

func (r *mongoDayRepo) GetByID(ctx context.Context, dayID string) (*models.CampDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var day models.CampDay
	if err := r.coll.FindOne(ctx, bson.M{"id": dayID}).Decode(&day); err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *mongoDayRepo) ListByGroup(ctx context.Context, groupID string) ([]models.CampDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayNumber", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"groupId": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []models.CampDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (r *mongoDayRepo) CountByGroup(ctx context.Context, groupID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"groupId": groupID})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// UpdateWithVersion applies patch only if the stored version still equals
// expectedVersion, rotating the token to newVersion in the same write.
func (r *mongoDayRepo) UpdateWithVersion(ctx context.Context, dayID string, patch models.DayPatch, expectedVersion, newVersion string) (*models.CampDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"version": newVersion}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Theme != nil {
		set["theme"] = *patch.Theme
	}

	filter := bson.M{"id": dayID, "version": expectedVersion}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var day models.CampDay
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVersionMismatch
		}
		return nil, fmt.Errorf("failed to update day: %w", err)
	}
	return &day, nil
}

func (r *mongoDayRepo) DeleteByID(ctx context.Context, dayID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": dayID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
