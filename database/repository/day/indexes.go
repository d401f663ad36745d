// File: database/repository/day/indexes.go
package dayRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the days collection.
func (r *mongoDayRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Day numbers are unique within a group.
		{
			Keys:    bson.D{{Key: "groupId", Value: 1}, {Key: "dayNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("group_daynumber_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create day indexes: %w", err)
	}
	return nil
}
