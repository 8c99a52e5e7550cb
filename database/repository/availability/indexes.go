// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability collections.
func (repo *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	templateModels := []mongo.IndexModel{
		// One template row per (provider, weekday)
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "day_of_week", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider_weekday"),
		},
	}
	if _, err := repo.templateColl.Indexes().CreateMany(ctx, templateModels); err != nil {
		return fmt.Errorf("failed to create availability template indexes: %w", err)
	}

	overrideModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("provider_date_idx"),
		},
	}
	if _, err := repo.overrideColl.Indexes().CreateMany(ctx, overrideModels); err != nil {
		return fmt.Errorf("failed to create availability override indexes: %w", err)
	}
	return nil
}
