// File: database/repository/availability/overrides.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"lipo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddOverride stores a date-specific availability exception.
func (repo *mongoAvailabilityRepo) AddOverride(ctx context.Context, override *models.AvailabilityOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if override.ID == "" {
		override.ID = uuid.New().String()
	}
	if override.CreatedAt.IsZero() {
		override.CreatedAt = time.Now()
	}
	if _, err := repo.overrideColl.InsertOne(ctx, override); err != nil {
		return fmt.Errorf("error adding availability override: %w", err)
	}
	return nil
}

// RemoveOverride deletes one override owned by the provider.
func (repo *mongoAvailabilityRepo) RemoveOverride(ctx context.Context, providerID, overrideID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.overrideColl.DeleteOne(ctx, bson.M{"id": overrideID, "provider_id": providerID})
	if err != nil {
		return fmt.Errorf("error removing availability override: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListOverrides returns the provider's overrides with date in
// [dateFrom, dateTo], newest-created last so the resolution rule
// (latest-created wins per date) holds by position.
func (repo *mongoAvailabilityRepo) ListOverrides(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.AvailabilityOverride, error) {
	return repo.findOverrides(ctx, bson.M{
		"provider_id": providerID,
		"date":        bson.M{"$gte": dateFrom, "$lte": dateTo},
	})
}

// OverridesOnDate returns the provider's overrides for one date.
func (repo *mongoAvailabilityRepo) OverridesOnDate(ctx context.Context, providerID, date string) ([]models.AvailabilityOverride, error) {
	return repo.findOverrides(ctx, bson.M{
		"provider_id": providerID,
		"date":        date,
	})
}

func (repo *mongoAvailabilityRepo) findOverrides(ctx context.Context, filter bson.M) ([]models.AvailabilityOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "created_at", Value: 1},
	})
	cursor, err := repo.overrideColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability overrides: %w", err)
	}
	defer cursor.Close(ctx)

	var overrides []models.AvailabilityOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, fmt.Errorf("error decoding availability overrides: %w", err)
	}
	return overrides, nil
}
