// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"lipo/database"
	"lipo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists a provider's recurring weekly template and
// its date-specific overrides.
type AvailabilityRepository interface {
	GetWeeklyTemplate(ctx context.Context, providerID string) ([]models.ProviderAvailability, error)
	// ReplaceWeeklyTemplate swaps the provider's full template atomically.
	// Either the new set is visible or the old one still is; a failure never
	// strands the provider with zero rows.
	ReplaceWeeklyTemplate(ctx context.Context, providerID string, rows []models.ProviderAvailability) error

	AddOverride(ctx context.Context, override *models.AvailabilityOverride) error
	RemoveOverride(ctx context.Context, providerID, overrideID string) error
	ListOverrides(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.AvailabilityOverride, error)
	OverridesOnDate(ctx context.Context, providerID, date string) ([]models.AvailabilityOverride, error)

	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	client       *mongo.Client
	templateColl *mongo.Collection
	overrideColl *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.DB()
	return &mongoAvailabilityRepo{
		client:       database.MongoClient,
		templateColl: db.Collection("provider_availability"),
		overrideColl: db.Collection("availability_overrides"),
	}
}
