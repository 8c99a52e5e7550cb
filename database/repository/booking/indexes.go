// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the booking collections.
func (repo *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookingModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Confirmation codes are globally unique and looked up directly
		{
			Keys:    bson.D{{Key: "confirmation_code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_confirmation_code"),
		},
		// Compound index for provider calendar queries
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "booking_date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("provider_date_status_idx"),
		},
		// Customer dashboard listing
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}, {Key: "booking_date", Value: -1}},
			Options: options.Index().SetName("customer_date_idx"),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, bookingModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	messageModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("booking_created_idx"),
		},
	}
	if _, err := repo.messageColl.Indexes().CreateMany(ctx, messageModels); err != nil {
		return fmt.Errorf("failed to create booking message indexes: %w", err)
	}

	reviewModels := []mongo.IndexModel{
		// One review per booking
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_review"),
		},
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("provider_created_idx"),
		},
	}
	if _, err := repo.reviewColl.Indexes().CreateMany(ctx, reviewModels); err != nil {
		return fmt.Errorf("failed to create booking review indexes: %w", err)
	}
	return nil
}
