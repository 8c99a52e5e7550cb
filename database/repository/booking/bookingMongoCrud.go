// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lipo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document.
func (repo *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// GetByConfirmationCode retrieves a booking by its human-shareable code.
func (repo *mongoBookingRepo) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"confirmation_code": code}).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// statusTimestampField maps a target status to the transition timestamp it
// stamps on the document.
func statusTimestampField(status models.BookingStatus) string {
	switch status {
	case models.BookingConfirmed:
		return "confirmed_at"
	case models.BookingInProgress:
		return "started_at"
	case models.BookingCompleted:
		return "completed_at"
	case models.BookingCancelled:
		return "cancelled_at"
	default:
		return ""
	}
}

// UpdateStatus moves a booking to the given status and records the transition
// timestamp. Legality of the transition is the service layer's concern.
func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, notes string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": at,
	}
	if field := statusTimestampField(status); field != "" {
		set[field] = at
	}
	if notes != "" {
		set["provider_notes"] = notes
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ExpirePending cancels pending bookings created before the cutoff. Returns
// the number of bookings swept.
func (repo *mongoBookingRepo) ExpirePending(ctx context.Context, createdBefore time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"status":     models.BookingPending,
		"created_at": bson.M{"$lt": createdBefore},
	}
	update := bson.M{"$set": bson.M{
		"status":       models.BookingCancelled,
		"cancelled_at": now,
		"updated_at":   now,
	}}
	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error expiring pending bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
