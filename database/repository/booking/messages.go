// File: database/repository/booking/messages.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lipo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddMessage appends a chat message to a booking's thread.
func (repo *mongoBookingRepo) AddMessage(ctx context.Context, msg *models.BookingMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := repo.messageColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("error adding booking message: %w", err)
	}
	return nil
}

// ListMessages returns a booking's messages in chronological order.
func (repo *mongoBookingRepo) ListMessages(ctx context.Context, bookingID string) ([]models.BookingMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := repo.messageColl.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing booking messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.BookingMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding booking messages: %w", err)
	}
	return messages, nil
}

// AddReview stores a customer review. The unique index on booking_id rejects
// a second review for the same booking.
func (repo *mongoBookingRepo) AddReview(ctx context.Context, review *models.BookingReview) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	if _, err := repo.reviewColl.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("error adding booking review: %w", err)
	}
	return nil
}

// GetReview fetches the review attached to a booking, if any.
func (repo *mongoBookingRepo) GetReview(ctx context.Context, bookingID string) (*models.BookingReview, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.BookingReview
	err := repo.reviewColl.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&review)
	if err != nil {
		return nil, fmt.Errorf("review not found: %w", err)
	}
	return &review, nil
}
