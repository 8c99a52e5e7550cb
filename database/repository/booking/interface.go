// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"lipo/database"
	"lipo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence surface for bookings and their
// attached messages and reviews. Bookings are never deleted; terminal
// lifecycle states are recorded through UpdateStatus.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error)
	List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus, notes string, at time.Time) error
	ActiveOnDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	// InRange returns a provider's bookings in any status with booking_date
	// in [dateFrom, dateTo]; callers filter active status themselves.
	InRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error)
	ExpirePending(ctx context.Context, createdBefore time.Time) (int64, error)

	AddMessage(ctx context.Context, msg *models.BookingMessage) error
	ListMessages(ctx context.Context, bookingID string) ([]models.BookingMessage, error)
	AddReview(ctx context.Context, review *models.BookingReview) error
	GetReview(ctx context.Context, bookingID string) (*models.BookingReview, error)

	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll        *mongo.Collection
	messageColl *mongo.Collection
	reviewColl  *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:        db.Collection("bookings"),
		messageColl: db.Collection("booking_messages"),
		reviewColl:  db.Collection("booking_reviews"),
	}
}
