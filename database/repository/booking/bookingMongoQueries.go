// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lipo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeStatuses are the statuses that still hold their time window.
var activeStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingInProgress,
}

// List returns bookings matching the filters, newest first by booking date
// then start time. An empty filter returns the full accessible set.
func (repo *mongoBookingRepo) List(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if len(filters.Statuses) > 0 {
		filter["status"] = bson.M{"$in": filters.Statuses}
	}
	if filters.ProviderID != "" {
		filter["provider_id"] = filters.ProviderID
	}
	if filters.CustomerID != "" {
		filter["customer_id"] = filters.CustomerID
	}
	if filters.ListingID != "" {
		filter["listing_id"] = filters.ListingID
	}
	dateRange := bson.M{}
	if filters.DateFrom != "" {
		dateRange["$gte"] = filters.DateFrom
	}
	if filters.DateTo != "" {
		dateRange["$lte"] = filters.DateTo
	}
	if len(dateRange) > 0 {
		filter["booking_date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "booking_date", Value: -1},
		{Key: "start_time", Value: -1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ActiveOnDate returns the bookings that still hold a window on the given
// date for the provider, ordered by start time.
func (repo *mongoBookingRepo) ActiveOnDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return repo.active(ctx, bson.M{
		"provider_id":  providerID,
		"booking_date": date,
	})
}

// InRange returns a provider's bookings in every status with booking_date in
// [dateFrom, dateTo], ordered by date then start time. Used by the calendar
// assembly to fetch a whole month in one query; cancelled and disputed
// bookings stay visible on the day view even though they hold no slot.
func (repo *mongoBookingRepo) InRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id":  providerID,
		"booking_date": bson.M{"$gte": dateFrom, "$lte": dateTo},
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "booking_date", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings in range: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings in range: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) active(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter["status"] = bson.M{"$in": activeStatuses}
	opts := options.Find().SetSort(bson.D{
		{Key: "booking_date", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding active bookings: %w", err)
	}
	return bookings, nil
}
