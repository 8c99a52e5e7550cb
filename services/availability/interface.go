// File: services/availability/interface.go
package availability

import (
	"context"
	"time"

	availabilityRepo "lipo/database/repository/availability"
	bookingRepo "lipo/database/repository/booking"
	"lipo/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService owns the availability engine: the recurring weekly
// template, date overrides, slot generation and calendar assembly.
type AvailabilityService interface {
	GetProviderAvailability(ctx context.Context, providerID string) ([]models.ProviderAvailability, error)
	SetProviderAvailability(ctx context.Context, providerID string, rows []models.ProviderAvailability) error
	AddOverride(ctx context.Context, override *models.AvailabilityOverride) error
	RemoveOverride(ctx context.Context, providerID, overrideID string) error

	// GetAvailableSlots buckets the provider's working window on the given
	// date into fixed-size slots, minus breaks, overrides and active
	// bookings. slotMinutes <= 0 falls back to the configured default.
	GetAvailableSlots(ctx context.Context, providerID, date string, slotMinutes int) ([]models.AvailableSlot, error)

	// CheckProviderAvailability reports whether [startTime, endTime) on the
	// given date is fully bookable.
	CheckProviderAvailability(ctx context.Context, providerID, date, startTime, endTime string) (bool, error)

	// GetCalendarData assembles the per-day view models for one month.
	GetCalendarData(ctx context.Context, providerID string, year, month int) (*models.CalendarMonth, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo        availabilityRepo.AvailabilityRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client  // optional weekly-template cache
	SlotMinutes int            // default slot duration
	Location    *time.Location // provider-local wall clock
}

func (s *DefaultAvailabilityService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s *DefaultAvailabilityService) slotMinutes(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.SlotMinutes > 0 {
		return s.SlotMinutes
	}
	return 60
}
