// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	bookingRepo "lipo/database/repository/booking"
	"lipo/models"
	"lipo/services/availability"
)

// Actor identifies who is performing a booking operation.
type Actor struct {
	ID   string
	Role string // "customer" or "provider"
}

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// BookingService owns the booking lifecycle: creation with availability and
// pricing, server-authoritative status transitions, queries, and per-booking
// messages and reviews.
type BookingService interface {
	CreateBooking(ctx context.Context, actor Actor, form models.BookingForm) (*models.Booking, error)
	GetBookingByID(ctx context.Context, actor Actor, bookingID string) (*models.Booking, error)
	GetBookingByConfirmationCode(ctx context.Context, code string) (*models.Booking, error)
	GetBookings(ctx context.Context, actor Actor, filters models.BookingFilters) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, actor Actor, bookingID string, newStatus models.BookingStatus, notes string) (*models.Booking, error)

	PostMessage(ctx context.Context, actor Actor, bookingID, content string) (*models.BookingMessage, error)
	ListMessages(ctx context.Context, actor Actor, bookingID string) ([]models.BookingMessage, error)
	AddReview(ctx context.Context, actor Actor, bookingID string, rating int, comment string) (*models.BookingReview, error)
}

// EventPublisher fans booking events out to the per-booking realtime
// channels.
type EventPublisher interface {
	PublishBookingUpdate(ctx context.Context, event models.BookingEvent) error
	PublishBookingMessage(ctx context.Context, event models.BookingEvent) error
}

// ReminderScheduler enqueues a reminder to fire ahead of the appointment.
type ReminderScheduler interface {
	ScheduleReminder(booking *models.Booking, fireAt time.Time) error
}

// PaymentHandler creates the server-side payment intent for a booking total.
type PaymentHandler interface {
	CreatePaymentIntent(ctx context.Context, booking *models.Booking) (string, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo           bookingRepo.BookingRepository
	Availability   availability.AvailabilityService
	Locks          SlotLocker        // optional, serializes creation per provider+date
	Events         EventPublisher    // optional
	Payments       PaymentHandler    // optional
	Reminders      ReminderScheduler // optional
	ServiceFeeRate float64
	ReminderLead   time.Duration
	Location       *time.Location
}

func (svc *DefaultBookingService) location() *time.Location {
	if svc.Location != nil {
		return svc.Location
	}
	return time.Local
}
