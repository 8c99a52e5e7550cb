// File: services/booking/booking.go
package booking

import (
	"context"
	"time"

	"lipo/models"
	"lipo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the requested window against the provider's
// availability, prices the booking, and persists it as pending. The caller
// becomes the booking's customer.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, actor Actor, form models.BookingForm) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actor.Role != RoleCustomer {
		return nil, NewPermissionError("only customers can create bookings")
	}
	if form.DurationMinutes <= 0 {
		return nil, NewValidationError("duration_minutes must be positive, got %d", form.DurationMinutes)
	}
	if _, err := utils.ParseDate(form.BookingDate); err != nil {
		return nil, NewValidationError("%v", err)
	}
	start, err := utils.ParseClock(form.StartTime)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	end := start + form.DurationMinutes
	if end >= 24*60 {
		return nil, NewValidationError("booking window must end before midnight")
	}
	endTime := utils.FormatClock(end)

	// The availability check and the insert race without serialization: two
	// concurrent requests could both see the window free and both book it.
	// The lock holds from check through insert.
	if svc.Locks != nil {
		release, err := svc.Locks.Lock(ctx, form.ProviderID, form.BookingDate)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	ok, err := svc.Availability.CheckProviderAvailability(ctx, form.ProviderID, form.BookingDate, form.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewConflictError("provider %s is not available on %s from %s to %s",
			form.ProviderID, form.BookingDate, form.StartTime, endTime)
	}

	pricing := ComputePricing(form.HourlyRate, form.DurationMinutes, svc.ServiceFeeRate)
	now := time.Now().In(svc.location())
	bk := &models.Booking{
		ID:               uuid.New().String(),
		ListingID:        form.ListingID,
		ProviderID:       form.ProviderID,
		CustomerID:       actor.ID,
		BookingDate:      form.BookingDate,
		StartTime:        form.StartTime,
		EndTime:          endTime,
		DurationMinutes:  form.DurationMinutes,
		Status:           models.BookingPending,
		ConfirmationCode: NewConfirmationCode(),
		BasePrice:        pricing.BasePrice,
		ServiceFee:       pricing.ServiceFee,
		TotalAmount:      pricing.Total,
		Currency:         form.Currency,
		SpecialRequests:  form.SpecialRequests,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := svc.Repo.Create(ctx, bk); err != nil {
		return nil, err
	}

	// Side effects are best-effort: the booking stands even if payment
	// setup, fan-out or reminder scheduling fails.
	if svc.Payments != nil {
		intentID, err := svc.Payments.CreatePaymentIntent(ctx, bk)
		if err != nil {
			logger.Error("payment intent creation failed",
				zap.String("bookingID", bk.ID), zap.Error(err))
		} else {
			bk.PaymentIntentID = intentID
		}
	}
	svc.publish(ctx, models.BookingEvent{
		Type:      "created",
		BookingID: bk.ID,
		Status:    bk.Status,
		Booking:   bk,
		At:        now,
	})
	svc.scheduleReminder(bk, now)

	return bk, nil
}

// GetBookingByID fetches one booking; only its customer or provider may read it.
func (svc *DefaultBookingService) GetBookingByID(ctx context.Context, actor Actor, bookingID string) (*models.Booking, error) {
	bk, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking %s not found", bookingID)
	}
	if !isParty(actor, bk) {
		return nil, NewPermissionError("actor %s is not a party to booking %s", actor.ID, bookingID)
	}
	return bk, nil
}

// GetBookingByConfirmationCode looks up a booking by its shareable code. The
// code itself is the capability, so no party check applies.
func (svc *DefaultBookingService) GetBookingByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	bk, err := svc.Repo.GetByConfirmationCode(ctx, code)
	if err != nil {
		return nil, NewNotFoundError("no booking with confirmation code %s", code)
	}
	return bk, nil
}

// GetBookings lists bookings matching the filters, scoped to the actor's own
// side of the marketplace and ordered newest first.
func (svc *DefaultBookingService) GetBookings(ctx context.Context, actor Actor, filters models.BookingFilters) ([]models.Booking, error) {
	switch actor.Role {
	case RoleCustomer:
		filters.CustomerID = actor.ID
	case RoleProvider:
		filters.ProviderID = actor.ID
	default:
		return nil, NewPermissionError("unknown actor role %q", actor.Role)
	}
	return svc.Repo.List(ctx, filters)
}

func isParty(actor Actor, bk *models.Booking) bool {
	switch actor.Role {
	case RoleCustomer:
		return actor.ID == bk.CustomerID
	case RoleProvider:
		return actor.ID == bk.ProviderID
	default:
		return false
	}
}

func (svc *DefaultBookingService) publish(ctx context.Context, event models.BookingEvent) {
	if svc.Events == nil {
		return
	}
	if err := svc.Events.PublishBookingUpdate(ctx, event); err != nil {
		utils.GetLogger().Error("realtime publish failed",
			zap.String("bookingID", event.BookingID), zap.Error(err))
	}
}

func (svc *DefaultBookingService) scheduleReminder(bk *models.Booking, now time.Time) {
	if svc.Reminders == nil {
		return
	}
	day, err := utils.ParseDate(bk.BookingDate)
	if err != nil {
		return
	}
	startMin, err := utils.ParseClock(bk.StartTime)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(startMin) * time.Minute).Add(-svc.ReminderLead)
	if !fireAt.After(now) {
		return
	}
	if err := svc.Reminders.ScheduleReminder(bk, fireAt); err != nil {
		utils.GetLogger().Error("reminder scheduling failed",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}
}
