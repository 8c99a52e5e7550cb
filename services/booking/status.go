// File: services/booking/status.go
package booking

import (
	"context"
	"time"

	"lipo/models"
)

// legalTransitions is the authoritative booking state machine. Completed,
// cancelled and disputed are terminal.
var legalTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending: {
		models.BookingConfirmed,
		models.BookingCancelled,
		models.BookingDisputed,
	},
	models.BookingConfirmed: {
		models.BookingInProgress,
		models.BookingCancelled,
		models.BookingDisputed,
	},
	models.BookingInProgress: {
		models.BookingCompleted,
	},
}

// CanTransition reports whether the state machine allows from → to.
func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// providerOnlyTransitions are the lifecycle moves only the booked provider
// may make. Either party may cancel or open a dispute.
var providerOnlyTransitions = map[models.BookingStatus]bool{
	models.BookingConfirmed:  true,
	models.BookingInProgress: true,
	models.BookingCompleted:  true,
}

// UpdateBookingStatus applies one lifecycle transition. The transition table
// and the actor's permission are enforced here, the transition timestamp is
// recorded, and a realtime update is published.
func (svc *DefaultBookingService) UpdateBookingStatus(ctx context.Context, actor Actor, bookingID string, newStatus models.BookingStatus, notes string) (*models.Booking, error) {
	bk, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking %s not found", bookingID)
	}
	if !isParty(actor, bk) {
		return nil, NewPermissionError("actor %s is not a party to booking %s", actor.ID, bookingID)
	}
	if providerOnlyTransitions[newStatus] && actor.Role != RoleProvider {
		return nil, NewPermissionError("only the provider can move a booking to %s", newStatus)
	}
	if !CanTransition(bk.Status, newStatus) {
		return nil, NewTransitionError("cannot move booking from %s to %s", bk.Status, newStatus)
	}

	at := time.Now().In(svc.location())
	if err := svc.Repo.UpdateStatus(ctx, bookingID, newStatus, notes, at); err != nil {
		return nil, err
	}

	bk.Status = newStatus
	bk.UpdatedAt = at
	if notes != "" {
		bk.ProviderNotes = notes
	}
	switch newStatus {
	case models.BookingConfirmed:
		bk.ConfirmedAt = &at
	case models.BookingInProgress:
		bk.StartedAt = &at
	case models.BookingCompleted:
		bk.CompletedAt = &at
	case models.BookingCancelled:
		bk.CancelledAt = &at
	}

	svc.publish(ctx, models.BookingEvent{
		Type:      "status_changed",
		BookingID: bk.ID,
		Status:    newStatus,
		Booking:   bk,
		At:        at,
	})
	return bk, nil
}
