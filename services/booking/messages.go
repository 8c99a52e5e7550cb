// File: services/booking/messages.go
package booking

import (
	"context"
	"strings"
	"time"

	"lipo/models"
	"lipo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostMessage appends a chat message to the booking thread and fans it out on
// the booking's message channel.
func (svc *DefaultBookingService) PostMessage(ctx context.Context, actor Actor, bookingID, content string) (*models.BookingMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, NewValidationError("message content is empty")
	}

	bk, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking %s not found", bookingID)
	}
	if !isParty(actor, bk) {
		return nil, NewPermissionError("actor %s is not a party to booking %s", actor.ID, bookingID)
	}

	msg := &models.BookingMessage{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		SenderID:   actor.ID,
		SenderRole: actor.Role,
		Content:    content,
		CreatedAt:  time.Now().In(svc.location()),
	}
	if err := svc.Repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}

	if svc.Events != nil {
		event := models.BookingEvent{
			Type:      "message",
			BookingID: bookingID,
			Message:   msg,
			At:        msg.CreatedAt,
		}
		if err := svc.Events.PublishBookingMessage(ctx, event); err != nil {
			utils.GetLogger().Error("message fan-out failed",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return msg, nil
}

// ListMessages returns the booking's chat thread in order.
func (svc *DefaultBookingService) ListMessages(ctx context.Context, actor Actor, bookingID string) ([]models.BookingMessage, error) {
	bk, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking %s not found", bookingID)
	}
	if !isParty(actor, bk) {
		return nil, NewPermissionError("actor %s is not a party to booking %s", actor.ID, bookingID)
	}
	return svc.Repo.ListMessages(ctx, bookingID)
}

// AddReview records the customer's review once the booking is completed.
func (svc *DefaultBookingService) AddReview(ctx context.Context, actor Actor, bookingID string, rating int, comment string) (*models.BookingReview, error) {
	if actor.Role != RoleCustomer {
		return nil, NewPermissionError("only the customer can review a booking")
	}
	if rating < 1 || rating > 5 {
		return nil, NewValidationError("rating must be in 1..5, got %d", rating)
	}

	bk, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking %s not found", bookingID)
	}
	if bk.CustomerID != actor.ID {
		return nil, NewPermissionError("actor %s is not the customer on booking %s", actor.ID, bookingID)
	}
	if bk.Status != models.BookingCompleted {
		return nil, NewTransitionError("booking %s is %s, only completed bookings can be reviewed", bookingID, bk.Status)
	}
	if _, err := svc.Repo.GetReview(ctx, bookingID); err == nil {
		return nil, NewConflictError("booking %s already has a review", bookingID)
	}

	review := &models.BookingReview{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		ProviderID: bk.ProviderID,
		CustomerID: actor.ID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().In(svc.location()),
	}
	if err := svc.Repo.AddReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
