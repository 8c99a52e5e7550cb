package handlers

import (
	"context"
	"encoding/json"
	"io"

	"lipo/services/booking"
	"lipo/services/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RealtimeHandler streams per-booking events to clients over SSE.
type RealtimeHandler struct {
	Hub     *realtime.Hub
	Booking booking.BookingService
	Logger  *zap.Logger
}

// NewRealtimeHandler constructs a RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub, bookingSvc booking.BookingService, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub, Booking: bookingSvc, Logger: logger}
}

// StreamBookingUpdates handles GET /api/bookings/:id/events.
func (h *RealtimeHandler) StreamBookingUpdates(c *gin.Context) {
	h.stream(c, h.Hub.SubscribeToBookingUpdates)
}

// StreamBookingMessages handles GET /api/bookings/:id/messages/events.
func (h *RealtimeHandler) StreamBookingMessages(c *gin.Context) {
	h.stream(c, h.Hub.SubscribeToBookingMessages)
}

func (h *RealtimeHandler) stream(c *gin.Context, subscribe func(ctx context.Context, bookingID string) (*realtime.Subscription, error)) {
	bookingID := c.Param("id")

	// Only parties to the booking may listen in.
	if _, err := h.Booking.GetBookingByID(c.Request.Context(), actorFromContext(c), bookingID); err != nil {
		respondError(c, err)
		return
	}

	sub, err := subscribe(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	c.Stream(func(w io.Writer) bool {
		event, ok := <-sub.Events()
		if !ok {
			return false
		}
		payload, err := json.Marshal(event)
		if err != nil {
			h.Logger.Warn("failed to encode realtime event", zap.Error(err))
			return true
		}
		c.SSEvent(event.Type, string(payload))
		return true
	})
}
