package handlers

import (
	"net/http"
	"strings"

	"lipo/models"
	"lipo/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.CreateBooking(c.Request.Context(), actorFromContext(c), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Service.GetBookingByID(c.Request.Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetBookingByCode handles GET /api/bookings/code/:code.
func (h *BookingHandler) GetBookingByCode(c *gin.Context) {
	bk, err := h.Service.GetBookingByConfirmationCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListBookings handles GET /api/bookings. Filters arrive as query params:
// status (comma-separated), date_from, date_to, listing_id.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filters := models.BookingFilters{
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
		ListingID: c.Query("listing_id"),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filters.Statuses = append(filters.Statuses, models.BookingStatus(strings.TrimSpace(s)))
		}
	}

	bookings, err := h.Service.GetBookings(c.Request.Context(), actorFromContext(c), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
		Notes  string               `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Service.UpdateBookingStatus(c.Request.Context(), actorFromContext(c), c.Param("id"), input.Status, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}
