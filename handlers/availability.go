package handlers

import (
	"net/http"
	"strconv"

	"lipo/models"
	"lipo/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability engine over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(service availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: service, Logger: logger}
}

// GetAvailability handles GET /api/providers/:id/availability.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	rows, err := h.Service.GetProviderAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": rows})
}

// SetAvailability handles PUT /api/providers/:id/availability. Providers may
// only replace their own template.
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	providerID := c.Param("id")
	if actorFromContext(c).ID != providerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "providers can only manage their own availability"})
		return
	}

	var input struct {
		Availability []models.ProviderAvailability `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetProviderAvailability(c.Request.Context(), providerID, input.Availability); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// AddOverride handles POST /api/providers/:id/overrides.
func (h *AvailabilityHandler) AddOverride(c *gin.Context) {
	providerID := c.Param("id")
	if actorFromContext(c).ID != providerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "providers can only manage their own overrides"})
		return
	}

	var override models.AvailabilityOverride
	if err := c.ShouldBindJSON(&override); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	override.ProviderID = providerID

	if err := h.Service.AddOverride(c.Request.Context(), &override); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, override)
}

// RemoveOverride handles DELETE /api/providers/:id/overrides/:overrideID.
func (h *AvailabilityHandler) RemoveOverride(c *gin.Context) {
	providerID := c.Param("id")
	if actorFromContext(c).ID != providerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "providers can only manage their own overrides"})
		return
	}

	if err := h.Service.RemoveOverride(c.Request.Context(), providerID, c.Param("overrideID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// GetSlots handles GET /api/providers/:id/slots?date=YYYY-MM-DD&duration=60.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	duration, _ := strconv.Atoi(c.DefaultQuery("duration", "0"))

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), c.Param("id"), date, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetCalendar handles GET /api/providers/:id/calendar?year=2025&month=9.
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required"})
		return
	}

	cal, err := h.Service.GetCalendarData(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}
