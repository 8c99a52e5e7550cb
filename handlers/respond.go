package handlers

import (
	"errors"
	"net/http"

	"lipo/middleware"
	"lipo/services/availability"
	"lipo/services/booking"

	"github.com/gin-gonic/gin"
)

// actorFromContext reads the authenticated actor the JWT middleware stored.
func actorFromContext(c *gin.Context) booking.Actor {
	return booking.Actor{
		ID:   c.GetString(middleware.ContextActorID),
		Role: c.GetString(middleware.ContextActorRole),
	}
}

// respondError maps service errors onto HTTP statuses. Tagged booking errors
// carry their own classification; availability validation failures are bad
// requests; anything else is opaque and internal.
func respondError(c *gin.Context, err error) {
	var ve *availability.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	switch booking.ErrorCode(err) {
	case booking.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case booking.CodePermission:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case booking.CodeValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case booking.CodeUnavailable:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
