package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostMessage handles POST /api/bookings/:id/messages.
func (h *BookingHandler) PostMessage(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg, err := h.Service.PostMessage(c.Request.Context(), actorFromContext(c), c.Param("id"), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /api/bookings/:id/messages.
func (h *BookingHandler) ListMessages(c *gin.Context) {
	messages, err := h.Service.ListMessages(c.Request.Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// AddReview handles POST /api/bookings/:id/review.
func (h *BookingHandler) AddReview(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	review, err := h.Service.AddReview(c.Request.Context(), actorFromContext(c), c.Param("id"), input.Rating, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
