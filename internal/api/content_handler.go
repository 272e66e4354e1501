package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type styleRequest struct {
	Occasion string `json:"occasion" binding:"required"`
	Style    string `json:"style" binding:"required"`
}

// styleSuggestion handles POST /api/assistant/style. Always answers 200: the
// content service degrades to a static message when generation fails.
func (h *Handlers) styleSuggestion(c *gin.Context) {
	var req styleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "occasion and style are required"})
		return
	}

	suggestion := h.content.StyleSuggestion(c.Request.Context(), req.Occasion, req.Style)
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// serviceDescription handles GET /api/services/:id/description
func (h *Handlers) serviceDescription(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	svc, err := h.catalog.GetService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	description := h.content.ServiceDescription(c.Request.Context(), svc.Name)
	c.JSON(http.StatusOK, gin.H{"service": svc.Name, "description": description})
}

// bookingReminder handles POST /api/admin/bookings/:id/reminder
func (h *Handlers) bookingReminder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	reminder := h.content.BookingReminder(c.Request.Context(), booking)
	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}
