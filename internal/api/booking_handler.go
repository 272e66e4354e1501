package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// createBooking handles POST /api/bookings. Rejected with 423 while the
// accounting gate is locked, before any state is written.
func (h *Handlers) createBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), &req, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// revealBooking handles POST /api/bookings/:id/reveal. Called when the client
// finishes the scratch interaction; safe to retry.
func (h *Handlers) revealBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	outcome, err := h.rewards.RevealBooking(c.Request.Context(), id, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

// getBooking handles GET /api/bookings/:reference
func (h *Handlers) getBooking(c *gin.Context) {
	booking, err := h.bookings.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// availability handles GET /api/availability?date=YYYY-MM-DD&stylist_id=...
func (h *Handlers) availability(c *gin.Context) {
	date := c.Query("date")
	stylistID := c.Query("stylist_id")
	if date == "" || stylistID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and stylist_id are required"})
		return
	}

	slots, err := h.bookings.Availability(c.Request.Context(), date, stylistID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// listPendingBookings handles GET /api/admin/bookings
func (h *Handlers) listPendingBookings(c *gin.Context) {
	bookings, err := h.bookings.ListPending(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// accountingStatus handles GET /api/accounting and /api/admin/accounting
func (h *Handlers) accountingStatus(c *gin.Context) {
	status, err := h.bookings.AccountingStatus(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// settle handles POST /api/admin/settlement
func (h *Handlers) settle(c *gin.Context) {
	closure, err := h.bookings.Settle(c.Request.Context(), time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, closure)
}

// listClosures handles GET /api/admin/closures
func (h *Handlers) listClosures(c *gin.Context) {
	closures, err := h.bookings.ListClosures(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, closures)
}

// updateSettings handles PUT /api/admin/settings
func (h *Handlers) updateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ThresholdCents != nil && *req.ThresholdCents <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be positive"})
		return
	}
	if req.AdminPassword != nil && *req.AdminPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password cannot be empty"})
		return
	}

	settings, err := h.bookings.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
