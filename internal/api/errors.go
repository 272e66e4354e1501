package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domerr "salon-booking/pkg/errors"
)

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic 500.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domerr.ErrBookingNotFound),
		errors.Is(err, domerr.ErrServiceNotFound),
		errors.Is(err, domerr.ErrStylistNotFound),
		errors.Is(err, domerr.ErrRewardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domerr.ErrInvalidSlot),
		errors.Is(err, domerr.ErrStylistUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domerr.ErrSlotTaken),
		errors.Is(err, domerr.ErrDispenseConflict),
		errors.Is(err, domerr.ErrRewardProtected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domerr.ErrAccountingLocked):
		c.JSON(http.StatusLocked, gin.H{"error": err.Error()})

	case errors.Is(err, domerr.ErrNothingToSettle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domerr.ErrNoFallbackReward):
		// Operator problem, not a client one.
		h.logger.Error("dispensation halted", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		h.logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
