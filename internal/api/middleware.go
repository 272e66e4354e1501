package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminPasswordHeader = "X-Admin-Password"

// adminAuth guards the reserved area with the shared staff password stored in
// settings. Constant-time compare; this is deliberately not a user system.
func (h *Handlers) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := h.bookings.Settings(c.Request.Context())
		if err != nil {
			h.logger.Error("failed to load settings for admin auth", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		provided := c.GetHeader(adminPasswordHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(settings.AdminPassword)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
			return
		}

		c.Next()
	}
}
