package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// listRewards handles GET /api/admin/rewards
func (h *Handlers) listRewards(c *gin.Context) {
	rewards, err := h.rewards.ListRewards(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// createReward handles POST /api/admin/rewards
func (h *Handlers) createReward(c *gin.Context) {
	var req model.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reward, err := h.rewards.CreateReward(c.Request.Context(), &req, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reward)
}

// updateRewardLimits handles PATCH /api/admin/rewards/:id/limits
func (h *Handlers) updateRewardLimits(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reward id"})
		return
	}

	var req model.UpdateRewardLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reward, err := h.rewards.UpdateLimits(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

// deleteReward handles DELETE /api/admin/rewards/:id. The exempt fallback
// cannot be deleted.
func (h *Handlers) deleteReward(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reward id"})
		return
	}

	if err := h.rewards.DeleteReward(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reward deleted"})
}
