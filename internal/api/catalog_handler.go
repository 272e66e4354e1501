package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salon-booking/internal/model"
)

// listServices handles GET /api/services
func (h *Handlers) listServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// createService handles POST /api/admin/services
func (h *Handlers) createService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.catalog.CreateService(c.Request.Context(), &req, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// deleteService handles DELETE /api/admin/services/:id
func (h *Handlers) deleteService(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// listStylists handles GET /api/stylists
func (h *Handlers) listStylists(c *gin.Context) {
	stylists, err := h.catalog.ListStylists(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stylists)
}

// createStylist handles POST /api/admin/stylists
func (h *Handlers) createStylist(c *gin.Context) {
	var req model.UpsertStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stylist, err := h.catalog.CreateStylist(c.Request.Context(), &req, time.Now())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stylist)
}

// updateStylist handles PUT /api/admin/stylists/:id
func (h *Handlers) updateStylist(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stylist id"})
		return
	}

	var req model.UpsertStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	stylist, err := h.catalog.UpdateStylist(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stylist)
}

// deleteStylist handles DELETE /api/admin/stylists/:id
func (h *Handlers) deleteStylist(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stylist id"})
		return
	}

	if err := h.catalog.DeleteStylist(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "stylist deleted"})
}
