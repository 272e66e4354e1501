package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-booking/internal/service"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	bookings *service.BookingService
	rewards  *service.RewardService
	catalog  *service.CatalogService
	content  *service.ContentService
	logger   *zap.Logger
}

// NewHandlers creates the API handler set
func NewHandlers(
	bookings *service.BookingService,
	rewards *service.RewardService,
	catalog *service.CatalogService,
	content *service.ContentService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		bookings: bookings,
		rewards:  rewards,
		catalog:  catalog,
		content:  content,
		logger:   logger,
	}
}

// SetupRouter wires all routes. Admin routes sit behind the shared staff
// password.
func SetupRouter(h *Handlers) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/services", h.listServices)
		api.GET("/services/:id/description", h.serviceDescription)
		api.GET("/stylists", h.listStylists)
		api.GET("/availability", h.availability)
		api.GET("/accounting", h.accountingStatus)

		api.POST("/bookings", h.createBooking)
		api.POST("/bookings/:id/reveal", h.revealBooking)
		api.GET("/bookings/:reference", h.getBooking)

		api.POST("/assistant/style", h.styleSuggestion)
	}

	admin := api.Group("/admin", h.adminAuth())
	{
		admin.GET("/bookings", h.listPendingBookings)
		admin.POST("/bookings/:id/reminder", h.bookingReminder)

		admin.GET("/accounting", h.accountingStatus)
		admin.POST("/settlement", h.settle)
		admin.GET("/closures", h.listClosures)

		admin.GET("/rewards", h.listRewards)
		admin.POST("/rewards", h.createReward)
		admin.PATCH("/rewards/:id/limits", h.updateRewardLimits)
		admin.DELETE("/rewards/:id", h.deleteReward)

		admin.POST("/services", h.createService)
		admin.DELETE("/services/:id", h.deleteService)

		admin.POST("/stylists", h.createStylist)
		admin.PUT("/stylists/:id", h.updateStylist)
		admin.DELETE("/stylists/:id", h.deleteStylist)

		admin.PUT("/settings", h.updateSettings)
	}

	return router
}
