package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-booking/internal/api"
	"salon-booking/internal/genai"
	"salon-booking/internal/model"
	"salon-booking/internal/repository"
	"salon-booking/internal/service"
	"salon-booking/pkg/config"
	"salon-booking/pkg/database"
	"salon-booking/pkg/logger"
)

func main() {
	// Get configuration from environment variables
	mongoURI := config.GetEnv("MONGO_URI", "mongodb://localhost:27017")
	dbName := config.GetEnv("MONGO_DB", "salon_booking")
	port := config.GetEnv("PORT", "8080")

	defaults := model.Settings{
		CommissionFeeCents: config.GetEnvInt("COMMISSION_FEE_CENTS", 50),
		ThresholdCents:     config.GetEnvInt("COMMISSION_THRESHOLD_CENTS", 1000),
		AdminPassword:      config.GetEnv("ADMIN_PASSWORD", "parola"),
	}

	zlog, err := logger.New(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, mongoURI, dbName)
	if err != nil {
		zlog.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			zlog.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	zlog.Info("connected to MongoDB", zap.String("database", dbName))

	// Initialize repositories
	rewardRepo := repository.NewRewardRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)
	closureRepo := repository.NewClosureRepository(mongoDB.Database)
	serviceRepo := repository.NewServiceRepository(mongoDB.Database)
	stylistRepo := repository.NewStylistRepository(mongoDB.Database)
	settingsRepo := repository.NewSettingsRepository(mongoDB.Database)

	uow := database.NewUnitOfWork(mongoDB.Client)

	// Initialize services
	bookingSvc := service.NewBookingService(
		bookingRepo,
		serviceRepo,
		stylistRepo,
		closureRepo,
		settingsRepo,
		uow,
		defaults,
		zlog,
	)
	rewardSvc := service.NewRewardService(rewardRepo, bookingRepo, zlog)
	catalogSvc := service.NewCatalogService(serviceRepo, stylistRepo, zlog)

	gemini := genai.New(
		config.GetEnv("GEMINI_BASE_URL", ""),
		config.GetEnv("GEMINI_API_KEY", ""),
		nil,
	)
	contentSvc := service.NewContentService(gemini, config.GetEnv("SALON_NAME", "Salone Bellezza"), zlog)

	// Seed the catalog and the prize pool on first run
	if err := rewardSvc.SeedDefaults(ctx, time.Now()); err != nil {
		zlog.Fatal("failed to seed rewards", zap.Error(err))
	}
	if err := catalogSvc.SeedDefaults(ctx, time.Now()); err != nil {
		zlog.Fatal("failed to seed catalog", zap.Error(err))
	}

	// Setup Gin router
	handlers := api.NewHandlers(bookingSvc, rewardSvc, catalogSvc, contentSvc, zlog)
	router := api.SetupRouter(handlers)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		zlog.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	// Graceful shutdown
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
