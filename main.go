// File: lipo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lipo/config"
	"lipo/cron"
	"lipo/database"
	availabilityRepo "lipo/database/repository/availability"
	bookingRepo "lipo/database/repository/booking"
	"lipo/handlers"
	"lipo/middleware"
	"lipo/routes"
	"lipo/services/availability"
	"lipo/services/booking"
	"lipo/services/realtime"
	"lipo/services/tasks"
	"lipo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	if err := bkRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}

	// services.
	hub := realtime.NewHub(utils.GetRealtimeClient(), logger)
	reminderScheduler := tasks.NewReminderScheduler()

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:        availRepo,
		BookingRepo: bkRepo,
		Cache:       utils.GetCacheClient(),
		SlotMinutes: config.AppConfig.DefaultSlotMinutes,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:           bkRepo,
		Availability:   availabilityService,
		Locks:          booking.NewRedisSlotLocker(utils.GetCacheClient()),
		Events:         hub,
		Payments:       booking.NewStripePaymentHandler(logger),
		Reminders:      reminderScheduler,
		ServiceFeeRate: config.AppConfig.ServiceFeeRate,
		ReminderLead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)
	realtimeHandler := handlers.NewRealtimeHandler(hub, bookingService, logger)

	handlerBundle := &routes.HandlerBundle{
		Booking:      bookingHandler,
		Availability: availabilityHandler,
		Realtime:     realtimeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background work: reminder delivery and the pending-booking sweep.
	cron.InitBookingWorker(hub, bkRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetRealtimeClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}
	logger.Sugar().Info("main: server stopped gracefully")
}
