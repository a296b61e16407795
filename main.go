package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketly/config"
	"ticketly/database"
	bookingRepoPkg "ticketly/database/repository/booking"
	inventoryRepo "ticketly/database/repository/inventory"
	paymentRepoPkg "ticketly/database/repository/payment"
	userRepoPkg "ticketly/database/repository/user"
	"ticketly/handlers"
	"ticketly/routes"
	"ticketly/services/booking"
	"ticketly/services/notification"
	"ticketly/services/payment"
	"ticketly/services/user"
	"ticketly/utils"
	"ticketly/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitOTPCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	movieRepo := inventoryRepo.NewMongoMovieRepo()
	concertRepo := inventoryRepo.NewMongoConcertRepo()
	busRepo := inventoryRepo.NewMongoBusRepo()
	trainRepo := inventoryRepo.NewMongoTrainRepo()
	flightRepo := inventoryRepo.NewMongoFlightRepo()
	carRepo := inventoryRepo.NewMongoCarRepo()

	// services.
	notifier := &notification.LogNotificationService{}

	userService := &user.DefaultUserService{
		Users:    userRepo,
		Notifier: notifier,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:             bookingRepo,
		Users:                userRepo,
		Movies:               movieRepo,
		Concerts:             concertRepo,
		Buses:                busRepo,
		Trains:               trainRepo,
		Flights:              flightRepo,
		Cars:                 carRepo,
		TrainBaseFare:        config.AppConfig.TrainBaseFare,
		CarMinimumFare:       config.AppConfig.CarMinimumFare,
		RefundPercent:        config.AppConfig.RefundPercent,
		ReleaseSeatsOnCancel: config.AppConfig.ReleaseSeatsOnCancel,
	}

	paymentService := &payment.DefaultPaymentService{
		Payments:  paymentRepo,
		Bookings:  bookingRepo,
		Users:     userRepo,
		Notifier:  notifier,
		StripeKey: config.AppConfig.StripeKey,
	}

	handlers.Init(userService, bookingService, paymentService, handlers.CatalogRepos{
		Movies:   movieRepo,
		Concerts: concertRepo,
		Buses:    busRepo,
		Trains:   trainRepo,
		Flights:  flightRepo,
		Cars:     carRepo,
	})

	routes.RegisterRoutes(router)

	// Background reminder worker.
	reminderWorker := &workers.ReminderWorker{
		Bookings:  bookingRepo,
		Users:     userRepo,
		Notifier:  notifier,
		WindowMin: config.AppConfig.ReminderWindowMin,
	}
	if err := reminderWorker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder worker: %v", err)
	}

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetOTPCacheClient()}, database.MongoClient)

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

	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
