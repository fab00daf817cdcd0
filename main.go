// File: pawmi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawmi/config"
	"pawmi/cron"
	"pawmi/database"
	bookingRepoPkg "pawmi/database/repository/booking"
	petRepoPkg "pawmi/database/repository/pet"
	reminderRepoPkg "pawmi/database/repository/reminder"
	walkerRepoPkg "pawmi/database/repository/walker"
	"pawmi/handlers"
	"pawmi/middleware"
	"pawmi/routes"
	"pawmi/services/adoption"
	"pawmi/services/booking"
	"pawmi/services/discovery"
	"pawmi/services/reminder"
	"pawmi/services/walker"
	"pawmi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	walkerRepo := walkerRepoPkg.NewMongoWalkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()

	// services.
	walkerService := &walker.DefaultWalkerService{
		Repo:        walkerRepo,
		BookingRepo: bookingRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		WalkerRepo: walkerRepo,
		PetRepo:    petRepo,
	}

	discoveryService := &discovery.DefaultDiscoveryService{
		WalkerRepo: walkerRepo,
		Cache:      utils.GetCacheClient(),
	}

	adoptionService := &adoption.DefaultAdoptionService{
		Repo: petRepo,
	}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()

	reminderService := &reminder.DefaultReminderService{
		Repo:   reminderRepo,
		Client: reminderQueue,
	}

	walkerHandler := handlers.NewWalkerHandler(walkerService, discoveryService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)
	petHandler := handlers.NewPetHandler(petRepo)
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Walker endpoints.
		SearchWalkersHandler:       walkerHandler.SearchWalkersHandler,
		GetWalkerByIDHandler:       walkerHandler.GetWalkerByIDHandler,
		GetMyWalkerProfileHandler:  walkerHandler.GetMyWalkerProfileHandler,
		BecomeWalkerHandler:        walkerHandler.BecomeWalkerHandler,
		UpdateWalkerHandler:        walkerHandler.UpdateWalkerHandler,
		CreateReviewHandler:        walkerHandler.CreateReviewHandler,
		ListReviewsHandler:         walkerHandler.ListReviewsHandler,
		GetServiceCatalogueHandler: walkerHandler.GetServiceCatalogueHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:      bookingHandler.ListMyBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		WalkerStatsHandler:         bookingHandler.WalkerStatsHandler,

		// Adoption endpoints.
		ListAdoptionsHandler: adoptionHandler.ListAdoptionsHandler,

		// Pet endpoints.
		CreatePetHandler:  petHandler.CreatePetHandler,
		ListMyPetsHandler: petHandler.ListMyPetsHandler,
		UpdatePetHandler:  petHandler.UpdatePetHandler,
		DeletePetHandler:  petHandler.DeletePetHandler,

		// Reminder endpoints.
		CreateReminderHandler:  reminderHandler.CreateReminderHandler,
		ListMyRemindersHandler: reminderHandler.ListMyRemindersHandler,
		DeleteReminderHandler:  reminderHandler.DeleteReminderHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(reminderRepo)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
