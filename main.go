// File: wanderstay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderstay/config"
	"wanderstay/cron"
	"wanderstay/database"
	listingRepoPkg "wanderstay/database/repository/listing"
	"wanderstay/handlers"
	"wanderstay/middleware"
	"wanderstay/routes"
	"wanderstay/services/booking"
	"wanderstay/services/geocode"
	"wanderstay/services/listing"
	"wanderstay/services/mail"
	"wanderstay/services/search"
	"wanderstay/services/tasks"
	"wanderstay/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()

	// collaborators.
	mailer := mail.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
		config.AppConfig.MailFrom,
		config.AppConfig.MailFromName,
	)
	geocoder := geocode.NewMapboxGeocoder(config.AppConfig.MapToken, utils.GetCacheClient(), logger)
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	// services.
	listingService := &listing.DefaultListingService{
		Repo:     listingRepo,
		Geocoder: geocoder,
		Logger:   logger,
	}
	searchResolver := &search.DefaultSearchResolver{
		Repo:   listingRepo,
		Logger: logger,
	}
	bookingNotifier := &booking.DefaultBookingNotifier{
		Repo:      listingRepo,
		Mailer:    mailer,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	// Start the check-in reminder worker.
	cron.InitReminderWorker(mailer)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Listing: handlers.NewListingHandler(listingService),
		Search:  handlers.NewSearchHandler(searchResolver),
		Booking: handlers.NewBookingHandler(bookingNotifier),
		Storage: handlers.NewStorageHandler(cloudinaryStorageService),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
