// File: tripplanner/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanner/config"
	"tripplanner/cron"
	"tripplanner/database"
	bookingRepo "tripplanner/database/repository/booking"
	sessionRepo "tripplanner/database/repository/session"
	userRepoPkg "tripplanner/database/repository/user"
	"tripplanner/handlers"
	"tripplanner/routes"
	"tripplanner/services/notification"
	"tripplanner/services/search"
	sessionSvc "tripplanner/services/session"
	"tripplanner/services/trip"
	"tripplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	sessRepo := sessionRepo.NewMongoSessionRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// async email queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	sessionService := sessionSvc.NewDefaultSessionService(userRepo, sessRepo, utils.GetSessionCacheClient())
	dispatcher := notification.NewDispatcher(queueClient)
	tripService := trip.NewDefaultTripService(sessionService, bookRepo, dispatcher)
	searchService := search.NewGeminiSearchService(sessionService)

	// background email worker.
	cron.InitEmailWorker(notification.NewDefaultNotificationService())

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(sessionService, tripService, searchService)
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
