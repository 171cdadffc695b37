package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aceup/config"
	"aceup/cron"
	"aceup/database"
	eventRepoPkg "aceup/database/repository/event"
	groupRepoPkg "aceup/database/repository/group"
	scheduleRepoPkg "aceup/database/repository/schedule"
	"aceup/handlers"
	"aceup/middleware"
	"aceup/routes"
	"aceup/services/analytics"
	"aceup/services/availability"
	"aceup/services/event"
	"aceup/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		GroupRepo:    groupRepo,
		ScheduleRepo: scheduleRepo,
		CacheClient:  utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}

	taskClient := cron.NewTaskClient()

	eventSvc := &event.DefaultEventService{
		Repo:      eventRepo,
		GroupRepo: groupRepo,
		Refresher: taskClient,
	}

	analyticsSvc := &analytics.DefaultAnalyticsService{
		Availability: availabilitySvc,
		GroupRepo:    groupRepo,
		ScheduleRepo: scheduleRepo,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc)
	groupHandler := handlers.NewGroupHandler(groupRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, groupRepo, taskClient)
	eventHandler := handlers.NewEventHandler(eventSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		QueryAvailabilityHandler: availabilityHandler.QueryHandler,
		WeekAvailabilityHandler:  availabilityHandler.WeekHandler,

		// Group endpoints.
		CreateGroupHandler:  groupHandler.CreateGroupHandler,
		GetGroupHandler:     groupHandler.GetGroupHandler,
		AddMemberHandler:    groupHandler.AddMemberHandler,
		RemoveMemberHandler: groupHandler.RemoveMemberHandler,
		DeleteGroupHandler:  groupHandler.DeleteGroupHandler,

		// Schedule endpoints.
		UpsertScheduleHandler: scheduleHandler.UpsertScheduleHandler,
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		DeleteScheduleHandler: scheduleHandler.DeleteScheduleHandler,

		// Event endpoints.
		CreateEventHandler:     eventHandler.CreateEventHandler,
		GetEventHandler:        eventHandler.GetEventHandler,
		ListGroupEventsHandler: eventHandler.ListGroupEventsHandler,
		DeleteEventHandler:     eventHandler.DeleteEventHandler,
		EventICSHandler:        eventHandler.ICSHandler,

		// Analytics endpoints.
		GroupReportHandler: analyticsHandler.GroupReportHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker and health monitoring.
	cron.InitAvailabilityWorker(availabilitySvc)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
