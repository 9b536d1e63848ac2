package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screenline/config"
	"screenline/cron"
	"screenline/database"
	leadRepo "screenline/database/repository/lead"
	"screenline/handlers"
	"screenline/middleware"
	"screenline/routes"
	"screenline/services/availability"
	"screenline/services/calendar"
	"screenline/services/conversation"
	"screenline/services/crm"
	"screenline/services/tasks"
	"screenline/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	loc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}
	calendarTimeout := time.Duration(config.AppConfig.CalendarTimeoutSeconds) * time.Second

	// Calendar source: constructed once, injected everywhere.
	var source calendar.Source
	switch config.AppConfig.CalendarMode {
	case "google":
		source, err = calendar.NewGoogleSource(
			context.Background(),
			config.AppConfig.GoogleCredentialsFile,
			config.AppConfig.GoogleCalendarID,
			loc,
			calendarTimeout,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize google calendar source: %v", err)
		}
	case "ics":
		source = calendar.NewICSSource(config.AppConfig.ICSFeedURL, loc, calendarTimeout)
	default:
		logger.Sugar().Fatalf("main: unknown calendar mode %q", config.AppConfig.CalendarMode)
	}

	engine, err := availability.NewEngine(source)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize availability engine: %v", err)
	}

	// Lead capture: mongo record plus async delivery to the automation sink.
	leadsRepo := leadRepo.NewMongoLeadRepo()
	sink := crm.NewWebhookSink(
		config.AppConfig.CRMWebhookURL,
		time.Duration(config.AppConfig.CRMTimeoutSeconds)*time.Second,
	)
	cron.InitLeadWorker(sink)

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeadQueueDB,
	})
	defer queueClient.Close()

	conversationService := &conversation.DefaultConversationService{
		Engine:            engine,
		Leads:             leadsRepo,
		Dispatcher:        tasks.NewAsynqDispatcher(queueClient),
		Location:          loc,
		BookingLink:       config.AppConfig.BookingLink,
		BusinessPhone:     config.AppConfig.BusinessPhone,
		DateSearchDays:    config.AppConfig.DateSearchDays,
		NextAvailableDays: config.AppConfig.NextAvailableDays,
		MaxSlotsWanted:    config.AppConfig.MaxSlotsWanted,
	}

	webhookHandler := handlers.NewWebhookHandler(conversationService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, webhookHandler)

	healthRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeadQueueDB,
	})
	utils.StartHealthMonitor(healthRedis, database.MongoClient)

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
