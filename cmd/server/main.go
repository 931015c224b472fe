package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-svc/docs"
	"student-portal-svc/internal/config"
	"student-portal-svc/internal/handler"
	"student-portal-svc/internal/middleware"
	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/scheduler"
	"student-portal-svc/internal/session"
	"student-portal-svc/internal/transport"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
)

// @title Student Portal Service API
// @version 1.0
// @description RESTful API behind the student portal: tuition, debts, fees, deposits, curriculum, semester plans, notifications, one-stop services and device reports
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Student Portal Service API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Student Portal Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Seed the in-memory repositories
	store, err := repository.NewSeededStore(time.Now())
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to seed repositories")
	}
	appLogger.Info("Mock data seeded successfully")

	// Simulated network between the portal and its data source
	tr := transport.New(transport.Config{Scale: cfg.Transport.LatencyScale}, appLogger)
	appLogger.WithField("latency_scale", cfg.Transport.LatencyScale).Info("Transport initialized")

	// Initialize services
	services := viewstate.NewServices(store, tr, time.Now, cfg.Server.PublicBaseURL, appLogger)

	// Initialize sessions
	sessions := session.NewManager(store.Students, session.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.SessionTTL,
	}, func(student models.Student) *viewstate.Portal {
		return viewstate.NewPortal(services, student, repository.CurrentSemester, appLogger)
	}, appLogger)

	// Initialize scheduler
	reminderScheduler := scheduler.NewReminderScheduler(services.Debt, services.Notifications, sessions, store.SchedulerLogs, scheduler.Config{
		ReminderCronExpression:     cfg.Scheduler.ReminderCronExpression,
		SessionSweepCronExpression: cfg.Scheduler.SessionSweepCronExpression,
		ReminderWindowDays:         cfg.Scheduler.ReminderWindowDays,
	}, time.Now, appLogger)
	if err := reminderScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start reminder scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.Origins()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, sessions, services.Exports, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Stop jobs and unmount every portal
	reminderScheduler.Stop()
	sessions.Close()

	appLogger.Info("Server exited successfully")
}
