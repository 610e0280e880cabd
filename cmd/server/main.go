package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/configs"
	"github.com/paperpress/newsletter/internal/application/services"
	"github.com/paperpress/newsletter/internal/core/ports"
	"github.com/paperpress/newsletter/internal/infrastructure/db"
	"github.com/paperpress/newsletter/internal/infrastructure/email"
	"github.com/paperpress/newsletter/internal/infrastructure/health"
	"github.com/paperpress/newsletter/internal/infrastructure/httpserver"
	"github.com/paperpress/newsletter/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting newsletter service...")

	// Initialize database (apply pool settings from config)
	database, err := db.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Initialize repositories
	subscriberRepo := repositories.NewSubscriberRepository(database, logger)
	userRepo := repositories.NewUserRepository(database, logger)

	// Initialize email transport
	emailClient, err := email.NewClient(&email.Config{
		ServerToken: cfg.Email.PostmarkServerToken,
		BaseURL:     cfg.Email.PostmarkBaseURL,
		SenderEmail: cfg.Email.SenderEmail,
		SendTimeout: cfg.Email.SendTimeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email client:", err)
	}

	// Wire services
	subscriptionService := services.NewSubscriptionService(subscriberRepo, emailClient, cfg.Server.BaseURL, logger)
	publishService := services.NewPublishService(subscriberRepo, emailClient, logger)
	authService, err := services.NewAuthService(userRepo, logger)
	if err != nil {
		logger.Fatal("Failed to initialize auth service:", err)
	}

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	deps := httpserver.ServerDeps{
		SubscriptionService: subscriptionService,
		PublishService:      publishService,
		AuthService:         authService,
		HealthCheckers:      []ports.HealthChecker{health.NewDBHealthChecker(database)},
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Verify dependencies before accepting traffic
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 5*time.Second)
	for name, err := range server.CheckDependencies(startupCtx) {
		logger.WithField("dependency", name).WithError(err).Warn("dependency unhealthy at startup")
	}
	cancelStartup()

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
