package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/albertsama/portfolio-api/config"
	"github.com/albertsama/portfolio-api/internal/handlers"
	"github.com/albertsama/portfolio-api/internal/middleware"
	"github.com/albertsama/portfolio-api/internal/services"
	"github.com/albertsama/portfolio-api/pkg/logger"
	"github.com/albertsama/portfolio-api/pkg/mailer"
	"github.com/albertsama/portfolio-api/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting portfolio API",
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize the SMTP mailer. One instance serves all requests:
	// each send dials its own connection.
	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Pass,
		cfg.SMTP.Receiver,
	)

	// Initialize services and handlers
	contactService := services.NewContactService(smtpMailer, cfg)
	contactHandler := handlers.NewContactHandler(contactService)
	healthHandler := handlers.NewHealthHandler(func() bool {
		return cfg.SMTP.User != "" && cfg.SMTP.Receiver != ""
	})

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: the reference deployment serves the form from static hosts,
	// so origins default to permissive; a restricted list is supported.
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	// Routes
	router.POST("/contact", middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContact)
	router.GET("/healthcheck", healthHandler.Healthcheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Static portfolio assets (contact page + form controller)
	if staticDir := cfg.Server.StaticDir; staticDir != "" {
		if _, statErr := os.Stat(staticDir); statErr == nil {
			router.StaticFile("/", filepath.Join(staticDir, "contact.html"))
			router.StaticFile("/contact.html", filepath.Join(staticDir, "contact.html"))
			router.Static("/js", filepath.Join(staticDir, "js"))
		} else {
			logger.Warn("Static directory not found, serving API only",
				zap.String("static_dir", staticDir))
		}
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
