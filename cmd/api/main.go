package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psbl-site-backend/config"
	_ "psbl-site-backend/docs" // Important for Swagger
	v1 "psbl-site-backend/internal/delivery/http/v1"
	"psbl-site-backend/internal/repository/sanity"
	"psbl-site-backend/internal/usecase"
	"psbl-site-backend/pkg/analytics"
	"psbl-site-backend/pkg/logger"
	"psbl-site-backend/pkg/mail"
	"psbl-site-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           PSBL Site Backend API
// @version         1.0
// @description     Content resolution and contact relay for the PSBL marketing site.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting PSBL site backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Content Source. An unconfigured source is fine: resolution
	// falls back to the bundled defaults on every fetch.
	source := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		ReadToken:  cfg.SanityReadToken,
	})

	// 5. Setup Relay
	relay := mail.NewResendRelay(cfg.ResendAPIKey)
	if !relay.Configured() {
		logger.Log.Warn("Relay not configured - contact submissions will be simulated")
	}

	// 6. Setup Analytics
	var tracker analytics.Tracker = analytics.Noop{}
	if cfg.PlausibleDomain != "" {
		tracker = analytics.NewPlausible(cfg.PlausibleDomain, cfg.PlausibleEndpoint, cfg.FrontendURL)
	}

	// 7. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(relay, tracker, validate, cfg.ContactRecipient, cfg.ContactFrom)
	contentUC := usecase.NewContentUsecase(source)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ContentUC: contentUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
