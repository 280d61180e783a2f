package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"spaceshare-landing/pkg/api"
	"spaceshare-landing/pkg/clients/zoho"
	"spaceshare-landing/pkg/config"
	"spaceshare-landing/pkg/logger"
	"spaceshare-landing/pkg/services"
	"spaceshare-landing/pkg/validation"

	_ "spaceshare-landing/docs"
)

// @title           SpaceShare Landing API
// @version         1.0
// @description     Serves the SpaceShare launch landing page and forwards lead-capture submissions to the mailing list.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting spaceshare-landing", "port", cfg.Port)

	subscriber := zoho.NewClient(cfg.ZohoBaseURL, cfg.ZohoListKey, cfg.ZohoOAuthToken, cfg.SignupSource)
	if !subscriber.IsConfigured() {
		logger.Log.Warn("ZOHO_LIST_KEY not set - signups will answer 503 until configured")
	}

	controller := services.NewSubmissionController(validation.New(), subscriber)

	gin.SetMode(cfg.GinMode)
	router := api.NewRouter(cfg, controller)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
