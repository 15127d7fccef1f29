package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact relay backend for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Email Sender
	sender := email.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(sender, validate)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 6. Start Server
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
