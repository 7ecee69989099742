package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkk-1817/crm-backend/internal/api/routes"
	"github.com/mkk-1817/crm-backend/internal/config"
	"github.com/mkk-1817/crm-backend/internal/db"
	"github.com/mkk-1817/crm-backend/internal/logger"
)

// @title CRM Backend API
// @version 1.0.0
// @description API for managing companies, contacts, deals, and user authentication
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error("unable to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Error("unable to apply migrations", "error", err)
		os.Exit(1)
	}

	router := routes.SetupRoutes(cfg, database, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starts server in a goroutine
	go func() {
		log.Info("server running", "port", cfg.ServerPort)
		err := server.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("error starting the server", "error", err)
			os.Exit(1)
		}
	}()

	// channel to capture quit signals (e.g. CTRL+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down the server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("error on server shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server shut down successfully")
}
