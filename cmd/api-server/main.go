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

	"go.uber.org/zap"

	"tunahub/database"
	"tunahub/internal/config"
	"tunahub/internal/logger"
	"tunahub/internal/microservices/http-api/server"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zl.Sync()

	// Connect to the database and migrate the catalog tables
	db, err := database.OpenGorm(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	srv := server.New(cfg, zl, db).HTTPServer()

	errChan := make(chan error, 1)
	go func() {
		zl.Info("server running", zap.String("addr", srv.Addr), zap.Bool("tls", cfg.TLSEnabled))
		if cfg.TLSEnabled {
			errChan <- srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			errChan <- srv.ListenAndServe()
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		zl.Info("received shutdown signal")
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server error", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("server stopped")
}
