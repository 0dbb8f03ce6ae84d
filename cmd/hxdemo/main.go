package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/internal/config"
	"github.com/asw0210/htmx-demo/internal/dashboard"
	"github.com/asw0210/htmx-demo/internal/server"
	"github.com/asw0210/htmx-demo/internal/todos"
	"github.com/asw0210/htmx-demo/internal/ws"
	"github.com/asw0210/htmx-demo/pkg/logger"
	"github.com/asw0210/htmx-demo/pkg/telemetry"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger
	zapLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up tracing
	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to set up telemetry", zap.Error(err))
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			zapLogger.Error("Telemetry shutdown failed", zap.Error(err))
		}
	}()

	// Create services
	todoSvc := todos.NewService(zapLogger)
	dashSvc := dashboard.NewService(zapLogger, dashboard.Config{
		Workers:     cfg.Demo.Workers,
		MinDuration: cfg.Demo.WorkerMinDuration,
		MaxDuration: cfg.Demo.WorkerMaxDuration,
		Retention:   cfg.Demo.RunRetention,
	})
	go dashSvc.RunJanitor(ctx, cfg.Demo.JanitorInterval)

	echo := ws.NewEcho(zapLogger)

	// Create HTTP server
	srv := server.NewServer(zapLogger, cfg, todoSvc, dashSvc, echo)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
