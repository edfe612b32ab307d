package main

import (
	"log/slog"
	"os"

	"github.com/finbyte/card_ledger_app/internal/adapters/memory"
	"github.com/finbyte/card_ledger_app/internal/core/services"
	"github.com/finbyte/card_ledger_app/internal/handlers"
	"github.com/finbyte/card_ledger_app/internal/middleware"
	"github.com/finbyte/card_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Card Ledger & Payroll API
// @version 1.0
// @description Credit-card ledger and payroll backend. All state is held in memory.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory repositories: the whole system's state lives in process
	// memory and is lost on shutdown.
	cardRepo := memory.NewCardRepository()
	employeeRepo := memory.NewEmployeeRepository()

	container := services.NewServiceContainer(cardRepo, employeeRepo)
	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
