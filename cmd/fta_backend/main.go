package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/finwyse/fin_tracker_app/internal/adapters/llm"
	"github.com/finwyse/fin_tracker_app/internal/core/services"
	"github.com/finwyse/fin_tracker_app/internal/handlers"
	"github.com/finwyse/fin_tracker_app/internal/middleware"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
	"github.com/finwyse/fin_tracker_app/internal/repositories/database/sqlite"
	"github.com/finwyse/fin_tracker_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title FinTracker Backend API
// @version 1.0
// @description Personal finance tracking backend: expenses, budgets, goals and projections.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the local database
	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseSQLiteDB(db)

	// Apply migrations
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied successfully.")

	// Wire repositories, adapters and services
	repos := sqlite.NewRepositoryProvider(db)
	advisor := llm.NewOpenAIAdapter(cfg)
	serviceContainer := services.NewServiceContainer(cfg, repos, advisor)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the local frontend)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
