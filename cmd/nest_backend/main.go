package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/core/services"
	"github.com/nestapt/nest_backend/internal/handlers"
	"github.com/nestapt/nest_backend/internal/middleware"
	"github.com/nestapt/nest_backend/internal/platform/docgen"
	"github.com/nestapt/nest_backend/internal/platform/email"
	"github.com/nestapt/nest_backend/internal/platform/storage"
	"github.com/nestapt/nest_backend/internal/repositories/database/pgsql"
	"github.com/nestapt/nest_backend/pkg/config"
	"github.com/nestapt/nest_backend/pkg/database"
)

// @title NEST Backend API
// @version 1.0
// @description Deal management backend for NEST serviced apartments.

// @host localhost:8080
// @BasePath /api/v1

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

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	repos := pgsql.NewRepositoryProvider(dbPool)

	store := storage.NewLocalStore(cfg.StorageRoot)

	generator, err := docgen.NewGenerator(repos.DocumentRepo, repos.SettingsRepo, store, docgen.Config{
		CompanyLegalName: cfg.CompanyLegalName,
		CompanyAddress:   cfg.CompanyAddress,
		SignatoryName:    cfg.SignatoryName,
		SignatoryTitle:   cfg.SignatoryTitle,
	})
	if err != nil {
		logger.Error("Failed to initialize document generator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	emailSender := email.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName, store)

	container := services.NewServiceContainer(repos, generator, emailSender, store, services.DealServiceConfig{
		FinanceEmail: cfg.FinanceEmail,
	})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidators(logger)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// registerCustomValidators adds the `termtype` binding tag used by deal
// request DTOs.
func registerCustomValidators(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Unexpected validator engine; custom validators not registered")
		return
	}
	_ = v.RegisterValidation("termtype", func(fl validator.FieldLevel) bool {
		return domain.TermType(fl.Field().String()).IsValid()
	})
}
