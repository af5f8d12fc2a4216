package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/AurifyAE/bullionpro-backend/cmd/docs"
	"github.com/AurifyAE/bullionpro-backend/internal/core/services"
	portssvc "github.com/AurifyAE/bullionpro-backend/internal/core/ports/services"
	"github.com/AurifyAE/bullionpro-backend/internal/handlers"
	"github.com/AurifyAE/bullionpro-backend/internal/middleware"
	"github.com/AurifyAE/bullionpro-backend/internal/repositories/database/pgsql"
	"github.com/AurifyAE/bullionpro-backend/pkg/config"
	"github.com/AurifyAE/bullionpro-backend/pkg/database"
)

// @title BullionPro Backend API
// @version 1.0
// @description Back-office ledger for bullion trading: metal transactions, postings, balances, and inventory.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate := limiter.Rate{Period: cfg.RateLimitPeriod, Limit: cfg.RateLimitRequests}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := &portssvc.ServiceContainer{
		MetalTxn:     services.NewMetalTransactionService(repos.MetalTxnRepo, repos.AccountRepo, repos.RegistryRepo, repos.InventoryRepo),
		Account:      services.NewAccountService(repos.AccountRepo, repos.RegistryRepo),
		Fixing:       services.NewFixingService(repos.FixingRepo, repos.AccountRepo, repos.RegistryRepo),
		Entry:        services.NewEntryService(repos.EntryRepo, repos.AccountRepo, repos.RegistryRepo),
		FundTransfer: services.NewFundTransferService(repos.FundTransferRepo, repos.AccountRepo, repos.RegistryRepo),
		Registry:     services.NewRegistryService(repos.RegistryRepo, repos.AccountRepo),
		User:         services.NewUserService(repos.UserRepo),
		Auth:         services.NewAuthService(repos.UserRepo, cfg.JWTSecret, cfg.JWTExpiryDuration),
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations using a temporary
// database/sql connection compatible with the pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
