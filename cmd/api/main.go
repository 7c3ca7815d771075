package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/validator"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack records monthly salaries and categorized expenses and reports savings, month-over-month changes and spending distribution.

// @host      localhost:8080
// @BasePath  /api

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env)
	defer logger.Sync()
	log := logger.Get()
	if err := logger.SetLevel(appConfig.LogLevel); err != nil {
		log.Warnw("ignoring invalid LOG_LEVEL", "value", appConfig.LogLevel, "error", err)
	}

	validator.Register()
	decimal.MarshalJSONWithoutQuotes = true

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	router := server.NewRouter(appConfig, server.NewServices(dbManager.DB(), appConfig.Currency))

	log.Infow("Starting Fintrack API server", "port", appConfig.Port, "driver", appConfig.DBDriver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
