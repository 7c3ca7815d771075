package database

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/logger"
	"fintrack/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager opens the database selected by config.Driver.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(config.SQLitePath)
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverSQLite {
		// SQLite serializes writers; a single connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, config: config}, nil
}

// RunMigrations brings the schema up to date. PostgreSQL uses the SQL files in
// the migrations directory; SQLite is auto-migrated from the models.
func (m *Manager) RunMigrations() error {
	log := logger.Get()

	if m.config.Driver == DriverSQLite {
		log.Info("Auto-migrating SQLite schema...")
		if err := m.db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	log.Infow("Running database migrations...", "source", m.config.SourceURL())

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Info("Migrations applied")
	return nil
}

// NewMigrator returns a golang-migrate instance for the PostgreSQL schema.
// SQLite schemas are auto-migrated and have no migrator.
func NewMigrator(config *Config) (*migrate.Migrate, error) {
	if config.Driver != DriverPostgres {
		return nil, fmt.Errorf("SQL migrations target PostgreSQL; %s schemas are auto-migrated on startup", config.Driver)
	}
	mig, err := migrate.New(config.SourceURL(), config.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// CloseMigrator closes both ends of a migrator, logging failures.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the underlying connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
