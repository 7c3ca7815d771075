package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
)

const usage = "usage: migrate <up|down [N]|goto V|force V|version>"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m, err := database.NewMigrator(database.NewConfig(cfg))
	if err != nil {
		return err
	}
	defer database.CloseMigrator(m)

	log := logger.Named("migrate")

	switch command := args[0]; command {
	case "up":
		if err := m.Up(); ignoreNoChange(err) != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
		log.Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = positiveArg(args[1]); err != nil {
				return err
			}
		}
		if err := m.Steps(-steps); ignoreNoChange(err) != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
		log.Infof("Rolled back %d migration(s)", steps)

	case "goto":
		if len(args) < 2 {
			return errors.New(usage)
		}
		version, err := positiveArg(args[1])
		if err != nil {
			return err
		}
		if err := m.Migrate(uint(version)); ignoreNoChange(err) != nil {
			return fmt.Errorf("migration to version %d failed: %w", version, err)
		}
		log.Infof("Migrated to version %d", version)

	case "force":
		// Clears the dirty flag after a failed migration was repaired by hand.
		if len(args) < 2 {
			return errors.New(usage)
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version: %w", err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}
		log.Warnf("Forced schema version to %d", version)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("No migrations applied")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		log.Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command %q; %s", command, usage)
	}

	return nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func positiveArg(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("expected a positive integer, got %q", raw)
	}
	return n, nil
}
