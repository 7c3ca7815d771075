package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env      string
	Port     string
	LogLevel string

	// Database
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	MigrationsDir string

	// HTTP
	CORSOrigin string

	// Currency is the label printed next to amounts in exports and charts.
	Currency string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: os.Getenv("LOG_LEVEL"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "fintrack"),
		DBPassword:    getEnv("DB_PASSWORD", "fintrack"),
		DBName:        getEnv("DB_NAME", "fintrack"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "fintrack.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),

		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		Currency:   getEnv("CURRENCY", "PLN"),
	}

	if config.DBDriver != "postgres" && config.DBDriver != "sqlite" {
		log.Printf("Warning: unknown DB_DRIVER %q, falling back to postgres\n", config.DBDriver)
		config.DBDriver = "postgres"
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
