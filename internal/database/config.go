package database

import (
	"fmt"
	"net"
	"net/url"

	"fintrack/internal/config"
)

// Driver names accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	SQLitePath    string
	MigrationsDir string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Driver:        cfg.DBDriver,
		Host:          cfg.DBHost,
		Port:          cfg.DBPort,
		User:          cfg.DBUser,
		Password:      cfg.DBPassword,
		DBName:        cfg.DBName,
		SSLMode:       cfg.DBSSLMode,
		SQLitePath:    cfg.SQLitePath,
		MigrationsDir: cfg.MigrationsDir,
	}
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the connection URL understood by golang-migrate, with
// credentials escaped.
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// SourceURL returns the file:// source URL of the migrations directory.
func (c *Config) SourceURL() string {
	return "file://" + c.MigrationsDir
}
