package database

import (
	"net/url"
	"path/filepath"
	"testing"

	"fintrack/internal/config"
	"fintrack/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(&config.Config{
		DBDriver:      "postgres",
		DBHost:        "db",
		DBPort:        "5433",
		DBUser:        "u",
		DBPassword:    "p",
		DBName:        "n",
		DBSSLMode:     "require",
		MigrationsDir: "migrations",
	})

	if got := cfg.DSN(); got != "host=db port=5433 user=u password=p dbname=n sslmode=require" {
		t.Errorf("unexpected DSN: %s", got)
	}
	if got := cfg.MigrateURL(); got != "postgres://u:p@db:5433/n?sslmode=require" {
		t.Errorf("unexpected migrate URL: %s", got)
	}
	if got := cfg.SourceURL(); got != "file://migrations" {
		t.Errorf("unexpected source URL: %s", got)
	}
}

func TestMigrateURL_EscapesCredentials(t *testing.T) {
	cfg := &Config{
		User:     "app@corp",
		Password: "p@ss:w/rd?#",
		Host:     "db",
		Port:     "5432",
		DBName:   "fintrack",
		SSLMode:  "disable",
	}

	parsed, err := url.Parse(cfg.MigrateURL())
	if err != nil {
		t.Fatalf("migrate URL does not parse: %v", err)
	}
	if parsed.User.Username() != cfg.User {
		t.Errorf("expected user %q, got %q", cfg.User, parsed.User.Username())
	}
	if pw, _ := parsed.User.Password(); pw != cfg.Password {
		t.Errorf("expected password %q, got %q", cfg.Password, pw)
	}
	if parsed.Host != "db:5432" || parsed.Path != "/fintrack" || parsed.Query().Get("sslmode") != "disable" {
		t.Errorf("unexpected URL parts: %s", parsed.Redacted())
	}
}

func TestNewManager(t *testing.T) {
	t.Run("sqlite_auto_migrates", func(t *testing.T) {
		cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "test.db")}

		m, err := NewManager(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = m.Close() }()

		if err := m.RunMigrations(); err != nil {
			t.Fatalf("unexpected migration error: %v", err)
		}

		for _, table := range []string{"salaries", "expenses", "audit_logs"} {
			if !m.DB().Migrator().HasTable(table) {
				t.Errorf("expected table %q after migration", table)
			}
		}
	})

	t.Run("unknown_driver", func(t *testing.T) {
		if _, err := NewManager(&Config{Driver: "oracle"}); err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})
}

func TestNewMigrator_RejectsSQLite(t *testing.T) {
	if _, err := NewMigrator(&Config{Driver: DriverSQLite}); err == nil {
		t.Fatal("expected error for sqlite migrator")
	}
}
