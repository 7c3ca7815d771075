package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zapcore.InfoLevel)

	tests := []struct {
		name    string
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", "debug", zapcore.DebugLevel, false},
		{"upper case", "WARN", zapcore.WarnLevel, false},
		{"error", "error", zapcore.ErrorLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SetLevel(tt.input); (err != nil) != tt.wantErr {
				t.Fatalf("SetLevel(%q) error = %v", tt.input, err)
			}
			if got := Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("empty keeps current", func(t *testing.T) {
		level.SetLevel(zapcore.WarnLevel)
		if err := SetLevel(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if Level() != zapcore.WarnLevel {
			t.Errorf("expected warn to be kept, got %v", Level())
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		level.SetLevel(zapcore.InfoLevel)
		if err := SetLevel("loud"); err == nil {
			t.Fatal("expected error for unknown level")
		}
		if Level() != zapcore.InfoLevel {
			t.Errorf("level changed on error: %v", Level())
		}
	})
}

func TestGetAndNamed(t *testing.T) {
	Init("test")
	if Get() == nil {
		t.Fatal("expected a logger after Init")
	}
	if Named("audit") == nil {
		t.Fatal("expected a named logger")
	}
	Sync()
}
