package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

func TestPositiveArg(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"two", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := positiveArg(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("positiveArg(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("positiveArg(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIgnoreNoChange(t *testing.T) {
	if err := ignoreNoChange(migrate.ErrNoChange); err != nil {
		t.Errorf("expected nil for ErrNoChange, got %v", err)
	}
	other := errors.New("boom")
	if err := ignoreNoChange(other); !errors.Is(err, other) {
		t.Errorf("expected the original error, got %v", err)
	}
}

func TestRun_RequiresCommand(t *testing.T) {
	if err := run(nil); err == nil || err.Error() != usage {
		t.Errorf("expected usage error, got %v", err)
	}
}
