package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code
// and returns it for further inspection.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertFieldError checks that err is an INVALID_INPUT AppError carrying a
// message for each of the given request fields.
func AssertFieldError(t *testing.T, err error, fields ...string) {
	t.Helper()

	appErr := AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
	for _, field := range fields {
		if appErr.Fields[field] == "" {
			t.Errorf("expected a message for field %q, got %v", field, appErr.Fields)
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimal fails the test unless got equals the decimal written in want.
func AssertDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s, got %s", want, got.String())
	}
}
