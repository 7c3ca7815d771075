// Package errors provides custom error types for the fintrack API.
// Service-layer errors use AppError so responses stay consistent and never
// leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional per-field details and
// an optional internal error.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Internal   error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Fields:     sentinel.Fields,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithFields creates a new AppError carrying field-level validation details.
func WithFields(sentinel *AppError, message string, fields map[string]string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Fields:     fields,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Field is shorthand for a single-field validation error.
func Field(sentinel *AppError, field, message string) *AppError {
	return WithFields(sentinel, message, map[string]string{field: message})
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Salary errors.
var (
	ErrSalaryNotFound = &AppError{Code: "SALARY_NOT_FOUND", Message: "Salary not found", StatusCode: http.StatusNotFound}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Report errors.
var (
	ErrNothingToChart = &AppError{Code: "NOTHING_TO_CHART", Message: "No expenses to chart", StatusCode: http.StatusNotFound}
)
