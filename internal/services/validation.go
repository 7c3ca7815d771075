package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

const (
	minYear = 1900
	maxYear = 9999

	// amountScale matches the numeric(14,2) amount columns.
	amountScale = 2
)

// maxAmount is the first value a numeric(14,2) column cannot hold.
var maxAmount = decimal.New(1, 12)

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.Field(apperrors.ErrInvalidInput, "amount", "amount must not be negative")
	}
	if !amount.Equal(amount.Round(amountScale)) {
		return apperrors.Field(apperrors.ErrInvalidInput, "amount", "amount must have at most 2 decimal places")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return apperrors.Field(apperrors.ErrInvalidInput, "amount", "amount must be less than "+maxAmount.String())
	}
	return nil
}

func validatePeriod(month, year int) error {
	fields := make(map[string]string)
	if month < 1 || month > 12 {
		fields["month"] = "month must be between 1 and 12"
	}
	if year < minYear || year > maxYear {
		fields["year"] = fmt.Sprintf("year must be between %d and %d", minYear, maxYear)
	}
	if len(fields) > 0 {
		return apperrors.WithFields(apperrors.ErrInvalidInput, "invalid period", fields)
	}
	return nil
}

func validateExpense(amount decimal.Decimal, category models.ExpenseCategory, date models.Date) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if !category.Valid() {
		return apperrors.Field(apperrors.ErrInvalidInput, "category", fmt.Sprintf("unknown category %q", category))
	}
	if date.IsZero() {
		return apperrors.Field(apperrors.ErrInvalidInput, "date", "date is required")
	}
	return validatePeriod(date.Month(), date.Year())
}
