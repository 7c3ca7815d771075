// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine and
// makes validation errors report JSON field names.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("nonnegative_amount", validateNonNegativeAmount)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ExpenseCategory(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		return !v.IsNegative()
	case *decimal.Decimal:
		return v == nil || !v.IsNegative()
	}
	return false
}

// Messages converts validation errors into a field -> message map suitable
// for API responses. ok is false when err is not a validation error.
func Messages(err error) (map[string]string, bool) {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = message(fe)
	}
	return fields, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "expense_category":
		names := make([]string, len(models.ExpenseCategories))
		for i, c := range models.ExpenseCategories {
			names[i] = string(c)
		}
		return fe.Field() + " must be one of: " + strings.Join(names, ", ")
	case "iso_date":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "nonnegative_amount":
		return fe.Field() + " must not be negative"
	}
	return fe.Field() + " is invalid"
}
