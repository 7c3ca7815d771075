package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/models"
)

// CreateTestSalary inserts a salary entry for the given period.
func CreateTestSalary(t *testing.T, db *gorm.DB, amount string, month, year int) *models.Salary {
	t.Helper()

	salary := &models.Salary{
		Amount: decimal.RequireFromString(amount),
		Month:  month,
		Year:   year,
	}
	if err := db.Create(salary).Error; err != nil {
		t.Fatalf("failed to create test salary: %v", err)
	}
	return salary
}

// CreateTestExpense inserts an expense dated date (YYYY-MM-DD).
func CreateTestExpense(t *testing.T, db *gorm.DB, amount string, category models.ExpenseCategory, date string) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, amount, category, date, time.Time{})
}

// CreateTestExpenseAt inserts an expense with an explicit creation timestamp.
// A zero createdAt lets the database assign the current time.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, amount string, category models.ExpenseCategory, date string, createdAt time.Time) *models.Expense {
	t.Helper()

	d, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", date, err)
	}

	expense := &models.Expense{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
	}
	expense.SetDate(d)
	expense.CreatedAt = createdAt

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
