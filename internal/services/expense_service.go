package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// expenseService handles expense persistence.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// ListExpenses returns every expense, oldest first.
func (s *expenseService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// CreateExpense records a new expense. Month and year are derived from date.
func (s *expenseService) CreateExpense(ctx context.Context, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error) {
	if err := validateExpense(amount, category, date); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:   amount,
		Category: category,
	}
	expense.SetDate(date)

	if err := s.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// UpdateExpense replaces an existing expense. Month and year are recomputed
// from the new date.
func (s *expenseService) UpdateExpense(ctx context.Context, id string, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error) {
	if err := validateExpense(amount, category, date); err != nil {
		return nil, err
	}

	var expense models.Expense
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expense.Amount = amount
	expense.Category = category
	expense.SetDate(date)
	if err := s.db.WithContext(ctx).Save(&expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}
