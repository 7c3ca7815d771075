package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// salaryService handles salary persistence.
type salaryService struct {
	db *gorm.DB
}

// NewSalaryService creates a new SalaryServicer.
func NewSalaryService(db *gorm.DB) SalaryServicer {
	return &salaryService{db: db}
}

// ListSalaries returns every salary entry, oldest first.
func (s *salaryService) ListSalaries(ctx context.Context) ([]models.Salary, error) {
	salaries := make([]models.Salary, 0)
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&salaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return salaries, nil
}

// FindSalariesForPeriod returns the entries already recorded for a month and
// year, so callers can offer to modify one instead of adding a duplicate.
func (s *salaryService) FindSalariesForPeriod(ctx context.Context, month, year int) ([]models.Salary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	salaries := make([]models.Salary, 0)
	if err := s.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC, id ASC").
		Find(&salaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return salaries, nil
}

// CreateSalary records a new salary entry. Duplicate periods are allowed.
func (s *salaryService) CreateSalary(ctx context.Context, amount decimal.Decimal, month, year int) (*models.Salary, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	salary := &models.Salary{
		Amount: amount,
		Month:  month,
		Year:   year,
	}
	if err := s.db.WithContext(ctx).Create(salary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return salary, nil
}

// UpdateSalary replaces the amount and period of an existing entry.
func (s *salaryService) UpdateSalary(ctx context.Context, id string, amount decimal.Decimal, month, year int) (*models.Salary, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	var salary models.Salary
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSalaryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	salary.Amount = amount
	salary.Month = month
	salary.Year = year
	if err := s.db.WithContext(ctx).Save(&salary).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &salary, nil
}
