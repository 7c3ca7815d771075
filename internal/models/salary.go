package models

import "github.com/shopspring/decimal"

// Salary is the income recorded for one calendar month. Several entries may
// exist for the same month and year; reports sum them.
type Salary struct {
	Base
	Amount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Month  int             `gorm:"not null;index:idx_salaries_period" json:"month"`
	Year   int             `gorm:"not null;index:idx_salaries_period" json:"year"`
}

// MonetaryAmount returns the salary amount.
func (s Salary) MonetaryAmount() decimal.Decimal { return s.Amount }
