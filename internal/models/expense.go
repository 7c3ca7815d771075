package models

import "github.com/shopspring/decimal"

// ExpenseCategory is one of the fixed expense labels.
type ExpenseCategory string

const (
	CategoryRent          ExpenseCategory = "Rent"
	CategorySchoolFees    ExpenseCategory = "School Fees"
	CategoryCityTransport ExpenseCategory = "City Transport"
	CategoryVacation      ExpenseCategory = "Vacation"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryFood          ExpenseCategory = "Food"
	CategoryGrocery       ExpenseCategory = "Grocery"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryRent,
	CategorySchoolFees,
	CategoryCityTransport,
	CategoryVacation,
	CategoryShopping,
	CategoryFood,
	CategoryGrocery,
}

// Valid reports whether c belongs to the fixed category set.
func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single categorized spending entry. Month and Year always
// mirror Date; they are recomputed on every write.
type Expense struct {
	Base
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category ExpenseCategory `gorm:"not null;index" json:"category"`
	Date     Date            `gorm:"type:date;not null" json:"date"`
	Month    int             `gorm:"not null;index:idx_expenses_period" json:"month"`
	Year     int             `gorm:"not null;index:idx_expenses_period" json:"year"`
}

// MonetaryAmount returns the expense amount.
func (e Expense) MonetaryAmount() decimal.Decimal { return e.Amount }

// SetDate assigns the expense date and the derived month and year.
func (e *Expense) SetDate(d Date) {
	e.Date = d
	e.Month = d.Month()
	e.Year = d.Year()
}
