// Package report turns flat salary and expense lists into the figures shown
// on the dashboard: monthly totals, savings rates, month-over-month changes
// and category distributions.
//
// Every function is pure and never returns an error. Missing numbers count
// as zero and a zero income yields a zero savings rate, so a dashboard can
// always be rendered; callers wanting strict behavior validate beforehand.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Amounted is implemented by records carrying a monetary amount.
type Amounted interface {
	MonetaryAmount() decimal.Decimal
}

// TotalOf sums the amounts of records.
func TotalOf[T Amounted](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.MonetaryAmount())
	}
	return total
}

// ParseAmount parses a decimal string, returning zero when s is not a number.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SavingsRate returns savings as a percentage of salary. It is zero whenever
// salary is not positive. The value is not rounded.
func SavingsRate(salary, savings decimal.Decimal) decimal.Decimal {
	if !salary.IsPositive() {
		return decimal.Zero
	}
	return savings.Div(salary).Mul(hundred)
}

// Totals are the all-time figures shown on the dashboard cards.
type Totals struct {
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetSavings decimal.Decimal `json:"netSavings"`
}

// Summarize totals every salary and expense regardless of period.
func Summarize(salaries []models.Salary, expenses []models.Expense) Totals {
	income := TotalOf(salaries)
	spent := TotalOf(expenses)
	return Totals{
		Income:     income,
		Expenses:   spent,
		NetSavings: income.Sub(spent),
	}
}

// MonthSummary holds one calendar month of a Series.
type MonthSummary struct {
	Month       int             `json:"monthNumber"`
	Year        int             `json:"year"`
	Label       string          `json:"month"`
	Name        string          `json:"monthName"`
	Salary      decimal.Decimal `json:"salary"`
	Expenses    decimal.Decimal `json:"expenses"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate decimal.Decimal `json:"savingsRate"`
}

// Series is a fixed January-to-December run of month summaries.
type Series [12]MonthSummary

// Month returns the summary for calendar month m (1-12).
func (s Series) Month(m int) (MonthSummary, bool) {
	if m < 1 || m > 12 {
		return MonthSummary{}, false
	}
	return s[m-1], true
}

// MonthlySeries builds the twelve monthly summaries for year.
//
// Records are matched on their month only; year labels the series but does
// not filter, so entries from different years land in the same month.
func MonthlySeries(salaries []models.Salary, expenses []models.Expense, year int) Series {
	var series Series
	for i := range series {
		m := time.Month(i + 1)
		series[i] = MonthSummary{
			Month:       i + 1,
			Year:        year,
			Label:       m.String()[:3],
			Name:        m.String(),
			Salary:      decimal.Zero,
			Expenses:    decimal.Zero,
			Savings:     decimal.Zero,
			SavingsRate: decimal.Zero,
		}
	}

	for _, s := range salaries {
		if s.Month >= 1 && s.Month <= 12 {
			series[s.Month-1].Salary = series[s.Month-1].Salary.Add(s.Amount)
		}
	}
	for _, e := range expenses {
		if e.Month >= 1 && e.Month <= 12 {
			series[e.Month-1].Expenses = series[e.Month-1].Expenses.Add(e.Amount)
		}
	}

	for i := range series {
		savings := series[i].Salary.Sub(series[i].Expenses)
		series[i].Savings = savings
		series[i].SavingsRate = SavingsRate(series[i].Salary, savings)
	}
	return series
}

// PreviousMonth returns the month before m, wrapping January to December.
func PreviousMonth(m int) int {
	if m == 1 {
		return 12
	}
	return m - 1
}

// Delta compares a selected month against the month before it.
type Delta struct {
	Month         int             `json:"month"`
	PreviousMonth int             `json:"previousMonth"`
	IncomeChange  decimal.Decimal `json:"incomeChange"`
	ExpenseChange decimal.Decimal `json:"expenseChange"`
}

// MonthOverMonthDelta compares selectedMonth with the preceding month of the
// same series. January is compared with December of that same series, not
// with the prior year. An out-of-range month yields zero changes.
func MonthOverMonthDelta(series Series, selectedMonth int) Delta {
	current, ok := series.Month(selectedMonth)
	if !ok {
		return Delta{Month: selectedMonth, IncomeChange: decimal.Zero, ExpenseChange: decimal.Zero}
	}
	prevMonth := PreviousMonth(selectedMonth)
	previous, _ := series.Month(prevMonth)

	return Delta{
		Month:         selectedMonth,
		PreviousMonth: prevMonth,
		IncomeChange:  current.Salary.Sub(previous.Salary),
		ExpenseChange: current.Expenses.Sub(previous.Expenses),
	}
}

// CategoryTotal is the summed amount of one expense category.
type CategoryTotal struct {
	Category models.ExpenseCategory `json:"category"`
	Total    decimal.Decimal        `json:"total"`
}

// CategoryBreakdown groups expenses by category in order of first
// appearance. Categories summing to zero are left out.
func CategoryBreakdown(expenses []models.Expense) []CategoryTotal {
	index := make(map[models.ExpenseCategory]int)
	var groups []CategoryTotal
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(e.Amount)
	}
	return withoutZeroTotals(groups)
}

// CategoryTotals sums expenses per category in the fixed display order of
// models.ExpenseCategories. Unknown categories and zero totals are left out.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	groups := make([]CategoryTotal, len(models.ExpenseCategories))
	index := make(map[models.ExpenseCategory]int, len(models.ExpenseCategories))
	for i, c := range models.ExpenseCategories {
		groups[i] = CategoryTotal{Category: c, Total: decimal.Zero}
		index[c] = i
	}
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			groups[i].Total = groups[i].Total.Add(e.Amount)
		}
	}
	return withoutZeroTotals(groups)
}

func withoutZeroTotals(groups []CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(groups))
	for _, g := range groups {
		if !g.Total.IsZero() {
			out = append(out, g)
		}
	}
	return out
}
