package services

import (
	"context"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

// SalaryServicer defines the contract for salary persistence.
type SalaryServicer interface {
	ListSalaries(ctx context.Context) ([]models.Salary, error)
	FindSalariesForPeriod(ctx context.Context, month, year int) ([]models.Salary, error)
	CreateSalary(ctx context.Context, amount decimal.Decimal, month, year int) (*models.Salary, error)
	UpdateSalary(ctx context.Context, id string, amount decimal.Decimal, month, year int) (*models.Salary, error)
}

// ExpenseServicer defines the contract for expense persistence.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error)
	UpdateExpense(ctx context.Context, id string, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error)
}

// Dashboard is everything the dashboard page renders for one selected month.
type Dashboard struct {
	Year          int                    `json:"year"`
	SelectedMonth int                    `json:"selectedMonth"`
	Totals        report.Totals          `json:"totals"`
	Monthly       report.Series          `json:"monthly"`
	Selected      report.MonthSummary    `json:"selected"`
	Delta         report.Delta           `json:"delta"`
	Categories    []report.CategoryTotal `json:"categories"`
}

// ExpenseReport is a filtered view of the expense list with its totals.
type ExpenseReport struct {
	Window     report.Window          `json:"window"`
	Expenses   []models.Expense       `json:"expenses"`
	Total      decimal.Decimal        `json:"total"`
	Categories []report.CategoryTotal `json:"categories"`
}

// ReportServicer defines the contract for aggregated reports and exports.
type ReportServicer interface {
	Dashboard(ctx context.Context, year, month int) (*Dashboard, error)
	ExpenseReport(ctx context.Context, window report.Window, custom report.DateRange, field report.Field) (*ExpenseReport, error)
	DistributionChart(ctx context.Context) ([]byte, error)
	MonthlyWorkbook(ctx context.Context, year int) ([]byte, error)
	ExpensesCSV(ctx context.Context) ([]byte, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Record(ctx context.Context, entry AuditEntry)
	History(ctx context.Context, resourceType, resourceID string) ([]models.AuditLog, error)
}
