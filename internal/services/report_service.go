package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// reportService builds dashboard figures and file exports from the salary
// and expense collections.
type reportService struct {
	salaries SalaryServicer
	expenses ExpenseServicer
	currency string
	now      func() time.Time
}

// NewReportService creates a new ReportServicer. currency labels exported
// amounts.
func NewReportService(salaries SalaryServicer, expenses ExpenseServicer, currency string) ReportServicer {
	return &reportService{
		salaries: salaries,
		expenses: expenses,
		currency: currency,
		now:      time.Now,
	}
}

// load fetches both collections concurrently.
func (s *reportService) load(ctx context.Context) ([]models.Salary, []models.Expense, error) {
	var salaries []models.Salary
	var expenses []models.Expense

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		salaries, err = s.salaries.ListSalaries(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenses.ListExpenses(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return salaries, expenses, nil
}

// Dashboard aggregates every record into the figures for year and month.
// A zero year or month defaults to the current one.
func (s *reportService) Dashboard(ctx context.Context, year, month int) (*Dashboard, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	salaries, expenses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	series := report.MonthlySeries(salaries, expenses, year)
	selected, _ := series.Month(month)

	return &Dashboard{
		Year:          year,
		SelectedMonth: month,
		Totals:        report.Summarize(salaries, expenses),
		Monthly:       series,
		Selected:      selected,
		Delta:         report.MonthOverMonthDelta(series, month),
		Categories:    report.CategoryBreakdown(expenses),
	}, nil
}

// ExpenseReport returns the expenses falling in window, with their total and
// per-category sums.
func (s *reportService) ExpenseReport(ctx context.Context, window report.Window, custom report.DateRange, field report.Field) (*ExpenseReport, error) {
	// A custom window missing either bound is unfiltered.
	if window == report.WindowCustom && custom.Complete() && custom.End.Before(custom.Start) {
		return nil, apperrors.Field(apperrors.ErrInvalidInput, "end", "end must not be before start")
	}

	expenses, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	filtered := report.FilterExpensesBy(field, expenses, window, custom, s.now())
	return &ExpenseReport{
		Window:     window,
		Expenses:   filtered,
		Total:      report.TotalOf(filtered),
		Categories: report.CategoryTotals(filtered),
	}, nil
}

// DistributionChart renders the all-time category breakdown as a PNG.
func (s *reportService) DistributionChart(ctx context.Context) ([]byte, error) {
	expenses, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.DistributionChart(report.CategoryTotals(expenses), "Expense distribution ("+s.currency+")")
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			return nil, apperrors.ErrNothingToChart
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// MonthlyWorkbook exports the series for year together with the expenses
// dated in that year.
func (s *reportService) MonthlyWorkbook(ctx context.Context, year int) ([]byte, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if err := validatePeriod(1, year); err != nil {
		return nil, err
	}

	salaries, expenses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ofYear := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Year == year {
			ofYear = append(ofYear, e)
		}
	}

	data, err := export.MonthlyWorkbook(report.MonthlySeries(salaries, expenses, year), ofYear, s.currency)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// ExpensesCSV exports every expense.
func (s *reportService) ExpensesCSV(ctx context.Context) ([]byte, error) {
	expenses, err := s.expenses.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.ExpensesCSV(expenses, s.currency)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}
