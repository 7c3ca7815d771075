package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/reports/dashboard", handler.GetDashboard)
	r.GET("/reports/expenses", handler.GetExpenseReport)
	r.GET("/reports/distribution.png", handler.GetDistributionChart)
	r.GET("/reports/monthly.xlsx", handler.GetMonthlyWorkbook)
	r.GET("/expenses/export.csv", handler.ExportExpensesCSV)
	return r
}

func TestReportHandler_GetDashboard(t *testing.T) {
	t.Run("passes period", func(t *testing.T) {
		var gotYear, gotMonth int
		svc := &mockReportService{
			dashboardFn: func(_ context.Context, year, month int) (*services.Dashboard, error) {
				gotYear, gotMonth = year, month
				return &services.Dashboard{Year: year, SelectedMonth: month}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/dashboard?year=2024&month=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotYear != 2024 || gotMonth != 2 {
			t.Errorf("expected 2/2024, got %d/%d", gotMonth, gotYear)
		}
		monthly, ok := parseJSON(t, rec)["monthly"].([]interface{})
		if !ok || len(monthly) != 12 {
			t.Errorf("expected 12 monthly entries, got %v", monthly)
		}
	})

	t.Run("defaults to zero period", func(t *testing.T) {
		var gotYear, gotMonth = -1, -1
		svc := &mockReportService{
			dashboardFn: func(_ context.Context, year, month int) (*services.Dashboard, error) {
				gotYear, gotMonth = year, month
				return &services.Dashboard{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		doRequest(r, "GET", "/reports/dashboard", "")

		if gotYear != 0 || gotMonth != 0 {
			t.Errorf("expected zero period to be passed through, got %d/%d", gotMonth, gotYear)
		}
	})

	t.Run("returns 400 on bad year", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/dashboard?year=twenty", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorField(t, parseJSON(t, rec), "year")
	})
}

func TestReportHandler_GetExpenseReport(t *testing.T) {
	t.Run("parses custom window", func(t *testing.T) {
		var gotWindow report.Window
		var gotRange report.DateRange
		var gotField report.Field
		svc := &mockReportService{
			expensesFn: func(_ context.Context, window report.Window, custom report.DateRange, field report.Field) (*services.ExpenseReport, error) {
				gotWindow, gotRange, gotField = window, custom, field
				return &services.ExpenseReport{Window: window, Expenses: []models.Expense{}}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/expenses?window=custom&start=2025-06-01&end=2025-06-30&by=date", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotWindow != report.WindowCustom || gotField != report.ByExpenseDate {
			t.Errorf("unexpected window %q field %d", gotWindow, gotField)
		}
		if gotRange.Start.String() != "2025-06-01" || gotRange.End.String() != "2025-06-30" {
			t.Errorf("unexpected range %s..%s", gotRange.Start, gotRange.End)
		}
	})

	t.Run("defaults to all by createdAt", func(t *testing.T) {
		gotWindow := report.Window("")
		gotField := report.ByExpenseDate
		svc := &mockReportService{
			expensesFn: func(_ context.Context, window report.Window, _ report.DateRange, field report.Field) (*services.ExpenseReport, error) {
				gotWindow, gotField = window, field
				return &services.ExpenseReport{}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		doRequest(r, "GET", "/reports/expenses", "")

		if gotWindow != report.WindowAll || gotField != report.ByCreatedAt {
			t.Errorf("expected all/createdAt, got %q/%d", gotWindow, gotField)
		}
	})

	invalid := []struct {
		name  string
		query string
		field string
	}{
		{"unknown window", "?window=lastYear", "window"},
		{"unknown field", "?by=updatedAt", "by"},
		{"malformed start", "?window=custom&start=June&end=2025-06-30", "start"},
	}
	for _, tc := range invalid {
		t.Run("returns 400 on "+tc.name, func(t *testing.T) {
			r := setupReportRouter(NewReportHandler(&mockReportService{}))

			rec := doRequest(r, "GET", "/reports/expenses"+tc.query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorField(t, parseJSON(t, rec), tc.field)
		})
	}
}

func TestReportHandler_Downloads(t *testing.T) {
	t.Run("chart is png", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/distribution.png", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected image/png, got %q", ct)
		}
	})

	t.Run("chart without expenses is 404", func(t *testing.T) {
		svc := &mockReportService{
			chartFn: func(context.Context) ([]byte, error) { return nil, apperrors.ErrNothingToChart },
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/reports/distribution.png", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOTHING_TO_CHART")
	})

	t.Run("workbook is an attachment", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/reports/monthly.xlsx?year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "monthly-2025.xlsx") {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
	})

	t.Run("csv is an attachment", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/expenses/export.csv", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("expected text/csv, got %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "expenses.csv") {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}
	})
}
