package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

const testID = "0190f5a4-1b2c-7d3e-8f40-123456789abc"

// --- mock services ---

type mockSalaryService struct {
	listFn   func(ctx context.Context) ([]models.Salary, error)
	findFn   func(ctx context.Context, month, year int) ([]models.Salary, error)
	createFn func(ctx context.Context, amount decimal.Decimal, month, year int) (*models.Salary, error)
	updateFn func(ctx context.Context, id string, amount decimal.Decimal, month, year int) (*models.Salary, error)
}

func (m *mockSalaryService) ListSalaries(ctx context.Context) ([]models.Salary, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Salary{}, nil
}

func (m *mockSalaryService) FindSalariesForPeriod(ctx context.Context, month, year int) ([]models.Salary, error) {
	if m.findFn != nil {
		return m.findFn(ctx, month, year)
	}
	return []models.Salary{}, nil
}

func (m *mockSalaryService) CreateSalary(ctx context.Context, amount decimal.Decimal, month, year int) (*models.Salary, error) {
	if m.createFn != nil {
		return m.createFn(ctx, amount, month, year)
	}
	return &models.Salary{Base: models.Base{ID: testID}, Amount: amount, Month: month, Year: year}, nil
}

func (m *mockSalaryService) UpdateSalary(ctx context.Context, id string, amount decimal.Decimal, month, year int) (*models.Salary, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, amount, month, year)
	}
	return &models.Salary{Base: models.Base{ID: id}, Amount: amount, Month: month, Year: year}, nil
}

type mockExpenseService struct {
	listFn   func(ctx context.Context) ([]models.Expense, error)
	createFn func(ctx context.Context, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error)
	updateFn func(ctx context.Context, id string, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(ctx, amount, category, date)
	}
	e := &models.Expense{Base: models.Base{ID: testID}, Amount: amount, Category: category}
	e.SetDate(date)
	return e, nil
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id string, amount decimal.Decimal, category models.ExpenseCategory, date models.Date) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, amount, category, date)
	}
	e := &models.Expense{Base: models.Base{ID: id}, Amount: amount, Category: category}
	e.SetDate(date)
	return e, nil
}

type mockReportService struct {
	dashboardFn func(ctx context.Context, year, month int) (*services.Dashboard, error)
	expensesFn  func(ctx context.Context, window report.Window, custom report.DateRange, field report.Field) (*services.ExpenseReport, error)
	chartFn     func(ctx context.Context) ([]byte, error)
	workbookFn  func(ctx context.Context, year int) ([]byte, error)
	csvFn       func(ctx context.Context) ([]byte, error)
}

func (m *mockReportService) Dashboard(ctx context.Context, year, month int) (*services.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, year, month)
	}
	return &services.Dashboard{Year: year, SelectedMonth: month}, nil
}

func (m *mockReportService) ExpenseReport(ctx context.Context, window report.Window, custom report.DateRange, field report.Field) (*services.ExpenseReport, error) {
	if m.expensesFn != nil {
		return m.expensesFn(ctx, window, custom, field)
	}
	return &services.ExpenseReport{Window: window, Expenses: []models.Expense{}}, nil
}

func (m *mockReportService) DistributionChart(ctx context.Context) ([]byte, error) {
	if m.chartFn != nil {
		return m.chartFn(ctx)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func (m *mockReportService) MonthlyWorkbook(ctx context.Context, year int) ([]byte, error) {
	if m.workbookFn != nil {
		return m.workbookFn(ctx, year)
	}
	return []byte("PK"), nil
}

func (m *mockReportService) ExpensesCSV(ctx context.Context) ([]byte, error) {
	if m.csvFn != nil {
		return m.csvFn(ctx)
	}
	return []byte("ID,Date\n"), nil
}

type auditCall struct {
	action, resourceType, resourceID string
}

type mockAuditService struct {
	calls     []auditCall
	historyFn func(ctx context.Context, resourceType, resourceID string) ([]models.AuditLog, error)
}

func (m *mockAuditService) Record(_ context.Context, entry services.AuditEntry) {
	m.calls = append(m.calls, auditCall{action: entry.Action, resourceType: entry.ResourceType, resourceID: entry.ResourceID})
}

func (m *mockAuditService) History(ctx context.Context, resourceType, resourceID string) ([]models.AuditLog, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, resourceType, resourceID)
	}
	return []models.AuditLog{}, nil
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertErrorField(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	errObj, _ := result["error"].(map[string]interface{})
	fields, ok := errObj["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected field errors in response, got: %v", result)
	}
	if _, ok := fields[field]; !ok {
		t.Errorf("expected field error for %q, got %v", field, fields)
	}
}
