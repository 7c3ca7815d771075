package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

func setupSalaryRouter(handler *SalaryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/salaries", handler.ListSalaries)
	r.GET("/salaries/lookup", handler.LookupSalaries)
	r.POST("/salaries", handler.CreateSalary)
	r.PUT("/salaries/:id", handler.UpdateSalary)
	return r
}

func TestSalaryHandler_ListSalaries(t *testing.T) {
	t.Run("returns 200 with a bare array", func(t *testing.T) {
		svc := &mockSalaryService{
			listFn: func(context.Context) ([]models.Salary, error) {
				return []models.Salary{
					{Base: models.Base{ID: testID}, Amount: decimal.NewFromInt(5000), Month: 1, Year: 2025},
				}, nil
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/salaries", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		items := parseJSONArray(t, rec)
		if len(items) != 1 {
			t.Fatalf("expected 1 salary, got %d", len(items))
		}
		item := items[0].(map[string]interface{})
		if item["id"] != testID || item["month"] != float64(1) {
			t.Errorf("unexpected salary: %v", item)
		}
		if _, ok := item["createdAt"]; !ok {
			t.Error("expected createdAt in camelCase")
		}
	})

	t.Run("returns 500 on service failure", func(t *testing.T) {
		svc := &mockSalaryService{
			listFn: func(context.Context) ([]models.Salary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/salaries", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestSalaryHandler_LookupSalaries(t *testing.T) {
	t.Run("passes month and year", func(t *testing.T) {
		var gotMonth, gotYear int
		svc := &mockSalaryService{
			findFn: func(_ context.Context, month, year int) ([]models.Salary, error) {
				gotMonth, gotYear = month, year
				return []models.Salary{}, nil
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/salaries/lookup?month=4&year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth != 4 || gotYear != 2025 {
			t.Errorf("expected 4/2025, got %d/%d", gotMonth, gotYear)
		}
	})

	t.Run("returns 400 on non-numeric month", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/salaries/lookup?month=april&year=2025", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorField(t, parseJSON(t, rec), "month")
	})
}

func TestSalaryHandler_CreateSalary(t *testing.T) {
	t.Run("returns 201 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, audit))

		rec := doRequest(r, "POST", "/salaries", `{"amount":"5000.50","month":3,"year":2025}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["id"] != testID {
			t.Errorf("expected id %s, got %v", testID, result["id"])
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.ActionCreateSalary {
			t.Errorf("expected one CREATE_SALARY audit call, got %v", audit.calls)
		}
	})

	t.Run("accepts numeric amount", func(t *testing.T) {
		var got decimal.Decimal
		svc := &mockSalaryService{
			createFn: func(_ context.Context, amount decimal.Decimal, month, year int) (*models.Salary, error) {
				got = amount
				return &models.Salary{Base: models.Base{ID: testID}, Amount: amount, Month: month, Year: year}, nil
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/salaries", `{"amount":1234.56,"month":3,"year":2025}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Equal(decimal.RequireFromString("1234.56")) {
			t.Errorf("expected amount 1234.56, got %s", got)
		}
	})

	invalid := []struct {
		name  string
		body  string
		field string
	}{
		{"missing amount", `{"month":3,"year":2025}`, "amount"},
		{"negative amount", `{"amount":-1,"month":3,"year":2025}`, "amount"},
		{"month out of range", `{"amount":1,"month":13,"year":2025}`, "month"},
		{"missing year", `{"amount":1,"month":3}`, "year"},
	}
	for _, tc := range invalid {
		t.Run("returns 400 on "+tc.name, func(t *testing.T) {
			audit := &mockAuditService{}
			r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, audit))

			rec := doRequest(r, "POST", "/salaries", tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			assertErrorCode(t, result, "INVALID_INPUT")
			assertErrorField(t, result, tc.field)
			if len(audit.calls) != 0 {
				t.Error("rejected requests must not be audited")
			}
		})
	}

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/salaries", `{"amount":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSalaryHandler_UpdateSalary(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID string
		svc := &mockSalaryService{
			updateFn: func(_ context.Context, id string, amount decimal.Decimal, month, year int) (*models.Salary, error) {
				gotID = id
				return &models.Salary{Base: models.Base{ID: id}, Amount: amount, Month: month, Year: year}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupSalaryRouter(NewSalaryHandler(svc, audit))

		rec := doRequest(r, "PUT", "/salaries/"+testID, `{"id":"`+testID+`","amount":10,"month":2,"year":2025}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testID {
			t.Errorf("expected id %s, got %s", testID, gotID)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.ActionUpdateSalary {
			t.Errorf("expected one UPDATE_SALARY audit call, got %v", audit.calls)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockSalaryService{
			updateFn: func(context.Context, string, decimal.Decimal, int, int) (*models.Salary, error) {
				return nil, apperrors.ErrSalaryNotFound
			},
		}
		r := setupSalaryRouter(NewSalaryHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/salaries/"+testID, `{"amount":10,"month":2,"year":2025}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "SALARY_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/salaries/42", `{"amount":10,"month":2,"year":2025}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorField(t, parseJSON(t, rec), "id")
	})

	t.Run("returns 400 when body id disagrees", func(t *testing.T) {
		r := setupSalaryRouter(NewSalaryHandler(&mockSalaryService{}, &mockAuditService{}))

		body := `{"id":"0190f5a4-0000-7000-8000-000000000000","amount":10,"month":2,"year":2025}`
		rec := doRequest(r, "PUT", "/salaries/"+testID, body)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorField(t, parseJSON(t, rec), "id")
	})
}
