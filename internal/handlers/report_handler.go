package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/export"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
)

// ReportHandler handles dashboard, report and export requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboard handles the dashboard aggregate
// @Summary     Get dashboard
// @Description Get all-time totals, the twelve-month series, the selected month, its change against the previous month and the category breakdown
// @Tags        reports
// @Produce     json
// @Param       year  query int false "Series year (defaults to the current year)"
// @Param       month query int false "Selected month 1-12 (defaults to the current month)"
// @Success     200 {object} services.Dashboard "Dashboard figures"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := queryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.reportService.Dashboard(c.Request.Context(), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// GetExpenseReport handles a time-windowed expense listing
// @Summary     Get filtered expenses
// @Description Get the expenses inside a time window with their total and per-category sums
// @Tags        reports
// @Produce     json
// @Param       window query string false "all, today, yesterday, thisWeek, thisMonth or custom" default(all)
// @Param       start  query string false "Custom window start (YYYY-MM-DD); without both bounds the window is unfiltered"
// @Param       end    query string false "Custom window end, inclusive (YYYY-MM-DD)"
// @Param       by     query string false "Timestamp to filter on: createdAt or date" default(createdAt)
// @Success     200 {object} services.ExpenseReport "Filtered expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/expenses [get]
func (h *ReportHandler) GetExpenseReport(c *gin.Context) {
	window, ok := report.ParseWindow(c.Query("window"))
	if !ok {
		respondWithError(c, apperrors.Field(apperrors.ErrInvalidInput, "window",
			fmt.Sprintf("window must be one of: %v", report.Windows)))
		return
	}

	var field report.Field
	switch c.DefaultQuery("by", "createdAt") {
	case "createdAt":
		field = report.ByCreatedAt
	case "date":
		field = report.ByExpenseDate
	default:
		respondWithError(c, apperrors.Field(apperrors.ErrInvalidInput, "by", "by must be createdAt or date"))
		return
	}

	var custom report.DateRange
	if window == report.WindowCustom {
		start, err := queryDate(c, "start")
		if err != nil {
			respondWithError(c, err)
			return
		}
		end, err := queryDate(c, "end")
		if err != nil {
			respondWithError(c, err)
			return
		}
		custom = report.DateRange{Start: start, End: end}
	}

	result, err := h.reportService.ExpenseReport(c.Request.Context(), window, custom, field)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDistributionChart handles the category pie chart
// @Summary     Get expense distribution chart
// @Description Render the all-time category distribution as a PNG pie chart
// @Tags        reports
// @Produce     png
// @Success     200 {file}   file          "PNG image"
// @Failure     404 {object} ErrorResponse "No expenses to chart"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/distribution.png [get]
func (h *ReportHandler) GetDistributionChart(c *gin.Context) {
	data, err := h.reportService.DistributionChart(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, export.ContentTypePNG, data)
}

// GetMonthlyWorkbook handles the XLSX export of a year
// @Summary     Export monthly workbook
// @Description Download the twelve-month series and the expenses of a year as an XLSX workbook
// @Tags        reports
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       year query int false "Year (defaults to the current year)"
// @Success     200 {file}   file          "XLSX workbook"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly.xlsx [get]
func (h *ReportHandler) GetMonthlyWorkbook(c *gin.Context) {
	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.reportService.MonthlyWorkbook(c.Request.Context(), year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := "monthly.xlsx"
	if year != 0 {
		filename = fmt.Sprintf("monthly-%d.xlsx", year)
	}
	attachment(c, filename, export.ContentTypeXLSX, data)
}

// ExportExpensesCSV handles the CSV export of every expense
// @Summary     Export expenses as CSV
// @Description Download every expense as a CSV file
// @Tags        expenses
// @Produce     text/csv
// @Success     200 {file}   file          "CSV file"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/export.csv [get]
func (h *ReportHandler) ExportExpensesCSV(c *gin.Context) {
	data, err := h.reportService.ExpensesCSV(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	attachment(c, "expenses.csv", export.ContentTypeCSV, data)
}

// queryDate parses an optional YYYY-MM-DD query parameter. A missing
// parameter yields the zero date.
func queryDate(c *gin.Context, name string) (models.Date, error) {
	raw := c.Query(name)
	if raw == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, apperrors.Field(apperrors.ErrInvalidInput, name, name+" must be a date in YYYY-MM-DD format")
	}
	return d, nil
}
