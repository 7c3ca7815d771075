package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fintrack/internal/services"
)

// SalaryHandler handles salary-related requests.
type SalaryHandler struct {
	salaryService services.SalaryServicer
	auditService  services.AuditServicer
}

// NewSalaryHandler creates a new SalaryHandler.
func NewSalaryHandler(salaryService services.SalaryServicer, auditService services.AuditServicer) *SalaryHandler {
	return &SalaryHandler{salaryService: salaryService, auditService: auditService}
}

// SalaryRequest is the payload for creating or replacing a salary entry.
// ID is optional and, when present on update, must match the path.
type SalaryRequest struct {
	ID     string           `json:"id"`
	Amount *decimal.Decimal `json:"amount" binding:"required,nonnegative_amount" swaggertype:"number"`
	Month  int              `json:"month" binding:"required,min=1,max=12"`
	Year   int              `json:"year" binding:"required,min=1900,max=9999"`
}

// ListSalaries handles the retrieval of every salary entry
// @Summary     List salaries
// @Description Get every recorded salary entry, oldest first
// @Tags        salaries
// @Produce     json
// @Success     200 {array}  models.Salary "List of salaries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries [get]
func (h *SalaryHandler) ListSalaries(c *gin.Context) {
	salaries, err := h.salaryService.ListSalaries(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, salaries)
}

// LookupSalaries handles the duplicate pre-check for a month and year
// @Summary     Find salaries for a period
// @Description Get the salary entries already recorded for a month and year
// @Tags        salaries
// @Produce     json
// @Param       month query int true "Month (1-12)"
// @Param       year  query int true "Year"
// @Success     200 {array}  models.Salary "Matching salaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries/lookup [get]
func (h *SalaryHandler) LookupSalaries(c *gin.Context) {
	month, err := queryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	salaries, err := h.salaryService.FindSalariesForPeriod(c.Request.Context(), month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, salaries)
}

// CreateSalary handles the creation of a salary entry
// @Summary     Create a salary
// @Description Record a salary for a month and year. Several entries may share a period.
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Param       request body SalaryRequest true "Salary details"
// @Success     201 {object} models.Salary "Salary created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries [post]
func (h *SalaryHandler) CreateSalary(c *gin.Context) {
	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	salary, err := h.salaryService.CreateSalary(c.Request.Context(), *req.Amount, req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), services.AuditEntry{
		Action:       services.ActionCreateSalary,
		ResourceType: services.ResourceSalary,
		ResourceID:   salary.ID,
		IPAddress:    c.ClientIP(),
		Snapshot:     salary,
	})

	c.JSON(http.StatusCreated, salary)
}

// UpdateSalary handles the replacement of a salary entry
// @Summary     Update a salary
// @Description Replace the amount and period of an existing salary entry
// @Tags        salaries
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Salary ID"
// @Param       request body SalaryRequest true "Salary details"
// @Success     200 {object} models.Salary "Salary updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Salary not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries/{id} [put]
func (h *SalaryHandler) UpdateSalary(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	if err := checkBodyID(id, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	salary, err := h.salaryService.UpdateSalary(c.Request.Context(), id, *req.Amount, req.Month, req.Year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), services.AuditEntry{
		Action:       services.ActionUpdateSalary,
		ResourceType: services.ResourceSalary,
		ResourceID:   salary.ID,
		IPAddress:    c.ClientIP(),
		Snapshot:     salary,
	})

	c.JSON(http.StatusOK, salary)
}
