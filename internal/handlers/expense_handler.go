package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest is the payload for creating or replacing an expense.
// Month and Year are accepted for compatibility but always derived from Date.
type ExpenseRequest struct {
	ID       string                 `json:"id"`
	Amount   *decimal.Decimal       `json:"amount" binding:"required,nonnegative_amount" swaggertype:"number"`
	Category models.ExpenseCategory `json:"category" binding:"required,expense_category"`
	Date     string                 `json:"date" binding:"required,iso_date" example:"2025-06-18"`
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
}

// CategoriesResponse lists the accepted expense categories.
type CategoriesResponse struct {
	Categories []models.ExpenseCategory `json:"categories"`
}

// ListExpenses handles the retrieval of every expense
// @Summary     List expenses
// @Description Get every recorded expense, oldest first
// @Tags        expenses
// @Produce     json
// @Success     200 {array}  models.Expense "List of expenses"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles the creation of an expense
// @Summary     Create an expense
// @Description Record an expense. Month and year are derived from the date.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), *req.Amount, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), services.AuditEntry{
		Action:       services.ActionCreateExpense,
		ResourceType: services.ResourceExpense,
		ResourceID:   expense.ID,
		IPAddress:    c.ClientIP(),
		Snapshot:     expense,
	})

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense handles the replacement of an expense
// @Summary     Update an expense
// @Description Replace an existing expense. Month and year are recomputed from the date.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	if err := checkBodyID(id, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, *req.Amount, req.Category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), services.AuditEntry{
		Action:       services.ActionUpdateExpense,
		ResourceType: services.ResourceExpense,
		ResourceID:   expense.ID,
		IPAddress:    c.ClientIP(),
		Snapshot:     expense,
	})

	c.JSON(http.StatusOK, expense)
}

// ListCategories handles the retrieval of the fixed category list
// @Summary     List expense categories
// @Description Get the closed set of categories an expense may use
// @Tags        expenses
// @Produce     json
// @Success     200 {object} CategoriesResponse "Categories in display order"
// @Router      /categories [get]
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: models.ExpenseCategories})
}

func parseDate(s string) (models.Date, error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, apperrors.Field(apperrors.ErrInvalidInput, "date", "date must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

