package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// AuditHandler serves the recorded write history of salaries and expenses.
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// SalaryHistory handles the retrieval of a salary's audit trail
// @Summary     Salary history
// @Description Get the create and update events recorded for a salary, oldest first
// @Tags        audit
// @Produce     json
// @Param       id path string true "Salary ID"
// @Success     200 {array}  models.AuditLog "Audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salaries/{id}/history [get]
func (h *AuditHandler) SalaryHistory(c *gin.Context) {
	h.history(c, services.ResourceSalary)
}

// ExpenseHistory handles the retrieval of an expense's audit trail
// @Summary     Expense history
// @Description Get the create and update events recorded for an expense, oldest first
// @Tags        audit
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {array}  models.AuditLog "Audit entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id}/history [get]
func (h *AuditHandler) ExpenseHistory(c *gin.Context) {
	h.history(c, services.ResourceExpense)
}

func (h *AuditHandler) history(c *gin.Context, resourceType string) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.auditService.History(c.Request.Context(), resourceType, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
