// Package server wires handlers, middleware and services into the HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fintrack/internal/config"
	_ "fintrack/internal/docs" // swagger docs
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

// Services bundles the service layer the router depends on.
type Services struct {
	Salaries services.SalaryServicer
	Expenses services.ExpenseServicer
	Reports  services.ReportServicer
	Audit    services.AuditServicer
}

// NewServices builds the database-backed service layer.
func NewServices(db *gorm.DB, currency string) Services {
	salaries := services.NewSalaryService(db)
	expenses := services.NewExpenseService(db)
	return Services{
		Salaries: salaries,
		Expenses: expenses,
		Reports:  services.NewReportService(salaries, expenses, currency),
		Audit:    services.NewAuditService(db),
	}
}

// NewRouter builds the Gin engine with every API route registered.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	salaryHandler := handlers.NewSalaryHandler(svc.Salaries, svc.Audit)
	expenseHandler := handlers.NewExpenseHandler(svc.Expenses, svc.Audit)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	salaries := api.Group("/salaries")
	salaries.GET("", salaryHandler.ListSalaries)
	salaries.POST("", salaryHandler.CreateSalary)
	salaries.GET("/lookup", salaryHandler.LookupSalaries)
	salaries.PUT("/:id", salaryHandler.UpdateSalary)
	salaries.GET("/:id/history", auditHandler.SalaryHistory)

	expenses := api.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/export.csv", reportHandler.ExportExpensesCSV)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.GET("/:id/history", auditHandler.ExpenseHistory)

	api.GET("/categories", expenseHandler.ListCategories)

	reports := api.Group("/reports")
	reports.GET("/dashboard", reportHandler.GetDashboard)
	reports.GET("/expenses", reportHandler.GetExpenseReport)
	reports.GET("/distribution.png", reportHandler.GetDistributionChart)
	reports.GET("/monthly.xlsx", reportHandler.GetMonthlyWorkbook)

	return router
}
