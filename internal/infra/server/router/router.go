// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/controller"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	journalController     *controller.JournalController
	reportController      *controller.ReportController
	budgetController      *controller.BudgetController
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	journalController *controller.JournalController,
	reportController *controller.ReportController,
	budgetController *controller.BudgetController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		transactionController: transactionController,
		journalController:     journalController,
		reportController:      reportController,
		budgetController:      budgetController,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Chart-of-accounts routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Deactivate)
				accounts.GET("/code/:code/path", r.accountController.ResolvePath)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Journal entry routes (require authentication)
		if r.journalController != nil && r.authMiddleware != nil {
			entries := v1.Group("/journal-entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.journalController.List)
				entries.PATCH("/:id/status", r.journalController.UpdateStatus)
				entries.POST("/catch-up", r.journalController.CatchUp)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/trial-balance", r.reportController.TrialBalance)
				reports.GET("/balance-sheet", r.reportController.BalanceSheet)
				reports.GET("/income-statement", r.reportController.IncomeStatement)
				reports.GET("/cash-flow", r.reportController.CashFlowMatrix)
				reports.GET("/variance", r.reportController.Variance)
			}
		}

		// Budget matrix routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budget")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("/matrix", r.budgetController.GetMatrix)
				budgets.PUT("/matrix", r.budgetController.SaveMatrix)
				budgets.POST("/import", r.budgetController.ImportCSV)
				budgets.GET("/export", r.budgetController.ExportCSV)
			}
		}
	}
}
