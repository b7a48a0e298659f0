// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/cashflow"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/ledger"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/dto"
)

// ReportController handles financial report endpoints. Report outputs are
// serialized as-is; they are read models shaped for the response already.
type ReportController struct {
	trialBalanceUseCase    *ledger.TrialBalanceUseCase
	balanceSheetUseCase    *ledger.BalanceSheetUseCase
	incomeStatementUseCase *ledger.IncomeStatementUseCase
	realizedMatrixUseCase  *cashflow.RealizedMatrixUseCase
	varianceUseCase        *cashflow.VarianceUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	trialBalanceUseCase *ledger.TrialBalanceUseCase,
	balanceSheetUseCase *ledger.BalanceSheetUseCase,
	incomeStatementUseCase *ledger.IncomeStatementUseCase,
	realizedMatrixUseCase *cashflow.RealizedMatrixUseCase,
	varianceUseCase *cashflow.VarianceUseCase,
) *ReportController {
	return &ReportController{
		trialBalanceUseCase:    trialBalanceUseCase,
		balanceSheetUseCase:    balanceSheetUseCase,
		incomeStatementUseCase: incomeStatementUseCase,
		realizedMatrixUseCase:  realizedMatrixUseCase,
		varianceUseCase:        varianceUseCase,
	}
}

// TrialBalance handles GET /reports/trial-balance requests.
func (c *ReportController) TrialBalance(ctx *gin.Context) {
	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	input := ledger.TrialBalanceInput{Year: year, Month: month}
	output, err := c.trialBalanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute trial balance",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// BalanceSheet handles GET /reports/balance-sheet requests. The cutoff
// defaults to today.
func (c *ReportController) BalanceSheet(ctx *gin.Context) {
	cutoff, ok := c.parseCutoff(ctx)
	if !ok {
		return
	}

	input := ledger.BalanceSheetInput{Cutoff: cutoff}
	output, err := c.balanceSheetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute balance sheet",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// IncomeStatement handles GET /reports/income-statement requests.
func (c *ReportController) IncomeStatement(ctx *gin.Context) {
	cutoff, ok := c.parseCutoff(ctx)
	if !ok {
		return
	}

	input := ledger.IncomeStatementInput{Cutoff: cutoff}
	output, err := c.incomeStatementUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute income statement",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// CashFlowMatrix handles GET /reports/cash-flow requests. It returns the
// realized matrix aggregated from actual transactions.
func (c *ReportController) CashFlowMatrix(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	input := cashflow.RealizedMatrixInput{Year: year}
	output, err := c.realizedMatrixUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute cash-flow matrix",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Matrix)
}

// Variance handles GET /reports/variance requests. It compares budgeted
// against realized amounts and includes deviation alerts.
func (c *ReportController) Variance(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	input := cashflow.VarianceInput{Year: year}
	output, err := c.varianceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute variance report",
		})
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// parseYear parses the required year query parameter.
func (c *ReportController) parseYear(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'year' is required",
		})
		return 0, false
	}
	return year, true
}

// parseYearMonth parses the required year and optional month query parameters.
func (c *ReportController) parseYearMonth(ctx *gin.Context) (int, int, bool) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return 0, 0, false
	}

	month := 0
	if monthStr := ctx.Query("month"); monthStr != "" {
		var err error
		month, err = strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Query parameter 'month' must be between 1 and 12",
			})
			return 0, 0, false
		}
	}
	return year, month, true
}

// parseCutoff parses the optional cutoff query parameter, defaulting to today.
func (c *ReportController) parseCutoff(ctx *gin.Context) (time.Time, bool) {
	cutoffStr := ctx.Query("cutoff")
	if cutoffStr == "" {
		return time.Now().UTC(), true
	}

	cutoff, err := time.Parse("2006-01-02", cutoffStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cutoff format. Use YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return cutoff, true
}
