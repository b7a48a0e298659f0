// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/budget"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/dto"
)

// BudgetController handles budget matrix endpoints.
type BudgetController struct {
	getMatrixUseCase  *budget.GetMatrixUseCase
	saveMatrixUseCase *budget.SaveMatrixUseCase
	importCSVUseCase  *budget.ImportCSVUseCase
	exportCSVUseCase  *budget.ExportCSVUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getMatrixUseCase *budget.GetMatrixUseCase,
	saveMatrixUseCase *budget.SaveMatrixUseCase,
	importCSVUseCase *budget.ImportCSVUseCase,
	exportCSVUseCase *budget.ExportCSVUseCase,
) *BudgetController {
	return &BudgetController{
		getMatrixUseCase:  getMatrixUseCase,
		saveMatrixUseCase: saveMatrixUseCase,
		importCSVUseCase:  importCSVUseCase,
		exportCSVUseCase:  exportCSVUseCase,
	}
}

// GetMatrix handles GET /budget/matrix requests.
func (c *BudgetController) GetMatrix(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	output, err := c.getMatrixUseCase.Execute(ctx.Request.Context(), budget.GetMatrixInput{Year: year})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output.Matrix)
}

// SaveMatrix handles PUT /budget/matrix requests. The submitted rows
// replace the year's budget as a whole.
func (c *BudgetController) SaveMatrix(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	var req dto.SaveBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.SaveMatrixInput{
		Year: year,
		Rows: make([]budget.SaveMatrixRow, len(req.Rows)),
	}
	for i, row := range req.Rows {
		categoryID, err := uuid.Parse(row.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("Invalid category ID in row %d", i+1),
			})
			return
		}

		var months [entity.MonthsPerYear]decimal.Decimal
		for m, raw := range row.Months {
			if raw == "" {
				continue
			}
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: fmt.Sprintf("Invalid amount in row %d, month %d", i+1, m+1),
				})
				return
			}
			months[m] = amount
		}

		input.Rows[i] = budget.SaveMatrixRow{
			CategoryID: categoryID,
			Months:     months,
		}
	}

	output, err := c.saveMatrixUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SaveBudgetResponse{Saved: output.Saved})
}

// ImportCSV handles POST /budget/import requests. The CSV is read from the
// request body and applied all-or-nothing: any invalid row rejects the
// whole file with a per-row error report.
func (c *BudgetController) ImportCSV(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	input := budget.ImportCSVInput{
		Year:   year,
		Reader: ctx.Request.Body,
	}

	output, err := c.importCSVUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportBudgetResponse{Imported: output.Imported})
}

// ExportCSV handles GET /budget/export requests. It streams the year's
// budget matrix as a CSV attachment.
func (c *BudgetController) ExportCSV(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="presupuesto-%d.csv"`, year))

	input := budget.ExportCSVInput{
		Year:   year,
		Writer: ctx.Writer,
	}
	if err := c.exportCSVUseCase.Execute(ctx.Request.Context(), input); err != nil {
		// Headers are gone already; all we can do is drop the connection.
		ctx.Abort()
	}
}

// parseYear parses the required year query parameter.
func (c *BudgetController) parseYear(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'year' is required",
		})
		return 0, false
	}
	return year, true
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var importErr *domainerror.CSVImportError
	if errors.As(err, &importErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "CSV import rejected",
			Code:    string(domainerror.ErrCodeCSVImportRejected),
			Details: dto.ToCSVRowErrorResponses(importErr.Rows),
		})
		return
	}

	var bgtErr *domainerror.BudgetError
	if errors.As(err, &bgtErr) {
		status := http.StatusUnprocessableEntity
		if bgtErr.Code == domainerror.ErrCodeInvalidBudgetYear {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: bgtErr.Message,
			Code:  string(bgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
