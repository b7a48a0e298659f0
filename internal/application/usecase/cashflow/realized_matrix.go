// Package cashflow contains realized cash-flow matrix use cases.
package cashflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/budget"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

const realizedCacheTTL = 10 * time.Minute

// RealizedMatrixInput represents the input for the realized matrix.
type RealizedMatrixInput struct {
	Year int
}

// RealizedMatrixOutput represents the realized matrix response. It shares
// the budget matrix shape so the two grids compare cell by cell.
type RealizedMatrixOutput struct {
	Matrix *budget.MatrixOutput
}

// RealizedMatrixUseCase aggregates realized transactions into the same
// 12-month grid the budget matrix uses. A category with both income and
// expense activity produces two rows, never one signed row.
type RealizedMatrixUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewRealizedMatrixUseCase creates a new RealizedMatrixUseCase instance.
func NewRealizedMatrixUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *RealizedMatrixUseCase {
	return &RealizedMatrixUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute builds the realized matrix for the year.
func (uc *RealizedMatrixUseCase) Execute(ctx context.Context, input RealizedMatrixInput) (*RealizedMatrixOutput, error) {
	if err := budget.ValidateYear(input.Year); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("report:%d:cashflow-matrix", input.Year)
	if uc.cache != nil {
		var cached budget.MatrixOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &RealizedMatrixOutput{Matrix: &cached}, nil
		}
	}

	totals, err := uc.transactionRepo.MonthlyTotalsByCategory(ctx, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	matrix := BuildMatrix(input.Year, totals)
	output := budget.ToMatrixOutput(matrix)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, output, realizedCacheTTL); err != nil {
			slog.Debug("Failed to cache realized matrix", "key", cacheKey, "error", err)
		}
	}

	return &RealizedMatrixOutput{Matrix: output}, nil
}

// rowKey separates income and expense activity of the same category.
type rowKey struct {
	CategoryID uuid.UUID
	Type       entity.TransactionType
}

// BuildMatrix folds aggregated cells into a YearMatrix with deterministic
// row order (category name, income before expense).
func BuildMatrix(year int, totals []adapter.CategoryMonthTotal) *entity.YearMatrix {
	rows := make(map[rowKey]*entity.MatrixRow)
	for _, cell := range totals {
		if cell.Month < 1 || cell.Month > entity.MonthsPerYear {
			continue
		}
		key := rowKey{CategoryID: cell.CategoryID, Type: cell.Type}
		row, ok := rows[key]
		if !ok {
			row = &entity.MatrixRow{
				CategoryID:   cell.CategoryID,
				CategoryName: cell.CategoryName,
				Type:         cell.Type,
				Total:        decimal.Zero,
			}
			for i := range row.Months {
				row.Months[i] = decimal.Zero
			}
			rows[key] = row
		}
		row.Months[cell.Month-1] = row.Months[cell.Month-1].Add(cell.Amount)
		row.Total = row.Total.Add(cell.Amount)
	}

	matrix := &entity.YearMatrix{Year: year}
	for _, row := range rows {
		matrix.Rows = append(matrix.Rows, *row)
	}
	sort.Slice(matrix.Rows, func(i, j int) bool {
		if matrix.Rows[i].CategoryName != matrix.Rows[j].CategoryName {
			return matrix.Rows[i].CategoryName < matrix.Rows[j].CategoryName
		}
		return matrix.Rows[i].Type == entity.TransactionTypeIncome
	})
	matrix.ComputeTotals()
	return matrix
}
