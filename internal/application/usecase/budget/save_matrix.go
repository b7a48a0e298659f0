// Package budget contains budget projection matrix use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// SaveMatrixRow is one category's planned amounts in a save request.
type SaveMatrixRow struct {
	CategoryID uuid.UUID
	Months     [entity.MonthsPerYear]decimal.Decimal
}

// SaveMatrixInput represents the input for replacing a budget year.
type SaveMatrixInput struct {
	Year int
	Rows []SaveMatrixRow
}

// SaveMatrixOutput represents the result of a budget year save.
type SaveMatrixOutput struct {
	Saved int
}

// SaveMatrixUseCase replaces all projection rows of a year atomically.
// Replace semantics are intentional: a partial update could leave months
// from a previous save behind.
type SaveMatrixUseCase struct {
	accountRepo adapter.AccountRepository
	budgetRepo  adapter.BudgetRepository
	cache       adapter.ReportCache
	locks       *yearLocks
}

// NewSaveMatrixUseCase creates a new SaveMatrixUseCase instance.
func NewSaveMatrixUseCase(
	accountRepo adapter.AccountRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ReportCache,
) *SaveMatrixUseCase {
	return &SaveMatrixUseCase{
		accountRepo: accountRepo,
		budgetRepo:  budgetRepo,
		cache:       cache,
		locks:       newYearLocks(),
	}
}

// Execute validates the rows and replaces the year.
func (uc *SaveMatrixUseCase) Execute(ctx context.Context, input SaveMatrixInput) (*SaveMatrixOutput, error) {
	if err := ValidateYear(input.Year); err != nil {
		return nil, err
	}

	projections, err := uc.buildProjections(ctx, input)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.lock(input.Year)
	defer unlock()

	if err := uc.budgetRepo.ReplaceYear(ctx, input.Year, projections); err != nil {
		return nil, fmt.Errorf("failed to replace budget year %d: %w", input.Year, err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, input.Year); err != nil {
			slog.Warn("Failed to invalidate report cache after budget save",
				"year", input.Year,
				"error", err,
			)
		}
	}

	slog.Info("Budget year replaced", "year", input.Year, "rows", len(projections))

	return &SaveMatrixOutput{Saved: len(projections)}, nil
}

// buildProjections validates every row against the category catalog before
// anything is written.
func (uc *SaveMatrixUseCase) buildProjections(ctx context.Context, input SaveMatrixInput) ([]*entity.BudgetProjection, error) {
	categories, err := operationalCategories(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Account, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	seen := make(map[uuid.UUID]bool, len(input.Rows))
	projections := make([]*entity.BudgetProjection, 0, len(input.Rows))
	for _, row := range input.Rows {
		category, ok := byID[row.CategoryID]
		if !ok {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				fmt.Sprintf("category %s is not an active income/expense category", row.CategoryID),
				domainerror.ErrAccountNotFound,
			)
		}
		if seen[row.CategoryID] {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				fmt.Sprintf("category %s appears more than once", category.Name),
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
		seen[row.CategoryID] = true

		projections = append(projections, entity.NewBudgetProjection(
			category.ID,
			categoryType(category),
			input.Year,
			row.Months,
		))
	}
	return projections, nil
}
