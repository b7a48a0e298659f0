// Package budget contains budget projection matrix use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// Budget years outside this window are rejected before touching the store.
const (
	MinBudgetYear = 2000
	MaxBudgetYear = 2100
)

// GetMatrixInput represents the input for building the budget matrix.
type GetMatrixInput struct {
	Year int
}

// GetMatrixOutput represents the budget matrix response.
type GetMatrixOutput struct {
	Matrix *MatrixOutput
}

// GetMatrixUseCase builds the per-category, per-month budget grid for a
// year: every active income/expense category appears with twelve months
// defaulting to zero, overlaid with saved projection rows.
type GetMatrixUseCase struct {
	accountRepo adapter.AccountRepository
	budgetRepo  adapter.BudgetRepository
}

// NewGetMatrixUseCase creates a new GetMatrixUseCase instance.
func NewGetMatrixUseCase(
	accountRepo adapter.AccountRepository,
	budgetRepo adapter.BudgetRepository,
) *GetMatrixUseCase {
	return &GetMatrixUseCase{
		accountRepo: accountRepo,
		budgetRepo:  budgetRepo,
	}
}

// Execute builds the budget matrix for the year.
func (uc *GetMatrixUseCase) Execute(ctx context.Context, input GetMatrixInput) (*GetMatrixOutput, error) {
	if err := ValidateYear(input.Year); err != nil {
		return nil, err
	}

	categories, err := operationalCategories(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}

	projections, err := uc.budgetRepo.FindByYear(ctx, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to load projections: %w", err)
	}
	byCategory := make(map[uuid.UUID]*entity.BudgetProjection, len(projections))
	for _, projection := range projections {
		byCategory[projection.CategoryID] = projection
	}

	matrix := &entity.YearMatrix{Year: input.Year}
	for _, category := range categories {
		row := entity.MatrixRow{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Type:         categoryType(category),
			Total:        decimal.Zero,
		}
		for i := range row.Months {
			row.Months[i] = decimal.Zero
		}
		if projection, ok := byCategory[category.ID]; ok {
			row.Months = projection.Months
			row.Total = projection.Total()
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	matrix.ComputeTotals()

	return &GetMatrixOutput{Matrix: ToMatrixOutput(matrix)}, nil
}

// ValidateYear rejects years outside the supported planning window.
func ValidateYear(year int) error {
	if year < MinBudgetYear || year > MaxBudgetYear {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetYear,
			fmt.Sprintf("year must be between %d and %d", MinBudgetYear, MaxBudgetYear),
			domainerror.ErrInvalidBudgetYear,
		)
	}
	return nil
}

// operationalCategories lists the active leaf-level income and expense
// categories that participate in budget and cash-flow matrices.
func operationalCategories(ctx context.Context, accountRepo adapter.AccountRepository) ([]*entity.Account, error) {
	accounts, err := accountRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	var categories []*entity.Account
	for _, account := range accounts {
		if account.Level < 2 {
			continue
		}
		if account.IsIncomeCategory() || account.IsExpenseCategory() {
			categories = append(categories, account)
		}
	}
	return categories, nil
}

func categoryType(account *entity.Account) entity.TransactionType {
	if account.IsIncomeCategory() {
		return entity.TransactionTypeIncome
	}
	return entity.TransactionTypeExpense
}
