// Package budget contains budget projection matrix use cases.
package budget

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// ImportCSVInput represents the input for a CSV budget import.
type ImportCSVInput struct {
	Year   int
	Reader io.Reader
}

// ImportCSVOutput represents the result of a CSV budget import.
type ImportCSVOutput struct {
	Imported int
}

// ImportCSVUseCase imports a budget year from CSV. The import is
// all-or-nothing: one bad row rejects the file and the year's existing
// projections stay untouched.
type ImportCSVUseCase struct {
	accountRepo adapter.AccountRepository
	budgetRepo  adapter.BudgetRepository
	cache       adapter.ReportCache
	locks       *yearLocks
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance.
func NewImportCSVUseCase(
	accountRepo adapter.AccountRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ReportCache,
) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		accountRepo: accountRepo,
		budgetRepo:  budgetRepo,
		cache:       cache,
		locks:       newYearLocks(),
	}
}

// Execute parses, validates and imports the CSV.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	if err := ValidateYear(input.Year); err != nil {
		return nil, err
	}

	rows, err := parseCSV(input.Reader)
	if err != nil {
		return nil, err
	}

	categories, err := operationalCategories(ctx, uc.accountRepo)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.Account, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category
	}

	// Every row is checked against the catalog before any write: unknown
	// category or a tipo that disagrees with the catalog rejects the file.
	var rowErrors []domainerror.CSVRowError
	seen := make(map[string]bool, len(rows))
	projections := make([]*entity.BudgetProjection, 0, len(rows))
	for i, row := range rows {
		key := strings.ToLower(row.Category)
		category, ok := byName[key]
		if !ok {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:      i + 1,
				Category: row.Category,
				Reason:   "category not found in catalog",
			})
			continue
		}
		if categoryType(category) != row.Type {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:      i + 1,
				Category: row.Category,
				Reason:   fmt.Sprintf("tipo disagrees with catalog type %s", categoryType(category)),
			})
			continue
		}
		if seen[key] {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:      i + 1,
				Category: row.Category,
				Reason:   "category appears more than once",
			})
			continue
		}
		seen[key] = true

		projections = append(projections, entity.NewBudgetProjection(
			category.ID,
			row.Type,
			input.Year,
			row.Months,
		))
	}
	if len(rowErrors) > 0 {
		return nil, &domainerror.CSVImportError{Rows: rowErrors}
	}

	unlock := uc.locks.lock(input.Year)
	defer unlock()

	if err := uc.budgetRepo.ReplaceYear(ctx, input.Year, projections); err != nil {
		return nil, fmt.Errorf("failed to import budget year %d: %w", input.Year, err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, input.Year); err != nil {
			slog.Warn("Failed to invalidate report cache after csv import",
				"year", input.Year,
				"error", err,
			)
		}
	}

	slog.Info("Budget csv imported", "year", input.Year, "rows", len(projections))

	return &ImportCSVOutput{Imported: len(projections)}, nil
}
