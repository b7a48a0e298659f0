// Package ledger contains trial-balance and financial-statement use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// IncomeStatementInput represents the input for income statement computation.
type IncomeStatementInput struct {
	Cutoff time.Time
}

// IncomeStatementOutput represents the computed income statement. Revenue
// and expenses are summed from realized transactions, not only from posted
// entries, so unposted activity still shows.
type IncomeStatementOutput struct {
	Cutoff        time.Time       `json:"cutoff"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// IncomeStatementUseCase computes revenue, expenses and net income up to a
// cutoff date.
type IncomeStatementUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewIncomeStatementUseCase creates a new IncomeStatementUseCase instance.
func NewIncomeStatementUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *IncomeStatementUseCase {
	return &IncomeStatementUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute computes the income statement.
func (uc *IncomeStatementUseCase) Execute(ctx context.Context, input IncomeStatementInput) (*IncomeStatementOutput, error) {
	cacheKey := fmt.Sprintf("report:%d:income-statement:%s", input.Cutoff.Year(), input.Cutoff.Format("2006-01-02"))
	if uc.cache != nil {
		var cached IncomeStatementOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	revenue, err := uc.transactionRepo.SumByCodePrefix(ctx, entity.CodePrefixIncome, input.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	expenses, err := uc.transactionRepo.SumByCodePrefix(ctx, entity.CodePrefixExpenses, input.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	output := &IncomeStatementOutput{
		Cutoff:        input.Cutoff,
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetIncome:     revenue.Sub(expenses),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, output, reportCacheTTL); err != nil {
			slog.Debug("Failed to cache income statement", "key", cacheKey, "error", err)
		}
	}

	return output, nil
}
