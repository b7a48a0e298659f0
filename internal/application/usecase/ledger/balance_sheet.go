// Package ledger contains trial-balance and financial-statement use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// BalanceSheetInput represents the input for balance sheet computation.
type BalanceSheetInput struct {
	Cutoff time.Time
}

// StatementLine is one account line of a financial statement section.
type StatementLine struct {
	AccountID uuid.UUID       `json:"account_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceSheetOutput buckets accounts into assets, liabilities and equity.
// The accounting identity Assets == Liabilities + Equity is a property of
// correct postings, not a correction applied here.
type BalanceSheetOutput struct {
	Cutoff           time.Time       `json:"cutoff"`
	Assets           []StatementLine `json:"assets"`
	Liabilities      []StatementLine `json:"liabilities"`
	Equity           []StatementLine `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}

// BalanceSheetUseCase computes the balance sheet as of a cutoff date.
type BalanceSheetUseCase struct {
	accountRepo adapter.AccountRepository
	journalRepo adapter.JournalEntryRepository
	cache       adapter.ReportCache
}

// NewBalanceSheetUseCase creates a new BalanceSheetUseCase instance.
func NewBalanceSheetUseCase(
	accountRepo adapter.AccountRepository,
	journalRepo adapter.JournalEntryRepository,
	cache adapter.ReportCache,
) *BalanceSheetUseCase {
	return &BalanceSheetUseCase{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		cache:       cache,
	}
}

// Execute computes the balance sheet.
func (uc *BalanceSheetUseCase) Execute(ctx context.Context, input BalanceSheetInput) (*BalanceSheetOutput, error) {
	cacheKey := fmt.Sprintf("report:%d:balance-sheet:%s", input.Cutoff.Year(), input.Cutoff.Format("2006-01-02"))
	if uc.cache != nil {
		var cached BalanceSheetOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	// Activity up to and including the cutoff day.
	activity, err := uc.journalRepo.ActivityInRange(ctx, time.Time{}, input.Cutoff.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to read account activity: %w", err)
	}

	accounts, err := uc.accountRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &BalanceSheetOutput{
		Cutoff:           input.Cutoff,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	for _, account := range accounts {
		act := activity[account.ID]
		balance := account.NaturalSignedBalance(act.Debits, act.Credits)
		line := StatementLine{
			AccountID: account.ID,
			Code:      account.Code,
			Name:      account.Name,
			Balance:   balance,
		}

		switch rootOf(account.Code) {
		case entity.CodePrefixAssets:
			output.Assets = append(output.Assets, line)
			output.TotalAssets = output.TotalAssets.Add(balance)
		case entity.CodePrefixLiabilities:
			output.Liabilities = append(output.Liabilities, line)
			output.TotalLiabilities = output.TotalLiabilities.Add(balance)
		case entity.CodePrefixEquity:
			output.Equity = append(output.Equity, line)
			output.TotalEquity = output.TotalEquity.Add(balance)
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, output, reportCacheTTL); err != nil {
			slog.Debug("Failed to cache balance sheet", "key", cacheKey, "error", err)
		}
	}

	return output, nil
}

func rootOf(code string) string {
	if idx := strings.Index(code, "."); idx >= 0 {
		return code[:idx]
	}
	return code
}
