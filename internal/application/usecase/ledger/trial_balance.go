// Package ledger contains trial-balance and financial-statement use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// UnknownAccountName marks rows whose account no longer resolves. Historical
// entries can reference accounts that were deactivated or lost; their
// numeric contribution still counts.
const UnknownAccountName = "unknown account"

// reportCacheTTL bounds staleness if an invalidation is ever missed.
const reportCacheTTL = 15 * time.Minute

// TrialBalanceInput represents the input for trial balance computation.
// Month zero means the whole year.
type TrialBalanceInput struct {
	Year  int
	Month int
}

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	AccountID      uuid.UUID          `json:"account_id"`
	Code           string             `json:"code"`
	Name           string             `json:"name"`
	Nature         string             `json:"nature"`
	OpeningBalance decimal.Decimal    `json:"opening_balance"`
	PeriodDebits   decimal.Decimal    `json:"period_debits"`
	PeriodCredits  decimal.Decimal    `json:"period_credits"`
	EndingBalance  decimal.Decimal    `json:"ending_balance"`
	BalanceType    entity.AccountNature `json:"balance_type"`
}

// TrialBalanceOutput represents the computed trial balance.
type TrialBalanceOutput struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
}

// TrialBalanceUseCase computes per-account period activity and ending
// balances from posted journal lines. Journal lines are the single source
// of truth; the cache only memoizes the derived report.
type TrialBalanceUseCase struct {
	accountRepo adapter.AccountRepository
	journalRepo adapter.JournalEntryRepository
	cache       adapter.ReportCache
}

// NewTrialBalanceUseCase creates a new TrialBalanceUseCase instance.
func NewTrialBalanceUseCase(
	accountRepo adapter.AccountRepository,
	journalRepo adapter.JournalEntryRepository,
	cache adapter.ReportCache,
) *TrialBalanceUseCase {
	return &TrialBalanceUseCase{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		cache:       cache,
	}
}

// Execute computes the trial balance for the period.
func (uc *TrialBalanceUseCase) Execute(ctx context.Context, input TrialBalanceInput) (*TrialBalanceOutput, error) {
	cacheKey := fmt.Sprintf("report:%d:trial-balance:%02d", input.Year, input.Month)
	if uc.cache != nil {
		var cached TrialBalanceOutput
		if hit, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	from, to := journal.PeriodBounds(input.Year, input.Month)

	opening, err := uc.journalRepo.ActivityInRange(ctx, time.Time{}, from)
	if err != nil {
		return nil, fmt.Errorf("failed to read opening activity: %w", err)
	}
	period, err := uc.journalRepo.ActivityInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read period activity: %w", err)
	}

	accounts, err := uc.accountRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Account, len(accounts))
	for _, account := range accounts {
		byID[account.ID] = account
	}

	output := &TrialBalanceOutput{
		Year:         input.Year,
		Month:        input.Month,
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, account := range accounts {
		row := uc.buildRow(account, opening[account.ID], period[account.ID])
		output.Rows = append(output.Rows, row)
		output.TotalDebits = output.TotalDebits.Add(row.PeriodDebits)
		output.TotalCredits = output.TotalCredits.Add(row.PeriodCredits)
	}

	// Entries can reference accounts missing from the active chart. Those
	// still contribute their numbers, flagged instead of dropped.
	for accountID, activity := range period {
		if _, known := byID[accountID]; known {
			continue
		}
		orphan := &entity.Account{
			ID:     accountID,
			Name:   UnknownAccountName,
			Nature: entity.AccountNatureDebit,
		}
		row := uc.buildRow(orphan, opening[accountID], activity)
		row.Name = UnknownAccountName
		output.Rows = append(output.Rows, row)
		output.TotalDebits = output.TotalDebits.Add(row.PeriodDebits)
		output.TotalCredits = output.TotalCredits.Add(row.PeriodCredits)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cacheKey, output, reportCacheTTL); err != nil {
			slog.Debug("Failed to cache trial balance", "key", cacheKey, "error", err)
		}
	}

	return output, nil
}

func (uc *TrialBalanceUseCase) buildRow(account *entity.Account, opening, period adapter.AccountActivity) TrialBalanceRow {
	openingBalance := account.NaturalSignedBalance(opening.Debits, opening.Credits)
	ending := openingBalance.Add(account.NaturalSignedBalance(period.Debits, period.Credits))

	// A positive natural balance sits on the account's own side; a
	// negative one flips. Exactly zero reports the natural side.
	balanceType := account.Nature
	if ending.IsNegative() {
		if account.Nature == entity.AccountNatureDebit {
			balanceType = entity.AccountNatureCredit
		} else {
			balanceType = entity.AccountNatureDebit
		}
	}

	return TrialBalanceRow{
		AccountID:      account.ID,
		Code:           account.Code,
		Name:           account.Name,
		Nature:         string(account.Nature),
		OpeningBalance: openingBalance,
		PeriodDebits:   period.Debits,
		PeriodCredits:  period.Credits,
		EndingBalance:  ending,
		BalanceType:    balanceType,
	}
}
