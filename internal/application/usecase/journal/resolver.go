// Package journal contains journal-entry use cases.
package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// ResolvedAccounts holds the two accounts a generated entry must touch.
type ResolvedAccounts struct {
	Cash        *entity.Account
	Operational *entity.Account
}

// DebitAccount returns the account that takes the debit side for the given
// transaction type. This mapping is the single source of truth for which
// side moves money in or out: income debits cash and credits the
// operational account, expense debits the operational account and credits
// cash.
func (r *ResolvedAccounts) DebitAccount(transactionType entity.TransactionType) *entity.Account {
	if transactionType == entity.TransactionTypeIncome {
		return r.Cash
	}
	return r.Operational
}

// CreditAccount returns the account that takes the credit side for the
// given transaction type. Symmetric counterpart of DebitAccount.
func (r *ResolvedAccounts) CreditAccount(transactionType entity.TransactionType) *entity.Account {
	if transactionType == entity.TransactionTypeIncome {
		return r.Operational
	}
	return r.Cash
}

// AccountResolver selects the cash and operational accounts for automatic
// entry generation.
type AccountResolver struct {
	accountRepo adapter.AccountRepository
}

// NewAccountResolver creates a new AccountResolver instance.
func NewAccountResolver(accountRepo adapter.AccountRepository) *AccountResolver {
	return &AccountResolver{
		accountRepo: accountRepo,
	}
}

// Resolve finds the first active cash/bank account and the first active
// operational account (level >= 2) under the income or expense root for the
// transaction type. It returns ErrNoMappingFound when either lookup comes
// up empty.
func (r *AccountResolver) Resolve(ctx context.Context, transactionType entity.TransactionType) (*ResolvedAccounts, error) {
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	cash, err := r.accountRepo.FindFirstActiveByPrefix(ctx, entity.CodePrefixCash, 1)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewJournalError(
				domainerror.ErrCodeNoMappingFound,
				"no active cash account available",
				domainerror.ErrNoMappingFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve cash account: %w", err)
	}

	operationalRoot := entity.CodePrefixIncome
	if transactionType == entity.TransactionTypeExpense {
		operationalRoot = entity.CodePrefixExpenses
	}

	operational, err := r.accountRepo.FindFirstActiveByPrefix(ctx, operationalRoot, 2)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewJournalError(
				domainerror.ErrCodeNoMappingFound,
				fmt.Sprintf("no active operational account under root %s", operationalRoot),
				domainerror.ErrNoMappingFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve operational account: %w", err)
	}

	return &ResolvedAccounts{Cash: cash, Operational: operational}, nil
}
