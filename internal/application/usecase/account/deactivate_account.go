// Package account contains chart-of-accounts use cases.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// DeactivateAccountInput represents the input for account deactivation.
type DeactivateAccountInput struct {
	ID uuid.UUID
}

// DeactivateAccountUseCase handles soft-deactivation of accounts. Accounts
// referenced by transactions or active children are never removed; they are
// only flagged inactive, and even that is refused while references exist.
type DeactivateAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewDeactivateAccountUseCase creates a new DeactivateAccountUseCase instance.
func NewDeactivateAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *DeactivateAccountUseCase {
	return &DeactivateAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the account deactivation.
func (uc *DeactivateAccountUseCase) Execute(ctx context.Context, input DeactivateAccountInput) error {
	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	hasTransactions, err := uc.transactionRepo.ExistsByAccount(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to check account transactions: %w", err)
	}
	if hasTransactions {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasTransactions,
			fmt.Sprintf("account %s has transactions and cannot be deactivated", account.Code),
			domainerror.ErrAccountHasTransactions,
		)
	}

	hasChildren, err := uc.accountRepo.HasActiveChildren(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to check account children: %w", err)
	}
	if hasChildren {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasChildren,
			fmt.Sprintf("account %s has active child accounts", account.Code),
			domainerror.ErrAccountHasChildren,
		)
	}

	account.IsActive = false
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	return nil
}
