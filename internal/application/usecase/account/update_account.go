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

// UpdateAccountInput represents the input for account metadata updates.
// Code, level, parent and nature are structural and cannot be changed here;
// nature in particular is immutable once transactions reference the account.
type UpdateAccountInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	SortOrder   *int
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account metadata updates.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeMissingAccountFields,
				fmt.Sprintf("name must be 1-%d characters", MaxAccountNameLength),
				nil,
			)
		}
		account.Name = *input.Name
	}
	if input.Description != nil {
		account.Description = *input.Description
	}
	if input.SortOrder != nil {
		account.SortOrder = *input.SortOrder
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: toAccountOutput(account)}, nil
}
