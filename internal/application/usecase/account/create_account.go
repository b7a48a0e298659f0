// Package account contains chart-of-accounts use cases.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 120

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Code        string
	Name        string
	Description string
	Level       int
	ParentID    *uuid.UUID
	Nature      entity.AccountNature
	SortOrder   int
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Code == "" || input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			"code and name are required",
			nil,
		)
	}

	if len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountFields,
			fmt.Sprintf("name must not exceed %d characters", MaxAccountNameLength),
			nil,
		)
	}

	if input.Nature != entity.AccountNatureDebit && input.Nature != entity.AccountNatureCredit {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidNature,
			"nature must be 'debit' or 'credit'",
			domainerror.ErrInvalidAccountNature,
		)
	}

	exists, err := uc.accountRepo.ExistsByCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeDuplicateCode,
			fmt.Sprintf("account code %q already exists", input.Code),
			domainerror.ErrDuplicateCode,
		)
	}

	account := entity.NewAccount(input.Code, input.Name, input.Level, input.ParentID, input.Nature)
	account.Description = input.Description
	account.SortOrder = input.SortOrder

	// The full path is computed once here, at write time. Readers never
	// walk the tree to reconstruct it.
	if input.ParentID != nil {
		parent, err := uc.accountRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeParentNotFound,
				"parent account not found",
				domainerror.ErrParentNotFound,
			)
		}
		account.FullPath = parent.FullPath + "." + input.Code
		if input.Level <= parent.Level {
			account.Level = parent.Level + 1
		}
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: toAccountOutput(account)}, nil
}

// AccountOutput is the use-case level representation of an account.
type AccountOutput struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	Level       int
	ParentID    *uuid.UUID
	Nature      entity.AccountNature
	IsActive    bool
	FullPath    string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:          account.ID,
		Code:        account.Code,
		Name:        account.Name,
		Description: account.Description,
		Level:       account.Level,
		ParentID:    account.ParentID,
		Nature:      account.Nature,
		IsActive:    account.IsActive,
		FullPath:    account.FullPath,
		SortOrder:   account.SortOrder,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}
