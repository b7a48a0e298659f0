// Package account contains chart-of-accounts use cases.
package account

import (
	"context"
	"fmt"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	ActiveOnly bool
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
}

// ListAccountsUseCase handles account listing.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the chart of accounts ordered by code.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindAll(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &ListAccountsOutput{
		Accounts: make([]*AccountOutput, len(accounts)),
	}
	for i, account := range accounts {
		output.Accounts[i] = toAccountOutput(account)
	}
	return output, nil
}
