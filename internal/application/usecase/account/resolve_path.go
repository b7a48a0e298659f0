// Package account contains chart-of-accounts use cases.
package account

import (
	"context"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// ResolvePathInput represents the input for ancestor-chain resolution.
type ResolvePathInput struct {
	Code string
}

// ResolvePathOutput is the ordered ancestor chain for an account code,
// root first, the account itself last. Statement rollups walk this chain.
type ResolvePathOutput struct {
	Chain []*AccountOutput
}

// ResolvePathUseCase resolves the ancestor chain of an account.
type ResolvePathUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewResolvePathUseCase creates a new ResolvePathUseCase instance.
func NewResolvePathUseCase(accountRepo adapter.AccountRepository) *ResolvePathUseCase {
	return &ResolvePathUseCase{
		accountRepo: accountRepo,
	}
}

// Execute walks parent links from the account up to its root.
func (uc *ResolvePathUseCase) Execute(ctx context.Context, input ResolvePathInput) (*ResolvePathOutput, error) {
	account, err := uc.accountRepo.FindByCode(ctx, input.Code)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	chain := []*AccountOutput{toAccountOutput(account)}
	current := account
	for current.ParentID != nil {
		parent, err := uc.accountRepo.FindByID(ctx, *current.ParentID)
		if err != nil {
			// A broken parent link truncates the chain rather than
			// failing the lookup.
			break
		}
		chain = append([]*AccountOutput{toAccountOutput(parent)}, chain...)
		current = parent
	}

	return &ResolvePathOutput{Chain: chain}, nil
}
