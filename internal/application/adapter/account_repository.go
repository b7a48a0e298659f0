// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// AccountRepository defines the interface for chart-of-accounts persistence.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByCode retrieves an account by its unique code.
	FindByCode(ctx context.Context, code string) (*entity.Account, error)

	// ExistsByCode checks whether an account with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// FindAll retrieves accounts ordered by code, optionally active only.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Account, error)

	// FindFirstActiveByPrefix retrieves the first active account (by sort
	// order, then code) whose code starts with the given dotted prefix and
	// whose level is at least minLevel. Returns ErrAccountNotFound when no
	// account matches.
	FindFirstActiveByPrefix(ctx context.Context, prefix string, minLevel int) (*entity.Account, error)

	// HasActiveChildren checks whether any active account references the
	// given account as its parent.
	HasActiveChildren(ctx context.Context, id uuid.UUID) (bool, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error
}
