// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	AccountID *uuid.UUID
}

// CategoryMonthTotal is one aggregated cell of the realized cash-flow
// matrix: the summed amount for a category, type and month.
type CategoryMonthTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.TransactionType
	Month        int // 1-12
	Amount       decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// date ascending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindUnprocessed retrieves up to limit transactions without a linked
	// journal entry, oldest first by date.
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// ExistsByAccount checks whether any transaction references the account.
	ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database. Posted journal
	// entries derived from it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByCodePrefix sums transaction amounts for categories whose
	// account code starts with prefix, up to and including the cutoff date.
	SumByCodePrefix(ctx context.Context, prefix string, cutoff time.Time) (decimal.Decimal, error)

	// MonthlyTotalsByCategory aggregates transactions of one year into
	// per-category, per-type, per-month totals for the cash-flow matrix.
	MonthlyTotalsByCategory(ctx context.Context, year int) ([]CategoryMonthTotal, error)
}
