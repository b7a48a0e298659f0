// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// BudgetRepository defines the interface for budget projection persistence.
type BudgetRepository interface {
	// FindByYear retrieves every projection row for the given year.
	FindByYear(ctx context.Context, year int) ([]*entity.BudgetProjection, error)

	// ReplaceYear atomically deletes all projection rows for the year and
	// inserts the provided set. A failure leaves the previous rows intact.
	ReplaceYear(ctx context.Context, year int, projections []*entity.BudgetProjection) error
}
