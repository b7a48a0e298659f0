// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthsPerYear is the width of every budget and cash-flow matrix row.
const MonthsPerYear = 12

// BudgetProjection is the planned matrix row for one category and year:
// twelve monthly amounts plus a derived total. Exactly one row exists per
// (category, year); a save replaces the whole year.
type BudgetProjection struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryType TransactionType
	Year         int
	Months       [MonthsPerYear]decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudgetProjection creates a projection row for a category and year.
func NewBudgetProjection(categoryID uuid.UUID, categoryType TransactionType, year int, months [MonthsPerYear]decimal.Decimal) *BudgetProjection {
	now := time.Now().UTC()

	return &BudgetProjection{
		ID:           uuid.New(),
		CategoryID:   categoryID,
		CategoryType: categoryType,
		Year:         year,
		Months:       months,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Total returns the sum of the twelve monthly amounts.
func (p *BudgetProjection) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Months {
		total = total.Add(p.Months[i])
	}
	return total
}
