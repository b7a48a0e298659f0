// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatrixRow is one category line in a 12-month grid. Budget and cash-flow
// matrices share this shape so the two can be compared cell by cell.
type MatrixRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Type         TransactionType
	Months       [MonthsPerYear]decimal.Decimal
	Total        decimal.Decimal
}

// MatrixTotals holds the per-month sums across all categories of a matrix.
type MatrixTotals struct {
	Income   [MonthsPerYear]decimal.Decimal
	Expenses [MonthsPerYear]decimal.Decimal
	Net      [MonthsPerYear]decimal.Decimal
}

// YearMatrix is the full category-by-month grid for one fiscal year.
type YearMatrix struct {
	Year          int
	Rows          []MatrixRow
	MonthlyTotals MatrixTotals
	YearlyIncome  decimal.Decimal
	YearlyExpense decimal.Decimal
	YearlyNet     decimal.Decimal
}

// ComputeTotals fills MonthlyTotals and the yearly aggregates from Rows.
func (m *YearMatrix) ComputeTotals() {
	m.MonthlyTotals = MatrixTotals{}
	for i := range m.MonthlyTotals.Income {
		m.MonthlyTotals.Income[i] = decimal.Zero
		m.MonthlyTotals.Expenses[i] = decimal.Zero
		m.MonthlyTotals.Net[i] = decimal.Zero
	}
	m.YearlyIncome = decimal.Zero
	m.YearlyExpense = decimal.Zero

	for r := range m.Rows {
		row := &m.Rows[r]
		for i := 0; i < MonthsPerYear; i++ {
			if row.Type == TransactionTypeIncome {
				m.MonthlyTotals.Income[i] = m.MonthlyTotals.Income[i].Add(row.Months[i])
			} else {
				m.MonthlyTotals.Expenses[i] = m.MonthlyTotals.Expenses[i].Add(row.Months[i])
			}
		}
		if row.Type == TransactionTypeIncome {
			m.YearlyIncome = m.YearlyIncome.Add(row.Total)
		} else {
			m.YearlyExpense = m.YearlyExpense.Add(row.Total)
		}
	}

	for i := 0; i < MonthsPerYear; i++ {
		m.MonthlyTotals.Net[i] = m.MonthlyTotals.Income[i].Sub(m.MonthlyTotals.Expenses[i])
	}
	m.YearlyNet = m.YearlyIncome.Sub(m.YearlyExpense)
}
