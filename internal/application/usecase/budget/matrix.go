// Package budget contains budget projection matrix use cases.
package budget

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// MatrixRowOutput is one category line of a matrix response.
type MatrixRowOutput struct {
	CategoryID   uuid.UUID                                 `json:"category_id"`
	CategoryName string                                    `json:"category_name"`
	Type         entity.TransactionType                    `json:"type"`
	Months       [entity.MonthsPerYear]decimal.Decimal     `json:"months"`
	Total        decimal.Decimal                           `json:"total"`
}

// MatrixTotalsOutput holds the per-month totals of a matrix response.
type MatrixTotalsOutput struct {
	Income   [entity.MonthsPerYear]decimal.Decimal `json:"income"`
	Expenses [entity.MonthsPerYear]decimal.Decimal `json:"expenses"`
	Net      [entity.MonthsPerYear]decimal.Decimal `json:"net"`
}

// MatrixOutput is the shared response shape of the budget and cash-flow
// matrices, so the two grids compare cell by cell.
type MatrixOutput struct {
	Year          int                `json:"year"`
	Rows          []MatrixRowOutput  `json:"rows"`
	MonthlyTotals MatrixTotalsOutput `json:"monthly_totals"`
	YearlyIncome  decimal.Decimal    `json:"yearly_income"`
	YearlyExpense decimal.Decimal    `json:"yearly_expense"`
	YearlyNet     decimal.Decimal    `json:"yearly_net"`
}

// ToMatrixOutput converts a domain YearMatrix into the response shape.
func ToMatrixOutput(matrix *entity.YearMatrix) *MatrixOutput {
	output := &MatrixOutput{
		Year: matrix.Year,
		Rows: make([]MatrixRowOutput, len(matrix.Rows)),
		MonthlyTotals: MatrixTotalsOutput{
			Income:   matrix.MonthlyTotals.Income,
			Expenses: matrix.MonthlyTotals.Expenses,
			Net:      matrix.MonthlyTotals.Net,
		},
		YearlyIncome:  matrix.YearlyIncome,
		YearlyExpense: matrix.YearlyExpense,
		YearlyNet:     matrix.YearlyNet,
	}
	for i, row := range matrix.Rows {
		output.Rows[i] = MatrixRowOutput{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Type:         row.Type,
			Months:       row.Months,
			Total:        row.Total,
		}
	}
	return output
}

// yearLocks serializes writes against the same budget year. Two planners
// saving 2025 at once would otherwise interleave the delete and insert
// halves of the replace.
type yearLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newYearLocks() *yearLocks {
	return &yearLocks{locks: make(map[int]*sync.Mutex)}
}

func (y *yearLocks) lock(year int) func() {
	y.mu.Lock()
	l, ok := y.locks[year]
	if !ok {
		l = &sync.Mutex{}
		y.locks[year] = l
	}
	y.mu.Unlock()

	l.Lock()
	return l.Unlock
}
