// Package cashflow contains realized cash-flow matrix use cases.
package cashflow

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/budget"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// Advisory alert thresholds against a category's trailing monthly average.
var (
	expenseSpikeFactor = decimal.NewFromFloat(1.5)
	incomeDropFactor   = decimal.NewFromFloat(0.7)
)

// AlertKind classifies a variance alert.
type AlertKind string

const (
	AlertExpenseSpike AlertKind = "expense_spike"
	AlertIncomeDrop   AlertKind = "income_drop"
)

// VarianceAlert flags one category-month whose realized amount diverges
// from its trailing average. Advisory output, not a correctness check.
type VarianceAlert struct {
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	Type            entity.TransactionType `json:"type"`
	Month           int             `json:"month"`
	Amount          decimal.Decimal `json:"amount"`
	TrailingAverage decimal.Decimal `json:"trailing_average"`
	Kind            AlertKind       `json:"kind"`
}

// VarianceRow compares one category's budget and realized totals.
type VarianceRow struct {
	CategoryID   uuid.UUID                             `json:"category_id"`
	CategoryName string                                `json:"category_name"`
	Type         entity.TransactionType                `json:"type"`
	Budgeted     [entity.MonthsPerYear]decimal.Decimal `json:"budgeted"`
	Realized     [entity.MonthsPerYear]decimal.Decimal `json:"realized"`
	Variance     [entity.MonthsPerYear]decimal.Decimal `json:"variance"` // realized - budgeted
	TotalBudget  decimal.Decimal                       `json:"total_budget"`
	TotalActual  decimal.Decimal                       `json:"total_actual"`
}

// VarianceInput represents the input for variance analysis.
type VarianceInput struct {
	Year int
}

// VarianceOutput represents the budget-vs-actual comparison plus alerts.
type VarianceOutput struct {
	Year   int             `json:"year"`
	Rows   []VarianceRow   `json:"rows"`
	Alerts []VarianceAlert `json:"alerts"`
}

// VarianceUseCase joins the budget matrix against the realized matrix and
// raises advisory alerts.
type VarianceUseCase struct {
	getBudget   *budget.GetMatrixUseCase
	getRealized *RealizedMatrixUseCase
}

// NewVarianceUseCase creates a new VarianceUseCase instance.
func NewVarianceUseCase(getBudget *budget.GetMatrixUseCase, getRealized *RealizedMatrixUseCase) *VarianceUseCase {
	return &VarianceUseCase{
		getBudget:   getBudget,
		getRealized: getRealized,
	}
}

// Execute computes the variance report for a year.
func (uc *VarianceUseCase) Execute(ctx context.Context, input VarianceInput) (*VarianceOutput, error) {
	budgeted, err := uc.getBudget.Execute(ctx, budget.GetMatrixInput{Year: input.Year})
	if err != nil {
		return nil, err
	}
	realized, err := uc.getRealized.Execute(ctx, RealizedMatrixInput{Year: input.Year})
	if err != nil {
		return nil, err
	}

	realizedByKey := make(map[rowKey]budget.MatrixRowOutput, len(realized.Matrix.Rows))
	for _, row := range realized.Matrix.Rows {
		realizedByKey[rowKey{CategoryID: row.CategoryID, Type: row.Type}] = row
	}

	output := &VarianceOutput{Year: input.Year}
	for _, budgetRow := range budgeted.Matrix.Rows {
		key := rowKey{CategoryID: budgetRow.CategoryID, Type: budgetRow.Type}
		realizedRow := realizedByKey[key]

		row := VarianceRow{
			CategoryID:   budgetRow.CategoryID,
			CategoryName: budgetRow.CategoryName,
			Type:         budgetRow.Type,
			Budgeted:     budgetRow.Months,
			Realized:     realizedRow.Months,
			TotalBudget:  budgetRow.Total,
			TotalActual:  realizedRow.Total,
		}
		for i := 0; i < entity.MonthsPerYear; i++ {
			row.Variance[i] = row.Realized[i].Sub(row.Budgeted[i])
		}
		output.Rows = append(output.Rows, row)

		output.Alerts = append(output.Alerts, detectAlerts(budgetRow.CategoryID, budgetRow.CategoryName, budgetRow.Type, realizedRow.Months)...)
	}

	return output, nil
}

// detectAlerts compares each month with zero activity excluded against the
// trailing average of the preceding months.
func detectAlerts(categoryID uuid.UUID, name string, categoryType entity.TransactionType, months [entity.MonthsPerYear]decimal.Decimal) []VarianceAlert {
	var alerts []VarianceAlert
	for m := 1; m < entity.MonthsPerYear; m++ {
		amount := months[m]
		if amount.IsZero() {
			continue
		}

		avg := trailingAverage(months[:m])
		if !avg.IsPositive() {
			continue
		}

		switch categoryType {
		case entity.TransactionTypeExpense:
			if amount.GreaterThan(avg.Mul(expenseSpikeFactor)) {
				alerts = append(alerts, VarianceAlert{
					CategoryID:      categoryID,
					CategoryName:    name,
					Type:            categoryType,
					Month:           m + 1,
					Amount:          amount,
					TrailingAverage: avg,
					Kind:            AlertExpenseSpike,
				})
			}
		case entity.TransactionTypeIncome:
			if amount.LessThan(avg.Mul(incomeDropFactor)) {
				alerts = append(alerts, VarianceAlert{
					CategoryID:      categoryID,
					CategoryName:    name,
					Type:            categoryType,
					Month:           m + 1,
					Amount:          amount,
					TrailingAverage: avg,
					Kind:            AlertIncomeDrop,
				})
			}
		}
	}
	return alerts
}

// trailingAverage averages the months that had activity; all-zero history
// yields zero, which suppresses alerting.
func trailingAverage(months []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, amount := range months {
		if amount.IsZero() {
			continue
		}
		sum = sum.Add(amount)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
