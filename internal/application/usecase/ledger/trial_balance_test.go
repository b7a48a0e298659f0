package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

var testDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestTrialBalanceUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("income and expense balance out", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
		cash := env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
		env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
		income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)
		env.seedAccount(t, "5", "Gastos", 1, entity.AccountNatureDebit)
		expense := env.seedAccount(t, "5.1.1", "Mantenimiento", 3, entity.AccountNatureDebit)

		env.recordTransaction(t, entity.TransactionTypeIncome, 1000, income, testDate)
		env.recordTransaction(t, entity.TransactionTypeExpense, 250, expense, testDate.AddDate(0, 0, 5))

		uc := NewTrialBalanceUseCase(env.accountRepo, env.journalRepo, noopCache{})
		output, err := uc.Execute(ctx, TrialBalanceInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("trial balance: %v", err)
		}

		if !output.TotalDebits.Equal(output.TotalCredits) {
			t.Fatalf("trial balance identity broken: debits %s, credits %s",
				output.TotalDebits, output.TotalCredits)
		}
		if !output.TotalDebits.Equal(decimal.NewFromInt(1250)) {
			t.Errorf("expected total debits 1250, got %s", output.TotalDebits)
		}

		rows := rowsByID(output)

		cashRow := rows[cash.ID]
		if !cashRow.EndingBalance.Equal(decimal.NewFromInt(750)) {
			t.Errorf("expected cash ending balance 750, got %s", cashRow.EndingBalance)
		}
		if cashRow.BalanceType != entity.AccountNatureDebit {
			t.Errorf("expected cash balance on debit side, got %s", cashRow.BalanceType)
		}

		incomeRow := rows[income.ID]
		if !incomeRow.EndingBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected income ending balance 1000, got %s", incomeRow.EndingBalance)
		}
		if incomeRow.BalanceType != entity.AccountNatureCredit {
			t.Errorf("expected income balance on credit side, got %s", incomeRow.BalanceType)
		}

		expenseRow := rows[expense.ID]
		if !expenseRow.EndingBalance.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected expense ending balance 250, got %s", expenseRow.EndingBalance)
		}
	})

	t.Run("zero balance reports the natural side", func(t *testing.T) {
		env := newTestEnv(t)
		idle := env.seedAccount(t, "2.1", "Proveedores", 2, entity.AccountNatureCredit)

		uc := NewTrialBalanceUseCase(env.accountRepo, env.journalRepo, noopCache{})
		output, err := uc.Execute(ctx, TrialBalanceInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("trial balance: %v", err)
		}

		row := rowsByID(output)[idle.ID]
		if !row.EndingBalance.IsZero() {
			t.Fatalf("expected zero balance, got %s", row.EndingBalance)
		}
		if row.BalanceType != entity.AccountNatureCredit {
			t.Errorf("zero balance must keep the natural side, got %s", row.BalanceType)
		}
	})

	t.Run("prior activity lands in the opening balance", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
		cash := env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
		env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
		income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)

		// February income, then March income.
		env.recordTransaction(t, entity.TransactionTypeIncome, 400, income, testDate.AddDate(0, -1, 0))
		env.recordTransaction(t, entity.TransactionTypeIncome, 100, income, testDate)

		uc := NewTrialBalanceUseCase(env.accountRepo, env.journalRepo, noopCache{})
		output, err := uc.Execute(ctx, TrialBalanceInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("trial balance: %v", err)
		}

		row := rowsByID(output)[cash.ID]
		if !row.OpeningBalance.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected opening balance 400, got %s", row.OpeningBalance)
		}
		if !row.PeriodDebits.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected period debits 100, got %s", row.PeriodDebits)
		}
		if !row.EndingBalance.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected ending balance 500, got %s", row.EndingBalance)
		}
	})

	t.Run("orphaned lines are kept and flagged", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
		cash := env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
		env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
		income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)

		env.recordTransaction(t, entity.TransactionTypeIncome, 1000, income, testDate)

		// Deactivate the income account after the entry exists.
		income.IsActive = false
		if err := env.accountRepo.Update(ctx, income); err != nil {
			t.Fatalf("deactivate: %v", err)
		}

		uc := NewTrialBalanceUseCase(env.accountRepo, env.journalRepo, noopCache{})
		output, err := uc.Execute(ctx, TrialBalanceInput{Year: 2025, Month: 3})
		if err != nil {
			t.Fatalf("trial balance: %v", err)
		}

		// The identity must survive the orphaned credit line.
		if !output.TotalDebits.Equal(output.TotalCredits) {
			t.Fatalf("identity broken with orphaned lines: %s vs %s",
				output.TotalDebits, output.TotalCredits)
		}

		rows := rowsByID(output)
		if _, ok := rows[cash.ID]; !ok {
			t.Fatal("expected cash row present")
		}
		orphan, ok := rows[income.ID]
		if !ok {
			t.Fatal("expected orphaned account row present")
		}
		if orphan.Name != UnknownAccountName {
			t.Errorf("expected orphan flagged as %q, got %q", UnknownAccountName, orphan.Name)
		}
	})
}

func rowsByID(output *TrialBalanceOutput) map[uuid.UUID]TrialBalanceRow {
	rows := make(map[uuid.UUID]TrialBalanceRow, len(output.Rows))
	for _, row := range output.Rows {
		rows[row.AccountID] = row
	}
	return rows
}

func TestBalanceSheetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t)
	env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
	cash := env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
	env.seedAccount(t, "2", "Pasivo", 1, entity.AccountNatureCredit)
	env.seedAccount(t, "3", "Patrimonio", 1, entity.AccountNatureCredit)
	env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
	income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)
	env.seedAccount(t, "5", "Gastos", 1, entity.AccountNatureDebit)
	expense := env.seedAccount(t, "5.1.1", "Mantenimiento", 3, entity.AccountNatureDebit)

	env.recordTransaction(t, entity.TransactionTypeIncome, 1000, income, testDate)
	env.recordTransaction(t, entity.TransactionTypeExpense, 250, expense, testDate.AddDate(0, 0, 5))

	uc := NewBalanceSheetUseCase(env.accountRepo, env.journalRepo, noopCache{})
	output, err := uc.Execute(ctx, BalanceSheetInput{Cutoff: testDate.AddDate(0, 1, 0)})
	if err != nil {
		t.Fatalf("balance sheet: %v", err)
	}

	if !output.TotalAssets.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected total assets 750, got %s", output.TotalAssets)
	}
	if !output.TotalLiabilities.IsZero() {
		t.Errorf("expected no liabilities, got %s", output.TotalLiabilities)
	}
	if !output.TotalEquity.IsZero() {
		t.Errorf("expected no equity, got %s", output.TotalEquity)
	}

	foundCash := false
	for _, line := range output.Assets {
		if line.AccountID == cash.ID {
			foundCash = true
			if !line.Balance.Equal(decimal.NewFromInt(750)) {
				t.Errorf("expected cash balance 750, got %s", line.Balance)
			}
		}
	}
	if !foundCash {
		t.Error("expected cash line in assets")
	}

	// Income and expense accounts never appear on the balance sheet.
	for _, line := range append(output.Liabilities, output.Equity...) {
		if line.AccountID == income.ID || line.AccountID == expense.ID {
			t.Errorf("operational account %s leaked into the balance sheet", line.Code)
		}
	}
}

func TestIncomeStatementUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t)
	env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
	env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
	env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
	income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)
	env.seedAccount(t, "5", "Gastos", 1, entity.AccountNatureDebit)
	expense := env.seedAccount(t, "5.1.1", "Mantenimiento", 3, entity.AccountNatureDebit)

	env.recordTransaction(t, entity.TransactionTypeIncome, 1000, income, testDate)
	env.recordTransaction(t, entity.TransactionTypeExpense, 250, expense, testDate.AddDate(0, 0, 5))
	// After the cutoff, must not count.
	env.recordTransaction(t, entity.TransactionTypeIncome, 9999, income, testDate.AddDate(1, 0, 0))

	uc := NewIncomeStatementUseCase(env.transactionRepo, noopCache{})
	output, err := uc.Execute(ctx, IncomeStatementInput{Cutoff: testDate.AddDate(0, 1, 0)})
	if err != nil {
		t.Fatalf("income statement: %v", err)
	}

	if !output.TotalRevenue.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected revenue 1000, got %s", output.TotalRevenue)
	}
	if !output.TotalExpenses.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected expenses 250, got %s", output.TotalExpenses)
	}
	if !output.NetIncome.Equal(decimal.NewFromInt(750)) {
		t.Errorf("expected net income 750, got %s", output.NetIncome)
	}
}
