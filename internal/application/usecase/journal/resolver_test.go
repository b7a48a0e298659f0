package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

func TestAccountResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("income maps to cash and income category", func(t *testing.T) {
		env := newTestEnv(t)
		cash, income, _ := env.seedChart(t)

		resolved, err := env.resolver.Resolve(ctx, entity.TransactionTypeIncome)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}

		if resolved.Cash.ID != cash.ID {
			t.Errorf("expected cash account %s, got %s", cash.Code, resolved.Cash.Code)
		}
		if resolved.Operational.ID != income.ID {
			t.Errorf("expected operational account %s, got %s", income.Code, resolved.Operational.Code)
		}
		if resolved.DebitAccount(entity.TransactionTypeIncome).ID != cash.ID {
			t.Error("income must debit the cash account")
		}
		if resolved.CreditAccount(entity.TransactionTypeIncome).ID != income.ID {
			t.Error("income must credit the operational account")
		}
	})

	t.Run("expense maps to expense category and cash", func(t *testing.T) {
		env := newTestEnv(t)
		cash, _, expense := env.seedChart(t)

		resolved, err := env.resolver.Resolve(ctx, entity.TransactionTypeExpense)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}

		if resolved.DebitAccount(entity.TransactionTypeExpense).ID != expense.ID {
			t.Error("expense must debit the operational account")
		}
		if resolved.CreditAccount(entity.TransactionTypeExpense).ID != cash.ID {
			t.Error("expense must credit the cash account")
		}
	})

	t.Run("root category accounts are never operational", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
		// Only the level-1 root exists under income.
		env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)

		_, err := env.resolver.Resolve(ctx, entity.TransactionTypeIncome)
		if !errors.Is(err, domainerror.ErrNoMappingFound) {
			t.Fatalf("expected ErrNoMappingFound, got %v", err)
		}
	})

	t.Run("missing cash account", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)

		_, err := env.resolver.Resolve(ctx, entity.TransactionTypeIncome)
		if !errors.Is(err, domainerror.ErrNoMappingFound) {
			t.Fatalf("expected ErrNoMappingFound, got %v", err)
		}
	})

	t.Run("inactive accounts are skipped", func(t *testing.T) {
		env := newTestEnv(t)
		cash, income, _ := env.seedChart(t)
		_ = income

		// Deactivate the only cash account.
		cash.IsActive = false
		if err := env.accountRepo.Update(ctx, cash); err != nil {
			t.Fatalf("deactivate cash account: %v", err)
		}

		_, err := env.resolver.Resolve(ctx, entity.TransactionTypeIncome)
		if !errors.Is(err, domainerror.ErrNoMappingFound) {
			t.Fatalf("expected ErrNoMappingFound, got %v", err)
		}
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedChart(t)

		_, err := env.resolver.Resolve(ctx, entity.TransactionType("transfer"))
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
	})
}
