package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (noopCache) InvalidateYear(ctx context.Context, year int) error { return nil }

var testDate = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalEntryRepository
	create          *CreateTransactionUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.JournalEntryModel{},
		&model.JournalEntryLineModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	env := &testEnv{
		accountRepo:     persistence.NewAccountRepository(db),
		transactionRepo: persistence.NewTransactionRepository(db),
		journalRepo:     persistence.NewJournalRepository(db),
	}
	resolver := journal.NewAccountResolver(env.accountRepo)
	generate := journal.NewGenerateEntryUseCase(env.transactionRepo, env.journalRepo, resolver, noopCache{})
	env.create = NewCreateTransactionUseCase(env.transactionRepo, env.accountRepo, generate, noopCache{})
	return env
}

func (env *testEnv) seedAccount(t *testing.T, code, name string, level int, nature entity.AccountNature) *entity.Account {
	t.Helper()

	account := entity.NewAccount(code, name, level, nil, nature)
	if err := env.accountRepo.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account %s: %v", code, err)
	}
	return account
}

// seedChart creates the minimum chart for entry generation: a cash account
// plus income and expense categories with their roots.
func (env *testEnv) seedChart(t *testing.T) (cash, income, expense *entity.Account) {
	t.Helper()

	env.seedAccount(t, "1", "Activo", 1, entity.AccountNatureDebit)
	cash = env.seedAccount(t, "1.1.1", "Caja", 3, entity.AccountNatureDebit)
	env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
	income = env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)
	env.seedAccount(t, "5", "Gastos", 1, entity.AccountNatureDebit)
	expense = env.seedAccount(t, "5.1.1", "Mantenimiento", 3, entity.AccountNatureDebit)
	return cash, income, expense
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records transaction and generates entry", func(t *testing.T) {
		env := newTestEnv(t)
		_, income, _ := env.seedChart(t)

		output, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(1000),
			Date:        testDate,
			AccountID:   income.ID,
			Description: "concesion kiosko",
			ActorID:     uuid.New(),
		})
		if err != nil {
			t.Fatalf("create transaction: %v", err)
		}
		if output.EntryWarning != "" {
			t.Fatalf("unexpected entry warning: %s", output.EntryWarning)
		}
		if output.Transaction.JournalEntryID == nil {
			t.Fatal("expected journal entry linked")
		}

		entry, err := env.journalRepo.FindByID(ctx, *output.Transaction.JournalEntryID)
		if err != nil {
			t.Fatalf("find entry: %v", err)
		}
		if !entry.TotalDebit.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected entry total 1000, got %s", entry.TotalDebit)
		}
	})

	t.Run("entry failure degrades to a warning", func(t *testing.T) {
		env := newTestEnv(t)
		// No cash account: the resolver cannot map the transaction.
		env.seedAccount(t, "4", "Ingresos", 1, entity.AccountNatureCredit)
		income := env.seedAccount(t, "4.1.1", "Concesiones", 3, entity.AccountNatureCredit)

		output, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:      entity.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(1000),
			Date:      testDate,
			AccountID: income.ID,
			ActorID:   uuid.New(),
		})
		if err != nil {
			t.Fatalf("create transaction: %v", err)
		}
		if output.EntryWarning == "" {
			t.Fatal("expected entry warning")
		}
		if output.Transaction.JournalEntryID != nil {
			t.Error("expected transaction left unlinked")
		}

		// The transaction itself was recorded.
		stored, err := env.transactionRepo.FindByID(ctx, output.Transaction.ID)
		if err != nil {
			t.Fatalf("find transaction: %v", err)
		}
		if stored.HasJournalEntry() {
			t.Error("expected no journal entry on stored transaction")
		}
	})

	t.Run("non positive amount is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, income, _ := env.seedChart(t)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := env.create.Execute(ctx, CreateTransactionInput{
				Type:      entity.TransactionTypeIncome,
				Amount:    amount,
				Date:      testDate,
				AccountID: income.ID,
				ActorID:   uuid.New(),
			})
			if !errors.Is(err, domainerror.ErrAmountNotPositive) {
				t.Fatalf("expected ErrAmountNotPositive for %s, got %v", amount, err)
			}
		}
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, income, _ := env.seedChart(t)

		_, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:      "transfer",
			Amount:    decimal.NewFromInt(10),
			Date:      testDate,
			AccountID: income.ID,
			ActorID:   uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("unknown or inactive category is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, income, _ := env.seedChart(t)

		_, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:      entity.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(10),
			Date:      testDate,
			AccountID: uuid.New(),
			ActorID:   uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFoundForTransaction) {
			t.Fatalf("expected ErrCategoryNotFoundForTransaction, got %v", err)
		}

		income.IsActive = false
		if err := env.accountRepo.Update(ctx, income); err != nil {
			t.Fatalf("deactivate category: %v", err)
		}
		_, err = env.create.Execute(ctx, CreateTransactionInput{
			Type:      entity.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(10),
			Date:      testDate,
			AccountID: income.ID,
			ActorID:   uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFoundForTransaction) {
			t.Fatalf("expected ErrCategoryNotFoundForTransaction for inactive category, got %v", err)
		}
	})

	t.Run("category nature must match the transaction type", func(t *testing.T) {
		env := newTestEnv(t)
		_, _, expense := env.seedChart(t)

		_, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:      entity.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(10),
			Date:      testDate,
			AccountID: expense.ID,
			ActorID:   uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrCategoryTypeMismatch) {
			t.Fatalf("expected ErrCategoryTypeMismatch, got %v", err)
		}
	})

	t.Run("overlong description is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		_, income, _ := env.seedChart(t)

		_, err := env.create.Execute(ctx, CreateTransactionInput{
			Type:        entity.TransactionTypeIncome,
			Amount:      decimal.NewFromInt(10),
			Date:        testDate,
			AccountID:   income.ID,
			Description: strings.Repeat("x", MaxDescriptionLength+1),
			ActorID:     uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrDescriptionTooLong) {
			t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
		}
	})
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, income, expense := env.seedChart(t)

	seed := func(txnType entity.TransactionType, accountID uuid.UUID, amount int64, date time.Time) {
		txn := entity.NewTransaction(txnType, decimal.NewFromInt(amount), date, accountID, "", "", uuid.New())
		if err := env.transactionRepo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}
	seed(entity.TransactionTypeIncome, income.ID, 100, testDate)
	seed(entity.TransactionTypeExpense, expense.ID, 50, testDate.AddDate(0, 0, 2))
	seed(entity.TransactionTypeIncome, income.ID, 200, testDate.AddDate(0, 1, 0))

	list := NewListTransactionsUseCase(env.transactionRepo)

	t.Run("no filter returns everything oldest first", func(t *testing.T) {
		output, err := list.Execute(ctx, ListTransactionsInput{})
		if err != nil {
			t.Fatalf("list transactions: %v", err)
		}
		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		if !output.Transactions[0].Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected oldest first, got amount %s", output.Transactions[0].Amount)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		incomeType := entity.TransactionTypeIncome
		output, err := list.Execute(ctx, ListTransactionsInput{Type: &incomeType})
		if err != nil {
			t.Fatalf("list transactions: %v", err)
		}
		if len(output.Transactions) != 2 {
			t.Fatalf("expected 2 income transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("filters by date range", func(t *testing.T) {
		start := testDate.AddDate(0, 0, 1)
		end := testDate.AddDate(0, 0, 10)
		output, err := list.Execute(ctx, ListTransactionsInput{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("list transactions: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction in range, got %d", len(output.Transactions))
		}
		if !output.Transactions[0].Amount.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected the expense row, got amount %s", output.Transactions[0].Amount)
		}
	})

	t.Run("filters by account", func(t *testing.T) {
		output, err := list.Execute(ctx, ListTransactionsInput{AccountID: &expense.ID})
		if err != nil {
			t.Fatalf("list transactions: %v", err)
		}
		if len(output.Transactions) != 1 {
			t.Fatalf("expected 1 transaction for account, got %d", len(output.Transactions))
		}
	})
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, income, _ := env.seedChart(t)

	created, err := env.create.Execute(ctx, CreateTransactionInput{
		Type:      entity.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(100),
		Date:      testDate,
		AccountID: income.ID,
		ActorID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	update := NewUpdateTransactionUseCase(env.transactionRepo, noopCache{})

	t.Run("corrects amount and description", func(t *testing.T) {
		amount := decimal.NewFromInt(150)
		description := "corrected amount"
		output, err := update.Execute(ctx, UpdateTransactionInput{
			ID:          created.Transaction.ID,
			Amount:      &amount,
			Description: &description,
		})
		if err != nil {
			t.Fatalf("update transaction: %v", err)
		}
		if !output.Transaction.Amount.Equal(amount) {
			t.Errorf("expected amount 150, got %s", output.Transaction.Amount)
		}
		if output.Transaction.Description != description {
			t.Errorf("expected updated description, got %q", output.Transaction.Description)
		}
		// The linked entry stays as generated.
		if output.Transaction.JournalEntryID == nil {
			t.Error("expected journal entry link preserved")
		}
	})

	t.Run("non positive amount is rejected", func(t *testing.T) {
		amount := decimal.Zero
		_, err := update.Execute(ctx, UpdateTransactionInput{
			ID:     created.Transaction.ID,
			Amount: &amount,
		})
		if !errors.Is(err, domainerror.ErrAmountNotPositive) {
			t.Fatalf("expected ErrAmountNotPositive, got %v", err)
		}
	})

	t.Run("unknown transaction is rejected", func(t *testing.T) {
		amount := decimal.NewFromInt(10)
		_, err := update.Execute(ctx, UpdateTransactionInput{ID: uuid.New(), Amount: &amount})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, income, _ := env.seedChart(t)

	created, err := env.create.Execute(ctx, CreateTransactionInput{
		Type:      entity.TransactionTypeIncome,
		Amount:    decimal.NewFromInt(100),
		Date:      testDate,
		AccountID: income.ID,
		ActorID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	del := NewDeleteTransactionUseCase(env.transactionRepo, noopCache{})

	t.Run("deletes the transaction but keeps the entry", func(t *testing.T) {
		if err := del.Execute(ctx, DeleteTransactionInput{ID: created.Transaction.ID}); err != nil {
			t.Fatalf("delete transaction: %v", err)
		}

		if _, err := env.transactionRepo.FindByID(ctx, created.Transaction.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected transaction gone, got %v", err)
		}
		if _, err := env.journalRepo.FindByID(ctx, *created.Transaction.JournalEntryID); err != nil {
			t.Errorf("expected journal entry preserved, got %v", err)
		}
	})

	t.Run("unknown transaction is rejected", func(t *testing.T) {
		err := del.Execute(ctx, DeleteTransactionInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
