package journal

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// noopCache satisfies adapter.ReportCache for tests that do not exercise
// caching.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (noopCache) InvalidateYear(ctx context.Context, year int) error { return nil }

// testEnv bundles the repositories and use cases under test against a
// fresh in-memory database.
type testEnv struct {
	db              *gorm.DB
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalEntryRepository
	resolver        *AccountResolver
	generate        *GenerateEntryUseCase
	catchUp         *GenerateUnprocessedUseCase
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
		db:              db,
		accountRepo:     persistence.NewAccountRepository(db),
		transactionRepo: persistence.NewTransactionRepository(db),
		journalRepo:     persistence.NewJournalRepository(db),
	}
	env.resolver = NewAccountResolver(env.accountRepo)
	env.generate = NewGenerateEntryUseCase(env.transactionRepo, env.journalRepo, env.resolver, noopCache{})
	env.catchUp = NewGenerateUnprocessedUseCase(env.transactionRepo, env.generate)
	return env
}

// seedAccount persists one account and returns it.
func (env *testEnv) seedAccount(t *testing.T, code, name string, level int, nature entity.AccountNature) *entity.Account {
	t.Helper()

	account := entity.NewAccount(code, name, level, nil, nature)
	if err := env.accountRepo.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account %s: %v", code, err)
	}
	return account
}

// seedChart seeds the minimum chart automatic generation needs: a cash
// account plus one operational category per side.
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

// seedTransaction persists one transaction and returns it.
func (env *testEnv) seedTransaction(t *testing.T, txnType entity.TransactionType, amount int64, account *entity.Account, date time.Time) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(
		txnType,
		decimal.NewFromInt(amount),
		date,
		account.ID,
		"test transaction",
		"",
		uuid.New(),
	)
	if err := env.transactionRepo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}
