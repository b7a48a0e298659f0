package ledger

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
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }
func (noopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}
func (noopCache) InvalidateYear(ctx context.Context, year int) error { return nil }

type testEnv struct {
	db              *gorm.DB
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalEntryRepository
	generate        *journal.GenerateEntryUseCase
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
	resolver := journal.NewAccountResolver(env.accountRepo)
	env.generate = journal.NewGenerateEntryUseCase(env.transactionRepo, env.journalRepo, resolver, noopCache{})
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

// recordTransaction persists a transaction and generates its journal entry.
func (env *testEnv) recordTransaction(t *testing.T, txnType entity.TransactionType, amount int64, account *entity.Account, date time.Time) *entity.Transaction {
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
	if _, err := env.generate.Execute(context.Background(), journal.GenerateEntryInput{
		TransactionID: txn.ID,
		ActorID:       uuid.New(),
	}); err != nil {
		t.Fatalf("failed to generate journal entry: %v", err)
	}
	return txn
}
