package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

type testEnv struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.AccountModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &testEnv{
		accountRepo:     persistence.NewAccountRepository(db),
		transactionRepo: persistence.NewTransactionRepository(db),
	}
}

func strPtr(s string) *string { return &s }

func TestCreateAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates root account", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		output, err := uc.Execute(ctx, CreateAccountInput{
			Code:   "1",
			Name:   "Activo",
			Level:  1,
			Nature: entity.AccountNatureDebit,
		})
		if err != nil {
			t.Fatalf("create account: %v", err)
		}
		if output.Account.Code != "1" {
			t.Errorf("expected code 1, got %s", output.Account.Code)
		}
		if output.Account.FullPath != "1" {
			t.Errorf("expected full path 1, got %s", output.Account.FullPath)
		}
		if !output.Account.IsActive {
			t.Error("expected new account active")
		}
	})

	t.Run("child inherits path and corrected level", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		root, err := uc.Execute(ctx, CreateAccountInput{
			Code: "1", Name: "Activo", Level: 1, Nature: entity.AccountNatureDebit,
		})
		if err != nil {
			t.Fatalf("create root: %v", err)
		}

		child, err := uc.Execute(ctx, CreateAccountInput{
			Code:     "1.1",
			Name:     "Efectivo y Bancos",
			Level:    1, // too shallow, must be corrected
			ParentID: &root.Account.ID,
			Nature:   entity.AccountNatureDebit,
		})
		if err != nil {
			t.Fatalf("create child: %v", err)
		}
		if child.Account.FullPath != "1.1.1" {
			t.Errorf("expected full path 1.1.1, got %s", child.Account.FullPath)
		}
		if child.Account.Level != 2 {
			t.Errorf("expected level 2, got %d", child.Account.Level)
		}
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		if _, err := uc.Execute(ctx, CreateAccountInput{
			Code: "1", Name: "Activo", Level: 1, Nature: entity.AccountNatureDebit,
		}); err != nil {
			t.Fatalf("create account: %v", err)
		}

		_, err := uc.Execute(ctx, CreateAccountInput{
			Code: "1", Name: "Otro Activo", Level: 1, Nature: entity.AccountNatureDebit,
		})
		if !errors.Is(err, domainerror.ErrDuplicateCode) {
			t.Fatalf("expected ErrDuplicateCode, got %v", err)
		}
	})

	t.Run("unknown parent is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		missing := uuid.New()
		_, err := uc.Execute(ctx, CreateAccountInput{
			Code: "1.1", Name: "Efectivo", Level: 2, ParentID: &missing,
			Nature: entity.AccountNatureDebit,
		})
		if !errors.Is(err, domainerror.ErrParentNotFound) {
			t.Fatalf("expected ErrParentNotFound, got %v", err)
		}
	})

	t.Run("invalid nature is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		_, err := uc.Execute(ctx, CreateAccountInput{
			Code: "1", Name: "Activo", Level: 1, Nature: "sideways",
		})
		if !errors.Is(err, domainerror.ErrInvalidAccountNature) {
			t.Fatalf("expected ErrInvalidAccountNature, got %v", err)
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewCreateAccountUseCase(env.accountRepo)

		var accErr *domainerror.AccountError
		_, err := uc.Execute(ctx, CreateAccountInput{Name: "Activo", Nature: entity.AccountNatureDebit})
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeMissingAccountFields {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})
}

func TestUpdateAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	create := NewCreateAccountUseCase(env.accountRepo)
	update := NewUpdateAccountUseCase(env.accountRepo)

	created, err := create.Execute(ctx, CreateAccountInput{
		Code: "4.1.1", Name: "Concesiones", Level: 3, Nature: entity.AccountNatureCredit,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	t.Run("updates metadata only", func(t *testing.T) {
		output, err := update.Execute(ctx, UpdateAccountInput{
			ID:          created.Account.ID,
			Name:        strPtr("Concesiones de Parque"),
			Description: strPtr("Ingresos por concesiones"),
		})
		if err != nil {
			t.Fatalf("update account: %v", err)
		}
		if output.Account.Name != "Concesiones de Parque" {
			t.Errorf("expected updated name, got %s", output.Account.Name)
		}
		if output.Account.Code != "4.1.1" {
			t.Errorf("code must not change, got %s", output.Account.Code)
		}
		if output.Account.Nature != entity.AccountNatureCredit {
			t.Errorf("nature must not change, got %s", output.Account.Nature)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateAccountInput{
			ID:   created.Account.ID,
			Name: strPtr(""),
		})
		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) || accErr.Code != domainerror.ErrCodeMissingAccountFields {
			t.Fatalf("expected missing fields error, got %v", err)
		}
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		_, err := update.Execute(ctx, UpdateAccountInput{ID: uuid.New(), Name: strPtr("x")})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestDeactivateAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, env *testEnv, code string, parentID *uuid.UUID) *entity.Account {
		t.Helper()
		account := entity.NewAccount(code, "Cuenta "+code, 1, parentID, entity.AccountNatureDebit)
		if err := env.accountRepo.Create(ctx, account); err != nil {
			t.Fatalf("failed to seed account %s: %v", code, err)
		}
		return account
	}

	t.Run("deactivates unreferenced account", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewDeactivateAccountUseCase(env.accountRepo, env.transactionRepo)

		account := seed(t, env, "5.1.9", nil)
		if err := uc.Execute(ctx, DeactivateAccountInput{ID: account.ID}); err != nil {
			t.Fatalf("deactivate: %v", err)
		}

		stored, err := env.accountRepo.FindByID(ctx, account.ID)
		if err != nil {
			t.Fatalf("find account: %v", err)
		}
		if stored.IsActive {
			t.Error("expected account inactive")
		}
	})

	t.Run("refuses account with transactions", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewDeactivateAccountUseCase(env.accountRepo, env.transactionRepo)

		account := seed(t, env, "5.1.1", nil)
		txn := entity.NewTransaction(
			entity.TransactionTypeExpense,
			decimal.NewFromInt(100),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			account.ID,
			"test transaction",
			"",
			uuid.New(),
		)
		if err := env.transactionRepo.Create(ctx, txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}

		err := uc.Execute(ctx, DeactivateAccountInput{ID: account.ID})
		if !errors.Is(err, domainerror.ErrAccountHasTransactions) {
			t.Fatalf("expected ErrAccountHasTransactions, got %v", err)
		}
	})

	t.Run("refuses account with active children", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewDeactivateAccountUseCase(env.accountRepo, env.transactionRepo)

		parent := seed(t, env, "1", nil)
		seed(t, env, "1.1", &parent.ID)

		err := uc.Execute(ctx, DeactivateAccountInput{ID: parent.ID})
		if !errors.Is(err, domainerror.ErrAccountHasChildren) {
			t.Fatalf("expected ErrAccountHasChildren, got %v", err)
		}
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		uc := NewDeactivateAccountUseCase(env.accountRepo, env.transactionRepo)

		err := uc.Execute(ctx, DeactivateAccountInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestResolvePathUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	create := NewCreateAccountUseCase(env.accountRepo)
	uc := NewResolvePathUseCase(env.accountRepo)

	root, err := create.Execute(ctx, CreateAccountInput{
		Code: "1", Name: "Activo", Level: 1, Nature: entity.AccountNatureDebit,
	})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	mid, err := create.Execute(ctx, CreateAccountInput{
		Code: "1.1", Name: "Efectivo y Bancos", Level: 2, ParentID: &root.Account.ID,
		Nature: entity.AccountNatureDebit,
	})
	if err != nil {
		t.Fatalf("create mid: %v", err)
	}
	if _, err := create.Execute(ctx, CreateAccountInput{
		Code: "1.1.1", Name: "Caja", Level: 3, ParentID: &mid.Account.ID,
		Nature: entity.AccountNatureDebit,
	}); err != nil {
		t.Fatalf("create leaf: %v", err)
	}

	t.Run("chain runs root first", func(t *testing.T) {
		output, err := uc.Execute(ctx, ResolvePathInput{Code: "1.1.1"})
		if err != nil {
			t.Fatalf("resolve path: %v", err)
		}
		if len(output.Chain) != 3 {
			t.Fatalf("expected chain of 3, got %d", len(output.Chain))
		}
		codes := []string{output.Chain[0].Code, output.Chain[1].Code, output.Chain[2].Code}
		if codes[0] != "1" || codes[1] != "1.1" || codes[2] != "1.1.1" {
			t.Errorf("unexpected chain order: %v", codes)
		}
	})

	t.Run("root resolves to itself", func(t *testing.T) {
		output, err := uc.Execute(ctx, ResolvePathInput{Code: "1"})
		if err != nil {
			t.Fatalf("resolve path: %v", err)
		}
		if len(output.Chain) != 1 || output.Chain[0].Code != "1" {
			t.Fatalf("expected single-element chain, got %d", len(output.Chain))
		}
	})

	t.Run("unknown code is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, ResolvePathInput{Code: "9.9.9"})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestListAccountsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	create := NewCreateAccountUseCase(env.accountRepo)
	list := NewListAccountsUseCase(env.accountRepo)
	deactivate := NewDeactivateAccountUseCase(env.accountRepo, env.transactionRepo)

	for _, seed := range []struct {
		code, name string
	}{
		{"5", "Gastos"},
		{"1", "Activo"},
		{"4", "Ingresos"},
	} {
		if _, err := create.Execute(ctx, CreateAccountInput{
			Code: seed.code, Name: seed.name, Level: 1, Nature: entity.AccountNatureDebit,
		}); err != nil {
			t.Fatalf("create %s: %v", seed.code, err)
		}
	}

	output, err := list.Execute(ctx, ListAccountsInput{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(output.Accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(output.Accounts))
	}
	if output.Accounts[0].Code != "1" || output.Accounts[2].Code != "5" {
		t.Errorf("expected code order, got %s .. %s", output.Accounts[0].Code, output.Accounts[2].Code)
	}

	if err := deactivate.Execute(ctx, DeactivateAccountInput{ID: output.Accounts[2].ID}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := list.Execute(ctx, ListAccountsInput{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(active.Accounts) != 2 {
		t.Errorf("expected 2 active accounts, got %d", len(active.Accounts))
	}

	all, err := list.Execute(ctx, ListAccountsInput{ActiveOnly: false})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(all.Accounts) != 3 {
		t.Errorf("expected 3 accounts including inactive, got %d", len(all.Accounts))
	}
}
