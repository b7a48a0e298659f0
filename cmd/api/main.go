// Package main is the entry point for the parks finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aspal-sistemas/parksys-finance/config"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/account"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/budget"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/cashflow"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/ledger"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/transaction"
	"github.com/aspal-sistemas/parksys-finance/internal/infra/db"
	"github.com/aspal-sistemas/parksys-finance/internal/infra/server/router"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/adapters"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/cache"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/controller"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/entrypoint/middleware"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting parks finance API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	if err := db.SeedChartOfAccounts(database.DB()); err != nil {
		slog.Error("Failed to seed chart of accounts", "error", err)
		os.Exit(1)
	}

	// Initialize Redis report cache
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()
	reportCache := cache.NewReportCache(redisClient, logger)

	// Create repositories
	accountRepo := persistence.NewAccountRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	journalRepo := persistence.NewJournalRepository(database.DB())
	budgetRepo := persistence.NewBudgetRepository(database.DB())

	// Create services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deactivateAccountUseCase := account.NewDeactivateAccountUseCase(accountRepo, transactionRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	resolvePathUseCase := account.NewResolvePathUseCase(accountRepo)

	// Create journal use cases
	resolver := journal.NewAccountResolver(accountRepo)
	generateEntryUseCase := journal.NewGenerateEntryUseCase(transactionRepo, journalRepo, resolver, reportCache)
	generateUnprocessedUseCase := journal.NewGenerateUnprocessedUseCase(transactionRepo, generateEntryUseCase)
	listEntriesUseCase := journal.NewListEntriesUseCase(journalRepo)
	updateStatusUseCase := journal.NewUpdateStatusUseCase(journalRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, generateEntryUseCase, reportCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)

	// Create ledger use cases
	trialBalanceUseCase := ledger.NewTrialBalanceUseCase(accountRepo, journalRepo, reportCache)
	balanceSheetUseCase := ledger.NewBalanceSheetUseCase(accountRepo, journalRepo, reportCache)
	incomeStatementUseCase := ledger.NewIncomeStatementUseCase(transactionRepo, reportCache)

	// Create budget use cases
	getMatrixUseCase := budget.NewGetMatrixUseCase(accountRepo, budgetRepo)
	saveMatrixUseCase := budget.NewSaveMatrixUseCase(accountRepo, budgetRepo, reportCache)
	importCSVUseCase := budget.NewImportCSVUseCase(accountRepo, budgetRepo, reportCache)
	exportCSVUseCase := budget.NewExportCSVUseCase(getMatrixUseCase)

	// Create cash-flow use cases
	realizedMatrixUseCase := cashflow.NewRealizedMatrixUseCase(transactionRepo, reportCache)
	varianceUseCase := cashflow.NewVarianceUseCase(getMatrixUseCase, realizedMatrixUseCase)

	// Create controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return redisClient.Ping(ctx).Err() == nil
	})
	accountController := controller.NewAccountController(
		createAccountUseCase,
		updateAccountUseCase,
		deactivateAccountUseCase,
		listAccountsUseCase,
		resolvePathUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)
	journalController := controller.NewJournalController(
		listEntriesUseCase,
		updateStatusUseCase,
		generateUnprocessedUseCase,
	)
	reportController := controller.NewReportController(
		trialBalanceUseCase,
		balanceSheetUseCase,
		incomeStatementUseCase,
		realizedMatrixUseCase,
		varianceUseCase,
	)
	budgetController := controller.NewBudgetController(
		getMatrixUseCase,
		saveMatrixUseCase,
		importCSVUseCase,
		exportCSVUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router and HTTP server
	appRouter := router.NewRouter(
		healthController,
		accountController,
		transactionController,
		journalController,
		reportController,
		budgetController,
		authMiddleware,
	)
	engine := appRouter.Setup(cfg.Server.Environment)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}
