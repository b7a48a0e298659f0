// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/application/usecase/journal"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	AccountID   uuid.UUID
	Description string
	Reference   string
	ActorID     uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
// EntryWarning carries the phase-2 failure, if any: the transaction itself
// was recorded either way.
type CreateTransactionOutput struct {
	Transaction  *TransactionOutput
	EntryWarning string
}

// CreateTransactionUseCase records a financial transaction, then attempts
// journal-entry generation as a distinct second phase. Phase 2 failure is
// reported as a warning, never as a failure of the recording call; the
// batch catch-up closes the gap later.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	generateEntry   *journal.GenerateEntryUseCase
	cache           adapter.ReportCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	generateEntry *journal.GenerateEntryUseCase,
	cache adapter.ReportCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		generateEntry:   generateEntry,
		cache:           cache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeAmountNotPositive,
			"amount must be greater than zero",
			domainerror.ErrAmountNotPositive,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	category, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil || !category.IsActive {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found or inactive",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if category.Nature != entity.ExpectedNatureFor(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %s is %s-natured, which does not match a %s transaction",
				category.Code, category.Nature, input.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Date,
		input.AccountID,
		input.Description,
		input.Reference,
		input.ActorID,
	)

	// Phase 1: the durable record of fact.
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, transaction.Date.Year()); err != nil {
			slog.Warn("Failed to invalidate report cache after transaction create",
				"year", transaction.Date.Year(),
				"error", err,
			)
		}
	}

	output := &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}

	// Phase 2: derived bookkeeping, best-effort. The catch-up batch will
	// retry transactions this leaves unlinked.
	entryOutput, err := uc.generateEntry.Execute(ctx, journal.GenerateEntryInput{
		TransactionID: transaction.ID,
		ActorID:       input.ActorID,
	})
	if err != nil {
		output.EntryWarning = err.Error()
		slog.Warn("Journal entry generation failed after transaction create",
			"transactionID", transaction.ID,
			"error", err,
		)
		return output, nil
	}

	entryID := entryOutput.Entry.ID
	output.Transaction.JournalEntryID = &entryID

	return output, nil
}

// TransactionOutput is the use-case level representation of a transaction.
type TransactionOutput struct {
	ID             uuid.UUID
	Type           entity.TransactionType
	Amount         decimal.Decimal
	Date           time.Time
	AccountID      uuid.UUID
	Description    string
	Reference      string
	JournalEntryID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:             transaction.ID,
		Type:           transaction.Type,
		Amount:         transaction.Amount,
		Date:           transaction.Date,
		AccountID:      transaction.AccountID,
		Description:    transaction.Description,
		Reference:      transaction.Reference,
		JournalEntryID: transaction.JournalEntryID,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
