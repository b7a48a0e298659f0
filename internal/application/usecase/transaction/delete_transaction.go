// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion. Deleting a
// transaction does not reverse a posted journal entry generated from it;
// corrections in the ledger go through offsetting entries.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, transaction.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if transaction.HasJournalEntry() {
		slog.Info("Transaction deleted; linked journal entry left in place",
			"transactionID", transaction.ID,
			"journalEntryID", *transaction.JournalEntryID,
		)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, transaction.Date.Year()); err != nil {
			slog.Warn("Failed to invalidate report cache after transaction delete",
				"year", transaction.Date.Year(),
				"error", err,
			)
		}
	}

	return nil
}
