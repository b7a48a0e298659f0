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
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates.
// Type and category are fixed at creation; description, reference, date
// and amount may be corrected.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	Reference   *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction updates. Updating does not
// touch any journal entry already generated from the transaction.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.ReportCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	cache adapter.ReportCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeAmountNotPositive,
				"amount must be greater than zero",
				domainerror.ErrAmountNotPositive,
			)
		}
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		transaction.Description = *input.Description
	}
	if input.Reference != nil {
		transaction.Reference = *input.Reference
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, transaction.Date.Year()); err != nil {
			slog.Warn("Failed to invalidate report cache after transaction update",
				"year", transaction.Date.Year(),
				"error", err,
			)
		}
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
