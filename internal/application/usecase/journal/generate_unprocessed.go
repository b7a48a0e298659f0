// Package journal contains journal-entry use cases.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
)

// DefaultCatchUpLimit bounds a catch-up batch when the caller passes no limit.
const DefaultCatchUpLimit = 100

// GenerateUnprocessedInput represents the input for the batch catch-up run.
type GenerateUnprocessedInput struct {
	Limit   int
	ActorID uuid.UUID
}

// ItemFailure describes one transaction the batch could not process.
type ItemFailure struct {
	TransactionID uuid.UUID
	Reason        string
}

// GenerateUnprocessedOutput summarizes a catch-up run.
type GenerateUnprocessedOutput struct {
	Processed int
	Failed    int
	Failures  []ItemFailure
}

// GenerateUnprocessedUseCase scans transactions that lack a linked journal
// entry and generates one for each, oldest first. One item's failure never
// aborts the batch, and a second run right after a clean first run finds
// nothing to do.
type GenerateUnprocessedUseCase struct {
	transactionRepo adapter.TransactionRepository
	generateEntry   *GenerateEntryUseCase

	// Serializes batch runs so two catch-up jobs never interleave over the
	// same unprocessed set. Volumes are modest; a process-wide mutex is
	// enough.
	mu sync.Mutex
}

// NewGenerateUnprocessedUseCase creates a new GenerateUnprocessedUseCase instance.
func NewGenerateUnprocessedUseCase(
	transactionRepo adapter.TransactionRepository,
	generateEntry *GenerateEntryUseCase,
) *GenerateUnprocessedUseCase {
	return &GenerateUnprocessedUseCase{
		transactionRepo: transactionRepo,
		generateEntry:   generateEntry,
	}
}

// Execute runs the catch-up batch.
func (uc *GenerateUnprocessedUseCase) Execute(ctx context.Context, input GenerateUnprocessedInput) (*GenerateUnprocessedOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultCatchUpLimit
	}

	transactions, err := uc.transactionRepo.FindUnprocessed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan unprocessed transactions: %w", err)
	}

	output := &GenerateUnprocessedOutput{}
	for _, transaction := range transactions {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		_, err := uc.generateEntry.Execute(ctx, GenerateEntryInput{
			TransactionID: transaction.ID,
			ActorID:       input.ActorID,
		})
		if err != nil {
			output.Failed++
			output.Failures = append(output.Failures, ItemFailure{
				TransactionID: transaction.ID,
				Reason:        err.Error(),
			})
			slog.Warn("Catch-up entry generation failed for transaction",
				"transactionID", transaction.ID,
				"error", err,
			)
			continue
		}
		output.Processed++
	}

	slog.Info("Journal catch-up run finished",
		"processed", output.Processed,
		"failed", output.Failed,
	)

	return output, nil
}
