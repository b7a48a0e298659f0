// Package journal contains journal-entry use cases.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// GenerateEntryInput represents the input for automatic entry generation.
type GenerateEntryInput struct {
	TransactionID uuid.UUID
	ActorID       uuid.UUID
}

// GenerateEntryOutput represents the output of entry generation.
type GenerateEntryOutput struct {
	Entry *EntryOutput
}

// GenerateEntryUseCase turns a recorded transaction into a balanced
// double-entry journal entry and links the two atomically.
type GenerateEntryUseCase struct {
	transactionRepo adapter.TransactionRepository
	journalRepo     adapter.JournalEntryRepository
	resolver        *AccountResolver
	cache           adapter.ReportCache
}

// NewGenerateEntryUseCase creates a new GenerateEntryUseCase instance.
func NewGenerateEntryUseCase(
	transactionRepo adapter.TransactionRepository,
	journalRepo adapter.JournalEntryRepository,
	resolver *AccountResolver,
	cache adapter.ReportCache,
) *GenerateEntryUseCase {
	return &GenerateEntryUseCase{
		transactionRepo: transactionRepo,
		journalRepo:     journalRepo,
		resolver:        resolver,
		cache:           cache,
	}
}

// Execute generates and persists the entry. The operation is idempotent per
// transaction: a transaction that already has a linked entry is rejected
// with ErrEntryAlreadyLinked and no new rows are written.
func (uc *GenerateEntryUseCase) Execute(ctx context.Context, input GenerateEntryInput) (*GenerateEntryOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.HasJournalEntry() {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeEntryAlreadyLinked,
			"transaction already has a journal entry",
			domainerror.ErrEntryAlreadyLinked,
		)
	}

	if !transaction.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeAmountNotPositive,
			"transaction amount must be positive",
			domainerror.ErrAmountNotPositive,
		)
	}

	accounts, err := uc.resolver.Resolve(ctx, transaction.Type)
	if err != nil {
		return nil, err
	}

	entry := buildEntry(transaction, accounts, input.ActorID)
	if err := entry.Validate(); err != nil {
		// Unreachable for two symmetric lines; kept as the last gate
		// before anything is written.
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeUnbalancedEntry,
			"generated entry failed validation",
			err,
		)
	}

	if err := uc.journalRepo.CreateWithLines(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to persist journal entry: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateYear(ctx, transaction.Date.Year()); err != nil {
			slog.Warn("Failed to invalidate report cache after entry generation",
				"year", transaction.Date.Year(),
				"error", err,
			)
		}
	}

	slog.Info("Journal entry generated",
		"entryNumber", entry.EntryNumber,
		"transactionID", transaction.ID,
		"amount", transaction.Amount.String(),
		"type", transaction.Type,
	)

	return &GenerateEntryOutput{Entry: toEntryOutput(entry)}, nil
}

// buildEntry assembles the balanced two-line entry for a transaction.
func buildEntry(transaction *entity.Transaction, accounts *ResolvedAccounts, actorID uuid.UUID) *entity.JournalEntry {
	description := fmt.Sprintf("Automatic entry - %s", transaction.Description)

	entry := entity.NewJournalEntry(
		transaction.Date,
		description,
		transaction.Reference,
		&transaction.ID,
		actorID,
	)

	debitAccount := accounts.DebitAccount(transaction.Type)
	creditAccount := accounts.CreditAccount(transaction.Type)

	entry.AddDebitLine(debitAccount.ID, transaction.Amount,
		fmt.Sprintf("%s - %s", debitAccount.Name, transaction.Description))
	entry.AddCreditLine(creditAccount.ID, transaction.Amount,
		fmt.Sprintf("%s - %s", creditAccount.Name, transaction.Description))

	return entry
}

// EntryOutput is the use-case level representation of a journal entry.
type EntryOutput struct {
	ID                  uuid.UUID
	EntryNumber         string
	Date                time.Time
	Description         string
	Reference           string
	Status              entity.JournalEntryStatus
	TotalDebit          decimal.Decimal
	TotalCredit         decimal.Decimal
	SourceTransactionID *uuid.UUID
	Lines               []EntryLineOutput
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// EntryLineOutput is the use-case level representation of an entry line.
type EntryLineOutput struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

func toEntryOutput(entry *entity.JournalEntry) *EntryOutput {
	output := &EntryOutput{
		ID:                  entry.ID,
		EntryNumber:         entry.EntryNumber,
		Date:                entry.Date,
		Description:         entry.Description,
		Reference:           entry.Reference,
		Status:              entry.Status,
		TotalDebit:          entry.TotalDebit,
		TotalCredit:         entry.TotalCredit,
		SourceTransactionID: entry.SourceTransactionID,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
		Lines:               make([]EntryLineOutput, len(entry.Lines)),
	}
	for i, line := range entry.Lines {
		output.Lines[i] = EntryLineOutput{
			ID:          line.ID,
			AccountID:   line.AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
		}
	}
	return output
}
