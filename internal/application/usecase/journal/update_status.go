// Package journal contains journal-entry use cases.
package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// UpdateStatusInput represents the input for a status transition.
type UpdateStatusInput struct {
	EntryID uuid.UUID
	Target  entity.JournalEntryStatus
}

// UpdateStatusOutput represents the output of a status transition.
type UpdateStatusOutput struct {
	Entry *EntryOutput
}

// UpdateStatusUseCase moves an entry along draft -> approved -> posted.
// Posted entries never transition again; corrections require an offsetting
// entry.
type UpdateStatusUseCase struct {
	journalRepo adapter.JournalEntryRepository
}

// NewUpdateStatusUseCase creates a new UpdateStatusUseCase instance.
func NewUpdateStatusUseCase(journalRepo adapter.JournalEntryRepository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		journalRepo: journalRepo,
	}
}

// Execute performs the status transition.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) (*UpdateStatusOutput, error) {
	entry, err := uc.journalRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeEntryNotFound,
			"journal entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	switch input.Target {
	case entity.JournalEntryStatusApproved:
		err = entry.Approve()
	case entity.JournalEntryStatusPosted:
		err = entry.Post()
	default:
		err = domainerror.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeInvalidStatusTransition,
			fmt.Sprintf("cannot move entry %s from %s to %s", entry.EntryNumber, entry.Status, input.Target),
			err,
		)
	}

	if err := uc.journalRepo.UpdateStatus(ctx, entry.ID, entry.Status); err != nil {
		return nil, fmt.Errorf("failed to persist status transition: %w", err)
	}

	return &UpdateStatusOutput{Entry: toEntryOutput(entry)}, nil
}
