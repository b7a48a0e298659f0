// Package journal contains journal-entry use cases.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
)

// ListEntriesInput represents the input for listing journal entries.
// Month zero means the whole year.
type ListEntriesInput struct {
	Year  int
	Month int
}

// ListEntriesOutput represents the output of listing journal entries.
type ListEntriesOutput struct {
	Entries []*EntryOutput
}

// ListEntriesUseCase lists journal entries for a period, with lines.
type ListEntriesUseCase struct {
	journalRepo adapter.JournalEntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(journalRepo adapter.JournalEntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		journalRepo: journalRepo,
	}
}

// Execute retrieves the entries of the requested period.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	from, to := PeriodBounds(input.Year, input.Month)

	entries, err := uc.journalRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	output := &ListEntriesOutput{
		Entries: make([]*EntryOutput, len(entries)),
	}
	for i, entry := range entries {
		output.Entries[i] = toEntryOutput(entry)
	}
	return output, nil
}

// PeriodBounds returns the [from, to) UTC bounds of a year or year-month
// period. Month zero selects the whole year.
func PeriodBounds(year, month int) (time.Time, time.Time) {
	if month <= 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(1, 0, 0)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
