// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// AccountActivity holds the summed debit and credit postings of one account
// over some date range.
type AccountActivity struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// JournalEntryRepository defines the interface for journal entry persistence.
type JournalEntryRepository interface {
	// CreateWithLines persists the entry header and all of its lines as a
	// single atomic unit, assigns the entry a sequential number for its
	// year, and, when the entry has a source transaction, writes the entry
	// ID back onto that transaction row inside the same database
	// transaction. Either every row exists afterwards or none do.
	CreateWithLines(ctx context.Context, entry *entity.JournalEntry) error

	// FindByID retrieves a journal entry with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error)

	// FindByPeriod retrieves entries whose date falls within [from, to),
	// with lines, ordered by date then entry number.
	FindByPeriod(ctx context.Context, from, to time.Time) ([]*entity.JournalEntry, error)

	// ActivityInRange sums the line debits and credits per account for
	// entries whose date falls within [from, to).
	ActivityInRange(ctx context.Context, from, to time.Time) (map[uuid.UUID]AccountActivity, error)

	// UpdateStatus persists a status transition. The caller is responsible
	// for validating the transition on the entity first.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.JournalEntryStatus) error
}
