// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// JournalEntryStatus represents the lifecycle state of a journal entry.
type JournalEntryStatus string

const (
	JournalEntryStatusDraft    JournalEntryStatus = "draft"
	JournalEntryStatusApproved JournalEntryStatus = "approved"
	JournalEntryStatusPosted   JournalEntryStatus = "posted"
)

// JournalEntry is a balanced set of debit/credit postings recorded together.
// Once posted it is immutable; corrections require a new offsetting entry.
type JournalEntry struct {
	ID                  uuid.UUID
	EntryNumber         string // unique, human-readable, e.g. "PZ-2025-0001"
	Date                time.Time
	Description         string
	Reference           string
	Status              JournalEntryStatus
	TotalDebit          decimal.Decimal
	TotalCredit         decimal.Decimal
	SourceTransactionID *uuid.UUID // nil for manual entries
	CreatedBy           uuid.UUID
	Lines               []JournalEntryLine
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// JournalEntryLine is a single posting within a journal entry. Exactly one
// of Debit or Credit is non-zero.
type JournalEntryLine struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	AccountID   uuid.UUID
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// NewJournalEntry creates a new draft JournalEntry entity.
func NewJournalEntry(
	date time.Time,
	description string,
	reference string,
	sourceTransactionID *uuid.UUID,
	createdBy uuid.UUID,
) *JournalEntry {
	now := time.Now().UTC()

	return &JournalEntry{
		ID:                  uuid.New(),
		Date:                date,
		Description:         description,
		Reference:           reference,
		Status:              JournalEntryStatusDraft,
		TotalDebit:          decimal.Zero,
		TotalCredit:         decimal.Zero,
		SourceTransactionID: sourceTransactionID,
		CreatedBy:           createdBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// AddDebitLine appends a debit posting and updates the entry total.
func (e *JournalEntry) AddDebitLine(accountID uuid.UUID, amount decimal.Decimal, description string) {
	e.Lines = append(e.Lines, JournalEntryLine{
		ID:          uuid.New(),
		EntryID:     e.ID,
		AccountID:   accountID,
		Debit:       amount,
		Credit:      decimal.Zero,
		Description: description,
	})
	e.TotalDebit = e.TotalDebit.Add(amount)
}

// AddCreditLine appends a credit posting and updates the entry total.
func (e *JournalEntry) AddCreditLine(accountID uuid.UUID, amount decimal.Decimal, description string) {
	e.Lines = append(e.Lines, JournalEntryLine{
		ID:          uuid.New(),
		EntryID:     e.ID,
		AccountID:   accountID,
		Debit:       decimal.Zero,
		Credit:      amount,
		Description: description,
	})
	e.TotalCredit = e.TotalCredit.Add(amount)
}

// IsOneSided reports whether the line carries an amount on exactly one side.
func (l *JournalEntryLine) IsOneSided() bool {
	if l.Debit.IsZero() {
		return l.Credit.IsPositive()
	}
	return l.Credit.IsZero() && l.Debit.IsPositive()
}

// Validate checks the double-entry invariants: at least two lines, every
// line one-sided, and the sum of debits equal to the sum of credits.
func (e *JournalEntry) Validate() error {
	if len(e.Lines) < 2 {
		return domainerror.ErrEntryTooFewLines
	}

	sumDebit := decimal.Zero
	sumCredit := decimal.Zero
	for i := range e.Lines {
		if !e.Lines[i].IsOneSided() {
			return domainerror.ErrLineNotOneSided
		}
		sumDebit = sumDebit.Add(e.Lines[i].Debit)
		sumCredit = sumCredit.Add(e.Lines[i].Credit)
	}

	if !sumDebit.Equal(sumCredit) {
		return domainerror.ErrUnbalancedEntry
	}
	if !sumDebit.Equal(e.TotalDebit) || !sumCredit.Equal(e.TotalCredit) {
		return domainerror.ErrEntryTotalsMismatch
	}

	return nil
}

// Approve transitions a draft entry to approved.
func (e *JournalEntry) Approve() error {
	if e.Status != JournalEntryStatusDraft {
		return domainerror.ErrInvalidStatusTransition
	}
	e.Status = JournalEntryStatusApproved
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// Post transitions an approved entry to posted. Posted entries are final.
func (e *JournalEntry) Post() error {
	if e.Status != JournalEntryStatusApproved {
		return domainerror.ErrInvalidStatusTransition
	}
	e.Status = JournalEntryStatusPosted
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// IsPosted reports whether the entry has reached its final state.
func (e *JournalEntry) IsPosted() bool {
	return e.Status == JournalEntryStatusPosted
}
