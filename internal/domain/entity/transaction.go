// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a financial transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is the durable record of a realized income or expense fact.
// A linked journal entry is a derived bookkeeping artifact; the transaction
// remains valid without one and the link can be established later.
type Transaction struct {
	ID             uuid.UUID
	Type           TransactionType
	Amount         decimal.Decimal // always positive
	Date           time.Time
	AccountID      uuid.UUID // operational category in the chart of accounts
	Description    string
	Reference      string
	JournalEntryID *uuid.UUID // nil until an entry has been generated
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	accountID uuid.UUID,
	description string,
	reference string,
	createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		AccountID:   accountID,
		Description: description,
		Reference:   reference,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HasJournalEntry reports whether a journal entry has been generated for
// this transaction.
func (t *Transaction) HasJournalEntry() bool {
	return t.JournalEntryID != nil
}

// TransactionWithAccount pairs a transaction with its category account.
type TransactionWithAccount struct {
	Transaction *Transaction
	Account     *Account
}
