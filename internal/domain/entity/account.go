// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountNature represents which side increases an account's balance.
type AccountNature string

const (
	AccountNatureDebit  AccountNature = "debit"
	AccountNatureCredit AccountNature = "credit"
)

// Standard chart-of-accounts code prefixes.
const (
	CodePrefixAssets      = "1"
	CodePrefixLiabilities = "2"
	CodePrefixEquity      = "3"
	CodePrefixIncome      = "4"
	CodePrefixExpenses    = "5"

	// CodePrefixCash covers cash and bank accounts under the asset root.
	CodePrefixCash = "1.1"
)

// Account represents a node in the hierarchical chart of accounts.
type Account struct {
	ID          uuid.UUID
	Code        string // dotted hierarchical code, e.g. "100.01"
	Name        string
	Description string
	Level       int // 1 = root
	ParentID    *uuid.UUID
	Nature      AccountNature
	IsActive    bool
	FullPath    string // concatenation of ancestor codes, computed at write time
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAccount creates a new Account entity. FullPath defaults to the account's
// own code; the use case overwrites it when a parent is present.
func NewAccount(code, name string, level int, parentID *uuid.UUID, nature AccountNature) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Code:      code,
		Name:      name,
		Level:     level,
		ParentID:  parentID,
		Nature:    nature,
		IsActive:  true,
		FullPath:  code,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RootCode returns the first segment of the account code.
func (a *Account) RootCode() string {
	if idx := strings.Index(a.Code, "."); idx >= 0 {
		return a.Code[:idx]
	}
	return a.Code
}

// IsIncomeCategory reports whether the account lives under the income root.
func (a *Account) IsIncomeCategory() bool {
	return a.RootCode() == CodePrefixIncome
}

// IsExpenseCategory reports whether the account lives under the expense root.
func (a *Account) IsExpenseCategory() bool {
	return a.RootCode() == CodePrefixExpenses
}

// NaturalSignedBalance applies the account's nature to period activity:
// debit-natured accounts grow with debits, credit-natured with credits.
func (a *Account) NaturalSignedBalance(debits, credits decimal.Decimal) decimal.Decimal {
	if a.Nature == AccountNatureDebit {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}

// ExpectedNatureFor returns the conventional account nature for a
// transaction type: income categories are credit-natured, expense
// categories debit-natured.
func ExpectedNatureFor(transactionType TransactionType) AccountNature {
	if transactionType == TransactionTypeIncome {
		return AccountNatureCredit
	}
	return AccountNatureDebit
}
