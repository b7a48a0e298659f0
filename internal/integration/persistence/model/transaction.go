// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type           string          `gorm:"type:varchar(10);not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Reference      string          `gorm:"type:varchar(100)"`
	JournalEntryID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		Type:           entity.TransactionType(m.Type),
		Amount:         m.Amount,
		Date:           m.Date,
		AccountID:      m.AccountID,
		Description:    m.Description,
		Reference:      m.Reference,
		JournalEntryID: m.JournalEntryID,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             transaction.ID,
		Type:           string(transaction.Type),
		Amount:         transaction.Amount,
		Date:           transaction.Date,
		AccountID:      transaction.AccountID,
		Description:    transaction.Description,
		Reference:      transaction.Reference,
		JournalEntryID: transaction.JournalEntryID,
		CreatedBy:      transaction.CreatedBy,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
