// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// JournalEntryModel represents the journal_entries table in the database.
type JournalEntryModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntryNumber         string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Date                time.Time       `gorm:"type:date;not null;index"`
	Description         string          `gorm:"type:varchar(255);not null"`
	Reference           string          `gorm:"type:varchar(100)"`
	Status              string          `gorm:"type:varchar(10);not null;index"`
	TotalDebit          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalCredit         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SourceTransactionID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy           uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Lines []JournalEntryLineModel `gorm:"foreignKey:EntryID;references:ID"`
}

// TableName returns the table name for the JournalEntryModel.
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// JournalEntryLineModel represents the journal_entry_lines table.
type JournalEntryLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Debit       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Credit      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for the JournalEntryLineModel.
func (JournalEntryLineModel) TableName() string {
	return "journal_entry_lines"
}

// ToEntity converts a JournalEntryModel with lines to a domain entity.
func (m *JournalEntryModel) ToEntity() *entity.JournalEntry {
	entry := &entity.JournalEntry{
		ID:                  m.ID,
		EntryNumber:         m.EntryNumber,
		Date:                m.Date,
		Description:         m.Description,
		Reference:           m.Reference,
		Status:              entity.JournalEntryStatus(m.Status),
		TotalDebit:          m.TotalDebit,
		TotalCredit:         m.TotalCredit,
		SourceTransactionID: m.SourceTransactionID,
		CreatedBy:           m.CreatedBy,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		Lines:               make([]entity.JournalEntryLine, len(m.Lines)),
	}
	for i, line := range m.Lines {
		entry.Lines[i] = entity.JournalEntryLine{
			ID:          line.ID,
			EntryID:     line.EntryID,
			AccountID:   line.AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
		}
	}
	return entry
}

// JournalEntryFromEntity creates a JournalEntryModel (with line models)
// from a domain JournalEntry entity.
func JournalEntryFromEntity(entry *entity.JournalEntry) *JournalEntryModel {
	m := &JournalEntryModel{
		ID:                  entry.ID,
		EntryNumber:         entry.EntryNumber,
		Date:                entry.Date,
		Description:         entry.Description,
		Reference:           entry.Reference,
		Status:              string(entry.Status),
		TotalDebit:          entry.TotalDebit,
		TotalCredit:         entry.TotalCredit,
		SourceTransactionID: entry.SourceTransactionID,
		CreatedBy:           entry.CreatedBy,
		CreatedAt:           entry.CreatedAt,
		UpdatedAt:           entry.UpdatedAt,
		Lines:               make([]JournalEntryLineModel, len(entry.Lines)),
	}
	for i, line := range entry.Lines {
		m.Lines[i] = JournalEntryLineModel{
			ID:          line.ID,
			EntryID:     line.EntryID,
			AccountID:   line.AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
		}
	}
	return m
}
