// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"type:varchar(30);not null;uniqueIndex"`
	Name        string     `gorm:"type:varchar(120);not null"`
	Description string     `gorm:"type:text"`
	Level       int        `gorm:"not null;default:1"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Nature      string     `gorm:"type:varchar(10);not null"`
	IsActive    bool       `gorm:"not null;default:true;index"`
	FullPath    string     `gorm:"type:varchar(255);not null"`
	SortOrder   int        `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Parent *AccountModel `gorm:"foreignKey:ParentID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Level:       m.Level,
		ParentID:    m.ParentID,
		Nature:      entity.AccountNature(m.Nature),
		IsActive:    m.IsActive,
		FullPath:    m.FullPath,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:          account.ID,
		Code:        account.Code,
		Name:        account.Name,
		Description: account.Description,
		Level:       account.Level,
		ParentID:    account.ParentID,
		Nature:      string(account.Nature),
		IsActive:    account.IsActive,
		FullPath:    account.FullPath,
		SortOrder:   account.SortOrder,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}
