// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
)

// BudgetProjectionModel represents the budget_projections table: one row
// per (category, year) with twelve month columns, matching the planners'
// spreadsheet shape.
type BudgetProjectionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_category_year"`
	CategoryType string          `gorm:"type:varchar(10);not null"`
	Year         int             `gorm:"not null;uniqueIndex:idx_budget_category_year;index"`
	January      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	February     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	March        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	April        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	May          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	June         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	July         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	August       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	September    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	October      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	November     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	December     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetProjectionModel.
func (BudgetProjectionModel) TableName() string {
	return "budget_projections"
}

// ToEntity converts a BudgetProjectionModel to a domain BudgetProjection.
func (m *BudgetProjectionModel) ToEntity() *entity.BudgetProjection {
	return &entity.BudgetProjection{
		ID:           m.ID,
		CategoryID:   m.CategoryID,
		CategoryType: entity.TransactionType(m.CategoryType),
		Year:         m.Year,
		Months: [entity.MonthsPerYear]decimal.Decimal{
			m.January, m.February, m.March, m.April, m.May, m.June,
			m.July, m.August, m.September, m.October, m.November, m.December,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetProjectionFromEntity creates a BudgetProjectionModel from a domain
// BudgetProjection entity.
func BudgetProjectionFromEntity(projection *entity.BudgetProjection) *BudgetProjectionModel {
	return &BudgetProjectionModel{
		ID:           projection.ID,
		CategoryID:   projection.CategoryID,
		CategoryType: string(projection.CategoryType),
		Year:         projection.Year,
		January:      projection.Months[0],
		February:     projection.Months[1],
		March:        projection.Months[2],
		April:        projection.Months[3],
		May:          projection.Months[4],
		June:         projection.Months[5],
		July:         projection.Months[6],
		August:       projection.Months[7],
		September:    projection.Months[8],
		October:      projection.Months[9],
		November:     projection.Months[10],
		December:     projection.Months[11],
		CreatedAt:    projection.CreatedAt,
		UpdatedAt:    projection.UpdatedAt,
	}
}
