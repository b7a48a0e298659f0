// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget projection repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByYear retrieves every projection row for the given year.
func (r *budgetRepository) FindByYear(ctx context.Context, year int) ([]*entity.BudgetProjection, error) {
	var projectionModels []model.BudgetProjectionModel
	result := r.db.WithContext(ctx).
		Where("year = ?", year).
		Find(&projectionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projections := make([]*entity.BudgetProjection, len(projectionModels))
	for i, pm := range projectionModels {
		projections[i] = pm.ToEntity()
	}
	return projections, nil
}

// ReplaceYear atomically deletes all projection rows for the year and
// inserts the provided set. A failure rolls back to the previous rows.
func (r *budgetRepository) ReplaceYear(ctx context.Context, year int, projections []*entity.BudgetProjection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year).
			Delete(&model.BudgetProjectionModel{}).Error; err != nil {
			return err
		}

		if len(projections) == 0 {
			return nil
		}

		projectionModels := make([]*model.BudgetProjectionModel, len(projections))
		for i, projection := range projections {
			projectionModels[i] = model.BudgetProjectionFromEntity(projection)
		}
		return tx.Create(&projectionModels).Error
	})
}
