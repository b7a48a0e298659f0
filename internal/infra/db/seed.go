// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// seedAccount is one row of the standard municipal chart of accounts.
type seedAccount struct {
	code      string
	name      string
	level     int
	parent    string
	nature    entity.AccountNature
	sortOrder int
}

// standardChart is the baseline chart seeded on first start. Parks
// administrations extend it through the API; these rows are the minimum the
// automatic entry generation needs (a cash account and at least one
// operational category per side).
var standardChart = []seedAccount{
	{code: "1", name: "Activo", level: 1, nature: entity.AccountNatureDebit, sortOrder: 10},
	{code: "1.1", name: "Efectivo y Bancos", level: 2, parent: "1", nature: entity.AccountNatureDebit, sortOrder: 11},
	{code: "1.1.1", name: "Caja", level: 3, parent: "1.1", nature: entity.AccountNatureDebit, sortOrder: 12},
	{code: "1.1.2", name: "Bancos", level: 3, parent: "1.1", nature: entity.AccountNatureDebit, sortOrder: 13},
	{code: "2", name: "Pasivo", level: 1, nature: entity.AccountNatureCredit, sortOrder: 20},
	{code: "3", name: "Patrimonio", level: 1, nature: entity.AccountNatureCredit, sortOrder: 30},
	{code: "4", name: "Ingresos", level: 1, nature: entity.AccountNatureCredit, sortOrder: 40},
	{code: "4.1", name: "Ingresos Operativos", level: 2, parent: "4", nature: entity.AccountNatureCredit, sortOrder: 41},
	{code: "4.1.1", name: "Concesiones", level: 3, parent: "4.1", nature: entity.AccountNatureCredit, sortOrder: 42},
	{code: "4.1.2", name: "Eventos y Permisos", level: 3, parent: "4.1", nature: entity.AccountNatureCredit, sortOrder: 43},
	{code: "5", name: "Gastos", level: 1, nature: entity.AccountNatureDebit, sortOrder: 50},
	{code: "5.1", name: "Gastos Operativos", level: 2, parent: "5", nature: entity.AccountNatureDebit, sortOrder: 51},
	{code: "5.1.1", name: "Mantenimiento", level: 3, parent: "5.1", nature: entity.AccountNatureDebit, sortOrder: 52},
	{code: "5.1.2", name: "Nómina", level: 3, parent: "5.1", nature: entity.AccountNatureDebit, sortOrder: 53},
}

// SeedChartOfAccounts inserts the standard chart of accounts. Rows whose
// code already exists are left untouched, so the seed can run on every
// startup.
func SeedChartOfAccounts(db *gorm.DB) error {
	seeded := 0

	for _, seed := range standardChart {
		var count int64
		if err := db.Model(&model.AccountModel{}).
			Where("code = ?", seed.code).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check account %s: %w", seed.code, err)
		}
		if count > 0 {
			continue
		}

		account := entity.NewAccount(seed.code, seed.name, seed.level, nil, seed.nature)
		account.SortOrder = seed.sortOrder

		if seed.parent != "" {
			var parent model.AccountModel
			if err := db.Where("code = ?", seed.parent).First(&parent).Error; err != nil {
				return fmt.Errorf("failed to resolve parent %s for %s: %w", seed.parent, seed.code, err)
			}
			parentID := parent.ID
			account.ParentID = &parentID
			account.FullPath = parent.FullPath + "." + seed.code
		}

		if err := db.Create(model.AccountFromEntity(account)).Error; err != nil {
			return fmt.Errorf("failed to seed account %s: %w", seed.code, err)
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("Seeded chart of accounts", "accounts", seeded)
	}
	return nil
}
