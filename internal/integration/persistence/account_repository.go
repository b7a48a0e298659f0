// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByCode retrieves an account by its unique code.
func (r *accountRepository) FindByCode(ctx context.Context, code string) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// ExistsByCode checks whether an account with the given code exists.
func (r *accountRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("code = ?", code).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// FindAll retrieves accounts ordered by code, optionally active only.
func (r *accountRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Account, error) {
	query := r.db.WithContext(ctx).Model(&model.AccountModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var accountModels []model.AccountModel
	result := query.Order("code ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// FindFirstActiveByPrefix retrieves the first active account whose code
// starts with the given dotted prefix, at or below minLevel in the tree.
// The prefix matches whole code segments: prefix "1.1" matches "1.1" and
// "1.1.2" but not "1.10".
func (r *accountRepository) FindFirstActiveByPrefix(ctx context.Context, prefix string, minLevel int) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("level >= ?", minLevel).
		Where("code = ? OR code LIKE ?", prefix, prefix+".%").
		Order("sort_order ASC, code ASC").
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// HasActiveChildren checks whether any active account references the given
// account as its parent.
func (r *accountRepository) HasActiveChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("parent_id = ? AND is_active = ?", id, true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(accountModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}
