// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, ordered by date
// ascending.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date ASC, created_at ASC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindUnprocessed retrieves up to limit transactions without a linked
// journal entry, oldest first by date.
func (r *transactionRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("journal_entry_id IS NULL").
		Order("date ASC, created_at ASC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// ExistsByAccount checks whether any transaction references the account.
func (r *transactionRepository) ExistsByAccount(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// SumByCodePrefix sums transaction amounts for categories whose account
// code starts with the dotted prefix, up to and including the cutoff date.
func (r *transactionRepository) SumByCodePrefix(ctx context.Context, prefix string, cutoff time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("SUM(transactions.amount)").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.code = ? OR accounts.code LIKE ?", prefix, prefix+".%").
		Where("transactions.date <= ?", cutoff).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// MonthlyTotalsByCategory aggregates one calendar year of transactions into
// per-category, per-type, per-month totals. The month split happens in Go so
// the same query runs on every supported database.
func (r *transactionRepository) MonthlyTotalsByCategory(ctx context.Context, year int) ([]adapter.CategoryMonthTotal, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	type txnRow struct {
		AccountID   uuid.UUID
		AccountName string
		Type        string
		Date        time.Time
		Amount      decimal.Decimal
	}

	var rows []txnRow
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.account_id AS account_id, accounts.name AS account_name, transactions.type AS type, transactions.date AS date, transactions.amount AS amount").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("transactions.date >= ? AND transactions.date < ?", from, to).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	type cellKey struct {
		categoryID uuid.UUID
		txnType    string
		month      int
	}
	cells := make(map[cellKey]*adapter.CategoryMonthTotal)
	order := make([]cellKey, 0, len(rows))

	for _, row := range rows {
		key := cellKey{
			categoryID: row.AccountID,
			txnType:    row.Type,
			month:      int(row.Date.Month()),
		}
		cell, ok := cells[key]
		if !ok {
			cell = &adapter.CategoryMonthTotal{
				CategoryID:   row.AccountID,
				CategoryName: row.AccountName,
				Type:         entity.TransactionType(row.Type),
				Month:        key.month,
				Amount:       decimal.Zero,
			}
			cells[key] = cell
			order = append(order, key)
		}
		cell.Amount = cell.Amount.Add(row.Amount)
	}

	totals := make([]adapter.CategoryMonthTotal, 0, len(order))
	for _, key := range order {
		totals = append(totals, *cells[key])
	}
	return totals, nil
}
