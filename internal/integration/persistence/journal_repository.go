// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aspal-sistemas/parksys-finance/internal/application/adapter"
	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
	"github.com/aspal-sistemas/parksys-finance/internal/integration/persistence/model"
)

// entryNumberPrefix is the prefix of generated journal entry numbers.
// Entries are numbered "PZ-<year>-<seq>" with the sequence restarting
// every year.
const entryNumberPrefix = "PZ"

// journalRepository implements the adapter.JournalEntryRepository interface.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal entry repository instance.
func NewJournalRepository(db *gorm.DB) adapter.JournalEntryRepository {
	return &journalRepository{
		db: db,
	}
}

// CreateWithLines persists the entry header and all of its lines as a single
// atomic unit. The entry number is assigned inside the same database
// transaction, and the source transaction (when present) gets the entry ID
// written back so it is never picked up again as unprocessed.
func (r *journalRepository) CreateWithLines(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		yearPrefix := fmt.Sprintf("%s-%d-", entryNumberPrefix, entry.Date.Year())

		var count int64
		if err := tx.Model(&model.JournalEntryModel{}).
			Where("entry_number LIKE ?", yearPrefix+"%").
			Count(&count).Error; err != nil {
			return err
		}
		entry.EntryNumber = fmt.Sprintf("%s%04d", yearPrefix, count+1)

		entryModel := model.JournalEntryFromEntity(entry)
		lines := entryModel.Lines
		entryModel.Lines = nil

		if err := tx.Create(entryModel).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		if entry.SourceTransactionID != nil {
			result := tx.Model(&model.TransactionModel{}).
				Where("id = ?", *entry.SourceTransactionID).
				Update("journal_entry_id", entry.ID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrTransactionNotFound
			}
		}
		return nil
	})
}

// FindByID retrieves a journal entry with its lines.
func (r *journalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	var entryModel model.JournalEntryModel
	result := r.db.WithContext(ctx).
		Preload("Lines").
		Where("id = ?", id).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByPeriod retrieves entries whose date falls within [from, to), with
// lines, ordered by date then entry number.
func (r *journalRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*entity.JournalEntry, error) {
	var entryModels []model.JournalEntryModel
	result := r.db.WithContext(ctx).
		Preload("Lines").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, entry_number ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.JournalEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// ActivityInRange sums line debits and credits per account for entries
// whose date falls within [from, to). A zero from means no lower bound.
func (r *journalRepository) ActivityInRange(ctx context.Context, from, to time.Time) (map[uuid.UUID]adapter.AccountActivity, error) {
	query := r.db.WithContext(ctx).
		Model(&model.JournalEntryLineModel{}).
		Select("journal_entry_lines.account_id AS account_id, journal_entry_lines.debit AS debit, journal_entry_lines.credit AS credit").
		Joins("JOIN journal_entries ON journal_entries.id = journal_entry_lines.entry_id").
		Where("journal_entries.date < ?", to)
	if !from.IsZero() {
		query = query.Where("journal_entries.date >= ?", from)
	}

	var lines []model.JournalEntryLineModel
	if err := query.Scan(&lines).Error; err != nil {
		return nil, err
	}

	activity := make(map[uuid.UUID]adapter.AccountActivity)
	for _, line := range lines {
		acc := activity[line.AccountID]
		acc.Debits = acc.Debits.Add(line.Debit)
		acc.Credits = acc.Credits.Add(line.Credit)
		activity[line.AccountID] = acc
	}
	return activity, nil
}

// UpdateStatus persists a status transition.
func (r *journalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.JournalEntryStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.JournalEntryModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}
