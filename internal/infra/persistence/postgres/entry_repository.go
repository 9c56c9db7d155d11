// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entryRepository implements the repository.EntryRepository interface using GORM.
//
// Entries live in one table for both realms. The owner realm shows a viewer
// their own entries; the shared realm shows every entry of a paired couple to
// both members. Before pairing the shared realm holds nothing.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// entryRealmScope returns a scope restricting entry rows to what the viewer
// can see through the given realm.
func entryRealmScope(realm repository.Realm, viewerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch realm {
		case repository.RealmShared:
			return db.Where(
				"couple_id IN (SELECT id FROM couples WHERE partner_user_id IS NOT NULL AND (owner_user_id = ? OR partner_user_id = ?))",
				viewerID, viewerID,
			)
		case repository.RealmOwner:
			return db.Where("author_user_id = ?", viewerID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// UpsertEntry creates or merges the entry under its deterministic ID in one
// conditional statement. COALESCE keeps the stored value wherever the incoming
// field is absent, so two near-simultaneous saves from the same author each
// land their own prompt's fields without erasing the other's.
func (repo *entryRepository) UpsertEntry(ctx context.Context, entry *entity.DailyEntry, realm repository.Realm) error {
	if realm == repository.RealmShared {
		// The shared realm only exists for paired couples.
		var paired int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CoupleModel{}).
			Where("id = ? AND partner_user_id IS NOT NULL", entry.CoupleID).
			Count(&paired).Error; err != nil {
			return errors.Wrap(err, "failed to check couple pairing state")
		}
		if paired == 0 {
			return repository.ErrRealmUnavailable
		}
	}

	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"morning_need":   gorm.Expr("COALESCE(EXCLUDED.morning_need, daily_entries.morning_need)"),
				"evening_mood":   gorm.Expr("COALESCE(EXCLUDED.evening_mood, daily_entries.evening_mood)"),
				"gratitude":      gorm.Expr("COALESCE(EXCLUDED.gratitude, daily_entries.gratitude)"),
				"tomorrow_great": gorm.Expr("COALESCE(EXCLUDED.tomorrow_great, daily_entries.tomorrow_great)"),
				"updated_at":     gorm.Expr("now()"),
			}),
		}).
		Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntrySaveFailed.WrapMessage("invalid couple or author reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntrySaveFailed.WrapMessage("missing required entry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert daily entry")
	}

	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves an entry by its deterministic ID as seen from the
// given realm by the given viewer.
func (repo *entryRepository) FindEntryByID(ctx context.Context, id string, realm repository.Realm, viewerID uuid.UUID) (*entity.DailyEntry, error) {
	var entryM model.DailyEntryModel

	if err := repo.db.WithContext(ctx).
		Scopes(entryRealmScope(realm, viewerID)).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by id")
	}

	return toEntryDomain(&entryM), nil
}

// FindEntriesForDay retrieves all entries for the given day visible to the
// viewer through the given realm.
func (repo *entryRepository) FindEntriesForDay(ctx context.Context, day time.Time, realm repository.Realm, viewerID uuid.UUID) ([]*entity.DailyEntry, error) {
	var entryModels []*model.DailyEntryModel

	if err := repo.db.WithContext(ctx).
		Scopes(entryRealmScope(realm, viewerID)).
		Where("entry_date = ?", entity.NormalizeDay(day)).
		Order("id ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries for day")
	}

	entries := make([]*entity.DailyEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM DailyEntryModel to a domain DailyEntry entity.
func toEntryDomain(data *model.DailyEntryModel) *entity.DailyEntry {
	if data == nil {
		return nil
	}

	var mood *entity.Mood
	if data.EveningMood != nil {
		m := entity.Mood(*data.EveningMood)
		mood = &m
	}

	return &entity.DailyEntry{
		ID:            data.ID,
		CoupleID:      data.CoupleID,
		AuthorUserID:  data.AuthorUserID,
		Date:          entity.NormalizeDay(data.EntryDate),
		MorningNeed:   data.MorningNeed,
		EveningMood:   mood,
		Gratitude:     data.Gratitude,
		TomorrowGreat: data.TomorrowGreat,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromEntryDomain converts a domain DailyEntry entity to a GORM DailyEntryModel.
func fromEntryDomain(data *entity.DailyEntry) *model.DailyEntryModel {
	if data == nil {
		return nil
	}

	var mood *int
	if data.EveningMood != nil {
		m := int(*data.EveningMood)
		mood = &m
	}

	return &model.DailyEntryModel{
		ID:            data.ID,
		CoupleID:      data.CoupleID,
		AuthorUserID:  data.AuthorUserID,
		EntryDate:     entity.NormalizeDay(data.Date),
		MorningNeed:   data.MorningNeed,
		EveningMood:   mood,
		Gratitude:     data.Gratitude,
		TomorrowGreat: data.TomorrowGreat,
	}
}
