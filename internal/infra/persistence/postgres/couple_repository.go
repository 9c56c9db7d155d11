// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// coupleRepository implements the repository.CoupleRepository interface using GORM.
//
// Realm visibility is expressed as row predicates: the owner realm shows a
// couple only to its creating account, the shared realm shows it to either
// member but only once a partner exists. The same rows back both realms.
type coupleRepository struct {
	db *gorm.DB
}

// NewCoupleRepository is the constructor for coupleRepository.
func NewCoupleRepository(db *gorm.DB) repository.CoupleRepository {
	return &coupleRepository{
		db: db,
	}
}

// realmScope returns a scope restricting couple rows to what the viewer can
// see through the given realm.
func coupleRealmScope(realm repository.Realm, viewerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch realm {
		case repository.RealmShared:
			// Shared visibility starts at pairing: an unpaired couple has no
			// shared-realm row even for its owner.
			return db.Where(
				"partner_user_id IS NOT NULL AND (owner_user_id = ? OR partner_user_id = ?)",
				viewerID, viewerID,
			)
		case repository.RealmOwner:
			return db.Where("owner_user_id = ?", viewerID)
		default:
			// Unknown realm matches nothing.
			return db.Where("1 = 0")
		}
	}
}

// CreateCouple persists a new couple owned by its creator. The unique index on
// owner_user_id turns a concurrent double-create into ErrDuplicateCouple.
func (repo *coupleRepository) CreateCouple(ctx context.Context, couple *entity.Couple) error {
	coupleM := fromCoupleDomain(couple)
	coupleM.Version = 1

	if err := repo.db.WithContext(ctx).Create(coupleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouple
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create couple")
	}

	// Update the entity with generated values
	couple.ID = coupleM.ID
	couple.Version = coupleM.Version
	couple.CreatedAt = coupleM.CreatedAt
	couple.UpdatedAt = coupleM.UpdatedAt

	return nil
}

// FindCoupleByID retrieves a couple by ID as seen from the given realm.
func (repo *coupleRepository) FindCoupleByID(ctx context.Context, id uuid.UUID, realm repository.Realm, viewerID uuid.UUID) (*entity.Couple, error) {
	var coupleM model.CoupleModel

	if err := repo.db.WithContext(ctx).
		Scopes(coupleRealmScope(realm, viewerID)).
		Where("id = ?", id).
		First(&coupleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoupleNotFound
		}

		return nil, errors.Wrap(err, "failed to find couple by id")
	}

	return toCoupleDomain(&coupleM), nil
}

// FindCoupleForUser retrieves the couple the user belongs to, as owner or partner.
func (repo *coupleRepository) FindCoupleForUser(ctx context.Context, userID uuid.UUID) (*entity.Couple, error) {
	var coupleM model.CoupleModel

	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ? OR partner_user_id = ?", userID, userID).
		First(&coupleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoupleNotFound
		}

		return nil, errors.Wrap(err, "failed to find couple for user")
	}

	return toCoupleDomain(&coupleM), nil
}

// FindCoupleByInviteToken retrieves the couple holding an open invite token.
func (repo *coupleRepository) FindCoupleByInviteToken(ctx context.Context, token uuid.UUID) (*entity.Couple, error) {
	var coupleM model.CoupleModel

	if err := repo.db.WithContext(ctx).
		Where("invite_token = ?", token).
		First(&coupleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoupleNotFound
		}

		return nil, errors.Wrap(err, "failed to find couple by invite token")
	}

	return toCoupleDomain(&coupleM), nil
}

// SetInviteToken writes a new invite token conditioned on the couple's version.
// A concurrent writer bumps the version first and the late writer gets
// ErrCoupleConflict, so two devices of the same owner converge on one token.
func (repo *coupleRepository) SetInviteToken(ctx context.Context, id uuid.UUID, token uuid.UUID, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CoupleModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"invite_token": token,
			"version":      gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			// Token collision across couples; callers retry with a fresh token.
			return repository.ErrCoupleConflict
		}

		return errors.Wrap(result.Error, "failed to set invite token")
	}

	if result.RowsAffected == 0 {
		// The row exists with a newer version, or not at all. Distinguish so
		// callers can re-fetch on conflict instead of failing outright.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CoupleModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check couple existence")
		}
		if count == 0 {
			return repository.ErrCoupleNotFound
		}

		return repository.ErrCoupleConflict
	}

	return nil
}

// ClaimInvite atomically assigns the partner and clears the invite token. The
// WHERE clause is the membership cap: it only matches while the token is open
// and the partner column is empty, so exactly one claimer can win.
func (repo *coupleRepository) ClaimInvite(ctx context.Context, token uuid.UUID, partnerUserID uuid.UUID) (*entity.Couple, error) {
	var updated []model.CoupleModel

	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("invite_token = ? AND partner_user_id IS NULL", token).
		Updates(map[string]any{
			"partner_user_id": partnerUserID,
			"invite_token":    nil,
			"version":         gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("invalid partner reference")
		}

		return nil, errors.Wrap(result.Error, "failed to claim invite")
	}

	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrInviteConsumed
	}

	return toCoupleDomain(&updated[0]), nil
}

// SetPartner links the partner directly, conditioned on the slot being empty
// or already holding the same partner. Used as the explicit fallback when a
// claim read-back does not show the partner yet.
func (repo *coupleRepository) SetPartner(ctx context.Context, id uuid.UUID, partnerUserID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CoupleModel{}).
		Where("id = ? AND (partner_user_id IS NULL OR partner_user_id = ?)", id, partnerUserID).
		Updates(map[string]any{
			"partner_user_id": partnerUserID,
			"invite_token":    nil,
			"version":         gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set partner")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.CoupleModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check couple existence")
		}
		if count == 0 {
			return repository.ErrCoupleNotFound
		}

		return repository.ErrPartnerAlreadySet
	}

	return nil
}

// ClearInviteToken revokes an open invite without touching membership.
func (repo *coupleRepository) ClearInviteToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CoupleModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"invite_token": nil,
			"version":      gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear invite token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoupleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCoupleDomain converts a GORM CoupleModel to a domain Couple entity.
func toCoupleDomain(data *model.CoupleModel) *entity.Couple {
	if data == nil {
		return nil
	}

	return &entity.Couple{
		ID:            data.ID,
		OwnerUserID:   data.OwnerUserID,
		PartnerUserID: data.PartnerUserID,
		InviteToken:   data.InviteToken,
		Version:       data.Version,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCoupleDomain converts a domain Couple entity to a GORM CoupleModel.
func fromCoupleDomain(data *entity.Couple) *model.CoupleModel {
	if data == nil {
		return nil
	}

	return &model.CoupleModel{
		ID:            data.ID,
		OwnerUserID:   data.OwnerUserID,
		PartnerUserID: data.PartnerUserID,
		InviteToken:   data.InviteToken,
		Version:       data.Version,
	}
}
