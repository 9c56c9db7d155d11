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
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification records one push delivery attempt.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.CheckinNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid couple reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification record")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByCouple retrieves delivery records for a couple, newest first.
func (repo *notificationRepository) FindNotificationsByCouple(ctx context.Context, coupleID uuid.UUID, limit int) ([]*entity.CheckinNotification, error) {
	var notificationModels []*model.CheckinNotificationModel

	query := repo.db.WithContext(ctx).
		Where("couple_id = ?", coupleID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by couple")
	}

	notifications := make([]*entity.CheckinNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM CheckinNotificationModel to a domain entity.
func toNotificationDomain(data *model.CheckinNotificationModel) *entity.CheckinNotification {
	if data == nil {
		return nil
	}

	return &entity.CheckinNotification{
		ID:          data.ID,
		CoupleID:    data.CoupleID,
		Kind:        data.Kind,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		SentAt:      data.SentAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain entity to a GORM CheckinNotificationModel.
func fromNotificationDomain(data *entity.CheckinNotification) *model.CheckinNotificationModel {
	if data == nil {
		return nil
	}

	return &model.CheckinNotificationModel{
		ID:          data.ID,
		CoupleID:    data.CoupleID,
		Kind:        data.Kind,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		SentAt:      data.SentAt,
	}
}
