package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification record is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for push-delivery bookkeeping.
type NotificationRepository interface {
	// CreateNotification records one push delivery attempt.
	CreateNotification(ctx context.Context, notification *entity.CheckinNotification) error

	// FindNotificationsByCouple retrieves delivery records for a couple, newest first.
	FindNotificationsByCouple(ctx context.Context, coupleID uuid.UUID, limit int) ([]*entity.CheckinNotification, error)
}
