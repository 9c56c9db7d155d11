package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckinNotificationModel is the GORM-specific struct for the 'checkin_notifications' table.
// It records one push delivery attempt to a couple member.
type CheckinNotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CoupleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(50);not null"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalSent   int       `gorm:"not null;default:0"`
	TotalFailed int       `gorm:"not null;default:0"`
	SentAt      time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckinNotificationModel) TableName() string {
	return "checkin_notifications"
}
