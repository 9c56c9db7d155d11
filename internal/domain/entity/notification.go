// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds delivered through the push worker.
const (
	// NotificationKindPartnerCheckin is sent when a member saves a daily entry.
	NotificationKindPartnerCheckin = "partner_checkin"
	// NotificationKindPairingCompleted is sent when an invite is claimed.
	NotificationKindPairingCompleted = "pairing_completed"
)

// CheckinNotification represents one push delivery attempt to a couple member,
// recorded by the worker for delivery bookkeeping.
type CheckinNotification struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	CoupleID    uuid.UUID `json:"couple_id"`    // The couple scope the notification belongs to.
	Kind        string    `json:"kind"`         // partner_checkin or pairing_completed.
	SenderID    uuid.UUID `json:"sender_id"`    // The member whose action triggered the notification.
	RecipientID uuid.UUID `json:"recipient_id"` // The member the push was addressed to.
	TotalSent   int       `json:"total_sent"`   // Number of device tokens successfully delivered.
	TotalFailed int       `json:"total_failed"` // Number of device tokens that failed.
	SentAt      time.Time `json:"sent_at"`      // Timestamp of the delivery attempt.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
}
