package service

import (
	"context"
)

// CheckinEvent represents an event handed to the push worker: either a member
// saved a daily entry or an invite was claimed. RecipientID names the couple
// member whose devices should get the push.
type CheckinEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_id"`
	Kind        string `json:"kind"` // entity.NotificationKindPartnerCheckin or ...PairingCompleted
	CoupleID    string `json:"couple_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Day         string `json:"day,omitempty"`    // Entry day (yyyy-mm-dd) for partner_checkin events.
	Prompt      string `json:"prompt,omitempty"` // morning or evening for partner_checkin events.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCheckinEvent publishes a check-in event for async push processing
	PublishCheckinEvent(ctx context.Context, event *CheckinEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
