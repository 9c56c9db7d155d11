package model

import (
	"time"

	"github.com/google/uuid"
)

// CoupleModel is the GORM-specific struct for the 'couples' table.
// The unique index on OwnerUserID caps each account to one owned couple, so a
// concurrent double-create from two devices of the same account collapses into
// a single row. The unique index on InviteToken makes token lookups exact.
type CoupleModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerUserID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	PartnerUserID *uuid.UUID `gorm:"type:uuid;index"`
	InviteToken   *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Version       int64      `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoupleModel) TableName() string {
	return "couples"
}
