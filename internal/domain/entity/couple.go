// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Couple represents the pairing relationship between exactly two accounts.
//
// OwnerUserID is set at creation and never changes. PartnerUserID is set
// exactly once, when the owner's invite is claimed, and the invite token is
// cleared in the same conditional update. A token and a partner are therefore
// never present at the same time: the token exists only while the couple is
// waiting for its second member.
type Couple struct {
	ID            uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the couple.
	OwnerUserID   uuid.UUID  `json:"owner_user_id"`   // The account that created the couple.
	PartnerUserID *uuid.UUID `json:"partner_user_id"` // The second account; nil until an invite is claimed.
	InviteToken   *uuid.UUID `json:"-"`               // Single-use credential; nil once claimed or revoked.
	Version       int64      `json:"-"`               // Optimistic-concurrency version for conditional updates.
	CreatedAt     time.Time  `json:"created_at"`      // Timestamp of when the couple was created.
	UpdatedAt     time.Time  `json:"updated_at"`      // Timestamp of the last modification.
}

// IsPaired reports whether both members are set.
func (c *Couple) IsPaired() bool {
	return c.PartnerUserID != nil
}

// IsOwner reports whether the given user created this couple.
func (c *Couple) IsOwner(userID uuid.UUID) bool {
	return c.OwnerUserID == userID
}

// IsMember reports whether the given user is the owner or the partner.
func (c *Couple) IsMember(userID uuid.UUID) bool {
	if c.OwnerUserID == userID {
		return true
	}

	return c.PartnerUserID != nil && *c.PartnerUserID == userID
}

// PartnerOf returns the other member's ID from the given member's point of
// view, or nil if the couple is not yet paired.
func (c *Couple) PartnerOf(userID uuid.UUID) *uuid.UUID {
	if c.OwnerUserID == userID {
		return c.PartnerUserID
	}
	if c.PartnerUserID != nil && *c.PartnerUserID == userID {
		owner := c.OwnerUserID

		return &owner
	}

	return nil
}
