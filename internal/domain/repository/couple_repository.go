// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for couple persistence.
var (
	// ErrCoupleNotFound is returned when a couple is not found in the queried realm.
	ErrCoupleNotFound = errors.New("couple not found")
	// ErrDuplicateCouple is returned when an account that already owns a couple tries to create another.
	ErrDuplicateCouple = errors.New("couple already exists for this owner")
	// ErrCoupleConflict is returned when a conditional update loses an optimistic-concurrency race.
	ErrCoupleConflict = errors.New("couple was modified concurrently")
	// ErrInviteConsumed is returned when a claim matches no open invite.
	ErrInviteConsumed = errors.New("invite token already consumed or unknown")
	// ErrPartnerAlreadySet is returned when a partner link would overwrite an existing partner.
	ErrPartnerAlreadySet = errors.New("couple already has a partner")
)

// CoupleRepository defines the interface for couple-related database operations.
type CoupleRepository interface {
	// CreateCouple persists a new couple owned by its creator. The unique
	// constraint on the owner column turns a concurrent double-create into
	// ErrDuplicateCouple, so callers can re-fetch the existing record.
	CreateCouple(ctx context.Context, couple *entity.Couple) error

	// FindCoupleByID retrieves a couple by ID as seen from the given realm by
	// the given viewer. A record that exists but is not visible through that
	// realm yields ErrCoupleNotFound.
	FindCoupleByID(ctx context.Context, id uuid.UUID, realm Realm, viewerID uuid.UUID) (*entity.Couple, error)

	// FindCoupleForUser retrieves the couple the user belongs to, as owner or
	// partner, across both realms.
	FindCoupleForUser(ctx context.Context, userID uuid.UUID) (*entity.Couple, error)

	// FindCoupleByInviteToken retrieves the couple holding an open invite token.
	FindCoupleByInviteToken(ctx context.Context, token uuid.UUID) (*entity.Couple, error)

	// SetInviteToken writes a new invite token conditioned on the couple's
	// version. A concurrent writer bumps the version first and the late writer
	// gets ErrCoupleConflict; the caller then re-fetches and reuses the token
	// that won.
	SetInviteToken(ctx context.Context, id uuid.UUID, token uuid.UUID, expectedVersion int64) error

	// ClaimInvite atomically assigns the partner and clears the invite token,
	// conditioned on the token being open and the partner being unset. This
	// conditional write is the membership cap: a second claimer gets
	// ErrInviteConsumed and the partner column is untouched.
	ClaimInvite(ctx context.Context, token uuid.UUID, partnerUserID uuid.UUID) (*entity.Couple, error)

	// SetPartner links the partner directly, used as the explicit fallback when
	// a claim read-back does not show the partner yet. It refuses to overwrite
	// a different existing partner with ErrPartnerAlreadySet.
	SetPartner(ctx context.Context, id uuid.UUID, partnerUserID uuid.UUID) error

	// ClearInviteToken revokes an open invite without touching membership.
	ClearInviteToken(ctx context.Context, id uuid.UUID) error
}
