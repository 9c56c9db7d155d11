package usecase

import (
	"context"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

// InviteLink is the transportable form of an invite credential.
type InviteLink struct {
	Token    uuid.UUID `json:"-"`
	URL      string    `json:"url"`       // https link for the system share sheet.
	DeepLink string    `json:"deep_link"` // checkin://invite wrapper carrying the same token.
	QRCode   []byte    `json:"-"`         // PNG rendering of the URL.
}

// PairingStatus is the side-effect-free view of a user's pairing state.
type PairingStatus struct {
	CoupleID  *uuid.UUID `json:"couple_id"`
	IsPaired  bool       `json:"is_paired"`
	PartnerID *uuid.UUID `json:"partner_id"`
}

// WatchState is the lifecycle state of a pairing watch.
type WatchState string

const (
	// WatchIdle means no watch is running for the user.
	WatchIdle WatchState = "idle"
	// WatchPolling means the watch is actively re-checking pairing status.
	WatchPolling WatchState = "polling"
	// WatchPaired means the watch observed pairing completion and stopped.
	WatchPaired WatchState = "paired"
	// WatchTimedOut means the watch exhausted its attempts without pairing.
	WatchTimedOut WatchState = "timed_out"
	// WatchCancelled means the watch was cancelled before completing.
	WatchCancelled WatchState = "cancelled"
)

// PairingUsecase defines the interface for couple pairing operations.
type PairingUsecase interface {
	// EnsureCouple finds the caller's couple across both realms, or creates one
	// with the caller as owner. Repeated sequential calls never produce a
	// second couple for the same account.
	EnsureCouple(ctx context.Context, userID uuid.UUID) (*entity.Couple, error)

	// CreateInviteLink issues (or re-returns) the single-use invite credential
	// for the caller's couple. Owner-only.
	CreateInviteLink(ctx context.Context, userID uuid.UUID) (*InviteLink, error)

	// AcceptInviteLink resolves an invite URL or deep link and claims
	// membership for the caller.
	AcceptInviteLink(ctx context.Context, userID uuid.UUID, rawURL string) (*PairingStatus, error)

	// CheckPairingStatus reports current pairing state without side effects.
	CheckPairingStatus(ctx context.Context, userID uuid.UUID) (*PairingStatus, error)

	// CompletePairing revokes the invite credential once both sides are paired.
	// Best-effort: the conditional claim already enforces the two-member cap.
	CompletePairing(ctx context.Context, userID uuid.UUID) error
}

// PairingWatchUsecase manages the bounded background poll that detects pairing
// completion after an invite is issued.
type PairingWatchUsecase interface {
	// StartWatch begins polling for the user, superseding any previous watch.
	StartWatch(ctx context.Context, userID uuid.UUID) error

	// CancelWatch stops the user's watch if one is running.
	CancelWatch(userID uuid.UUID)

	// WatchStatus reports the state of the user's watch.
	WatchStatus(userID uuid.UUID) WatchState
}
