// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pairingService struct {
	coupleRepo     repository.CoupleRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger

	// coupleCache remembers the couple each account resolved to, so repeated
	// EnsureCouple calls skip the lookup chain. Entries are validated against
	// the store before use; a stale hit falls through to the full lookup.
	coupleCache sync.Map // uuid.UUID (user) -> uuid.UUID (couple)
}

// PairingServiceParams holds dependencies for PairingService, injected by Fx.
type PairingServiceParams struct {
	fx.In

	CoupleRepo     repository.CoupleRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPairingService creates a new pairing service instance
func NewPairingService(params PairingServiceParams) usecase.PairingUsecase {
	return &pairingService{
		coupleRepo:     params.CoupleRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// EnsureCouple finds the caller's couple or creates one with the caller as
// owner. The lookup chain goes: cached couple id, then the membership query
// across both realms, then creation. The unique owner constraint collapses a
// concurrent double-create from two devices into a single couple.
func (s *pairingService) EnsureCouple(ctx context.Context, userID uuid.UUID) (*entity.Couple, error) {
	// Fast path: a remembered couple id that still checks out.
	if cached, ok := s.coupleCache.Load(userID); ok {
		coupleID, _ := cached.(uuid.UUID)
		if couple := s.validateCachedCouple(ctx, coupleID, userID); couple != nil {
			return couple, nil
		}
		s.coupleCache.Delete(userID)
	}

	couple, err := s.coupleRepo.FindCoupleForUser(ctx, userID)
	if err == nil {
		s.coupleCache.Store(userID, couple.ID)

		return couple, nil
	}
	if !errors.Is(err, repository.ErrCoupleNotFound) {
		return nil, errors.Wrap(err, "failed to look up couple for user")
	}

	// No membership anywhere: create a fresh couple owned by the caller.
	couple = &entity.Couple{
		ID:          uuid.New(),
		OwnerUserID: userID,
	}
	if err := s.coupleRepo.CreateCouple(ctx, couple); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouple) {
			// Another device won the create race; adopt its couple.
			existing, findErr := s.coupleRepo.FindCoupleForUser(ctx, userID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to fetch couple after duplicate create")
			}
			s.coupleCache.Store(userID, existing.ID)

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create couple")
	}

	s.logger.InfoContext(ctx, "couple created",
		slog.String("couple_id", couple.ID.String()),
		slog.String("owner_id", userID.String()),
	)
	s.coupleCache.Store(userID, couple.ID)

	return couple, nil
}

// validateCachedCouple fetches a remembered couple and confirms the viewer is
// still a member. Reads probe the shared realm first: once paired, the couple
// record lives there from both members' point of view.
func (s *pairingService) validateCachedCouple(ctx context.Context, coupleID, userID uuid.UUID) *entity.Couple {
	for _, realm := range repository.Realms {
		couple, err := s.coupleRepo.FindCoupleByID(ctx, coupleID, realm, userID)
		if err != nil {
			continue
		}
		if couple.IsMember(userID) {
			return couple
		}
	}

	return nil
}

// CreateInviteLink issues the single-use invite credential for the caller's
// couple. Only the owner can invite; a conflicting concurrent issue from
// another device of the same owner resolves by adopting whichever token won.
func (s *pairingService) CreateInviteLink(ctx context.Context, userID uuid.UUID) (*usecase.InviteLink, error) {
	couple, err := s.EnsureCouple(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !couple.IsOwner(userID) {
		return nil, domainerrors.ErrNotCoupleOwner
	}
	if couple.IsPaired() {
		return nil, domainerrors.ErrAlreadyPaired
	}

	// Re-returning the open token keeps the operation idempotent: a share
	// sheet reopened twice hands out the same credential.
	if couple.InviteToken != nil {
		return s.buildInviteLink(*couple.InviteToken)
	}

	token := uuid.New()
	err = s.coupleRepo.SetInviteToken(ctx, couple.ID, token, couple.Version)
	if errors.Is(err, repository.ErrCoupleConflict) {
		// Another device issued a token between our read and write. Reuse
		// whatever is stored now instead of overwriting it.
		refreshed, findErr := s.coupleRepo.FindCoupleForUser(ctx, userID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to re-fetch couple after invite conflict")
		}
		if refreshed.IsPaired() {
			return nil, domainerrors.ErrAlreadyPaired
		}
		if refreshed.InviteToken != nil {
			return s.buildInviteLink(*refreshed.InviteToken)
		}

		return nil, domainerrors.ErrConflict.WrapMessage("invite token changed concurrently")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to set invite token")
	}

	s.logger.InfoContext(ctx, "invite link created",
		slog.String("couple_id", couple.ID.String()),
	)

	return s.buildInviteLink(token)
}

// buildInviteLink renders the three transportable forms of one credential:
// https URL, deep link, and QR code.
func (s *pairingService) buildInviteLink(token uuid.UUID) (*usecase.InviteLink, error) {
	baseURL := "https://checkin.app/invite"
	scheme := "checkin"
	if s.config.Invite != nil {
		if s.config.Invite.BaseURL != "" {
			baseURL = strings.TrimRight(s.config.Invite.BaseURL, "/")
		}
		if s.config.Invite.Scheme != "" {
			scheme = s.config.Invite.Scheme
		}
	}

	qrCode, err := s.qrcodeService.GenerateInviteQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return &usecase.InviteLink{
		Token:    token,
		URL:      fmt.Sprintf("%s/%s", baseURL, token),
		DeepLink: fmt.Sprintf("%s://invite?token=%s", scheme, token),
		QRCode:   qrCode,
	}, nil
}

// AcceptInviteLink resolves an invite URL or deep link and claims membership
// for the caller. The conditional claim in the store is the two-member cap;
// this method turns its outcomes into user-meaningful errors.
func (s *pairingService) AcceptInviteLink(ctx context.Context, userID uuid.UUID, rawURL string) (*usecase.PairingStatus, error) {
	token, err := s.parseInviteToken(rawURL)
	if err != nil {
		return nil, domainerrors.ErrInviteNotFound.WrapMessage(err.Error())
	}

	couple, err := s.coupleRepo.FindCoupleByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrCoupleNotFound) {
			return s.classifyDeadInvite(ctx, userID)
		}

		return nil, errors.Wrap(err, "failed to resolve invite token")
	}

	if couple.IsOwner(userID) {
		return nil, domainerrors.ErrCannotAcceptOwnInvite
	}

	// An account that already belongs to a couple cannot join a second one.
	if existing, findErr := s.coupleRepo.FindCoupleForUser(ctx, userID); findErr == nil {
		if existing.ID == couple.ID && existing.IsMember(userID) {
			return s.statusFor(existing, userID), nil
		}

		return nil, domainerrors.ErrAlreadyPaired
	} else if !errors.Is(findErr, repository.ErrCoupleNotFound) {
		return nil, errors.Wrap(findErr, "failed to check existing membership")
	}

	claimed, err := s.coupleRepo.ClaimInvite(ctx, token, userID)
	if errors.Is(err, repository.ErrInviteConsumed) {
		return s.classifyDeadInvite(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim invite")
	}

	// Read back through the shared realm and repair the link explicitly if
	// the partner is not visible yet.
	if err := s.verifyClaim(ctx, claimed, userID); err != nil {
		return nil, err
	}

	s.coupleCache.Store(userID, claimed.ID)
	s.coupleCache.Store(claimed.OwnerUserID, claimed.ID)

	s.logger.InfoContext(ctx, "invite claimed",
		slog.String("couple_id", claimed.ID.String()),
		slog.String("partner_id", userID.String()),
	)

	s.publishPairingCompleted(ctx, claimed, userID)

	return s.statusFor(claimed, userID), nil
}

// classifyDeadInvite decides what a failed token lookup means for this caller:
// if the caller is meanwhile a member of a paired couple the claim is already
// done (an idempotent re-accept), otherwise the invite was consumed by someone
// else or never existed.
func (s *pairingService) classifyDeadInvite(ctx context.Context, userID uuid.UUID) (*usecase.PairingStatus, error) {
	couple, err := s.coupleRepo.FindCoupleForUser(ctx, userID)
	if err == nil && couple.IsPaired() && couple.IsMember(userID) {
		return s.statusFor(couple, userID), nil
	}

	return nil, domainerrors.ErrInviteAlreadyClaimed
}

// verifyClaim confirms the partner link is visible through the shared realm
// and falls back to an explicit link when it is not.
func (s *pairingService) verifyClaim(ctx context.Context, couple *entity.Couple, partnerID uuid.UUID) error {
	visible, err := s.coupleRepo.FindCoupleByID(ctx, couple.ID, repository.RealmShared, partnerID)
	if err == nil && visible.PartnerUserID != nil && *visible.PartnerUserID == partnerID {
		return nil
	}

	if err := s.coupleRepo.SetPartner(ctx, couple.ID, partnerID); err != nil {
		if errors.Is(err, repository.ErrPartnerAlreadySet) {
			return domainerrors.ErrInviteAlreadyClaimed
		}

		return errors.Wrap(err, "failed to confirm partner link")
	}

	return nil
}

// parseInviteToken extracts the invite token from either transportable form:
// the https share link with the token as last path segment or ?token= query,
// and the app deep link "scheme://invite?token=...".
func (s *pairingService) parseInviteToken(rawURL string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "malformed invite link")
	}

	if raw := parsed.Query().Get("token"); raw != "" {
		token, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return uuid.Nil, errors.Wrap(parseErr, "invalid invite token")
		}

		return token, nil
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) > 0 {
		if token, parseErr := uuid.Parse(segments[len(segments)-1]); parseErr == nil {
			return token, nil
		}
	}

	return uuid.Nil, errors.New("invite link carries no token")
}

// CheckPairingStatus reports current pairing state without side effects. An
// account with no couple gets an empty status, never an error.
func (s *pairingService) CheckPairingStatus(ctx context.Context, userID uuid.UUID) (*usecase.PairingStatus, error) {
	couple, err := s.coupleRepo.FindCoupleForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCoupleNotFound) {
			return &usecase.PairingStatus{}, nil
		}

		return nil, errors.Wrap(err, "failed to check pairing status")
	}

	return s.statusFor(couple, userID), nil
}

// CompletePairing revokes a leftover invite credential once both sides are
// paired. The conditional claim already cleared it in the normal path, so
// this is a best-effort sweep and conflicts are not an error.
func (s *pairingService) CompletePairing(ctx context.Context, userID uuid.UUID) error {
	couple, err := s.coupleRepo.FindCoupleForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCoupleNotFound) {
			return domainerrors.ErrNoCoupleScope
		}

		return errors.Wrap(err, "failed to find couple")
	}

	if !couple.IsPaired() || couple.InviteToken == nil {
		return nil
	}

	if err := s.coupleRepo.ClearInviteToken(ctx, couple.ID); err != nil &&
		!errors.Is(err, repository.ErrCoupleNotFound) {
		s.logger.WarnContext(ctx, "invite revoke failed, leaving for next sweep",
			slog.String("couple_id", couple.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// statusFor builds the caller-relative status view of a couple.
func (s *pairingService) statusFor(couple *entity.Couple, userID uuid.UUID) *usecase.PairingStatus {
	coupleID := couple.ID

	return &usecase.PairingStatus{
		CoupleID:  &coupleID,
		IsPaired:  couple.IsPaired(),
		PartnerID: couple.PartnerOf(userID),
	}
}

// publishPairingCompleted notifies the owner that their invite was claimed.
// Publishing is best-effort: pairing stands even when the event fails.
func (s *pairingService) publishPairingCompleted(ctx context.Context, couple *entity.Couple, partnerID uuid.UUID) {
	event := &service.CheckinEvent{
		RequestID:   deliverycontext.RequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Kind:        entity.NotificationKindPairingCompleted,
		CoupleID:    couple.ID.String(),
		SenderID:    partnerID.String(),
		RecipientID: couple.OwnerUserID.String(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.eventPublisher.PublishCheckinEvent(publishCtx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish pairing event",
			slog.String("couple_id", couple.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
