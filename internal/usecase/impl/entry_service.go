package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type entryService struct {
	entryRepo      repository.EntryRepository
	pairingUsecase usecase.PairingUsecase
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// EntryServiceParams holds dependencies for EntryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	EntryRepo      repository.EntryRepository
	PairingUsecase usecase.PairingUsecase
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewEntryService creates a new entry service instance
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		entryRepo:      params.EntryRepo,
		pairingUsecase: params.PairingUsecase,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// SaveEntry validates the prompt fields, then upserts under the deterministic
// id for (today, author). The store-side merge keeps fields from the other
// prompt of the same day, so a morning save and an evening save accumulate
// into one record no matter the order they land in.
func (s *entryService) SaveEntry(ctx context.Context, userID uuid.UUID, input *usecase.SaveEntryInput) (*entity.DailyEntry, error) {
	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	couple, err := s.pairingUsecase.EnsureCouple(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := entity.NormalizeDay(time.Now())
	entry := &entity.DailyEntry{
		ID:           entity.EntryID(day, userID),
		CoupleID:     couple.ID,
		AuthorUserID: userID,
		Date:         day,
	}

	// Only the submitted prompt's fields travel to the store; absent fields
	// stay nil so the merge preserves whatever the other prompt wrote.
	switch input.Prompt {
	case entity.PromptMorning:
		need := strings.TrimSpace(input.MorningNeed)
		entry.MorningNeed = &need
	case entity.PromptEvening:
		mood := *input.EveningMood
		gratitude := strings.TrimSpace(input.Gratitude)
		tomorrow := strings.TrimSpace(input.TomorrowGreat)
		entry.EveningMood = &mood
		entry.Gratitude = &gratitude
		entry.TomorrowGreat = &tomorrow
	}

	// Paired couples write through the shared realm so both members see the
	// entry; before pairing the write falls back to the owner realm.
	realm := repository.RealmShared
	err = s.entryRepo.UpsertEntry(ctx, entry, realm)
	if errors.Is(err, repository.ErrRealmUnavailable) {
		realm = repository.RealmOwner
		err = s.entryRepo.UpsertEntry(ctx, entry, realm)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to save daily entry")
	}

	// Read the merged record back so the caller sees the accumulated state,
	// not just the fields this save carried.
	merged, err := s.entryRepo.FindEntryByID(ctx, entry.ID, realm, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read back saved entry")
	}

	s.logger.InfoContext(ctx, "daily entry saved",
		slog.String("entry_id", merged.ID),
		slog.String("prompt", string(input.Prompt)),
		slog.String("realm", realm.String()),
	)

	if partnerID := couple.PartnerOf(userID); partnerID != nil {
		s.publishPartnerCheckin(ctx, couple.ID, userID, *partnerID, day, input.Prompt)
	}

	return merged, nil
}

// validateEntryInput enforces prompt completeness before any write: a morning
// save needs the need text, an evening save needs mood, gratitude, and the
// tomorrow note. Whitespace-only text counts as absent.
func validateEntryInput(input *usecase.SaveEntryInput) error {
	if input == nil {
		return domainerrors.ErrEntryValidationFailed.WithDetails("missing entry payload")
	}

	switch input.Prompt {
	case entity.PromptMorning:
		if strings.TrimSpace(input.MorningNeed) == "" {
			return domainerrors.ErrEntryValidationFailed.WithDetails("morning check-in needs what you need today")
		}
	case entity.PromptEvening:
		if input.EveningMood == nil || !input.EveningMood.IsValid() {
			return domainerrors.ErrEntryValidationFailed.WithDetails("evening check-in needs a mood")
		}
		if strings.TrimSpace(input.Gratitude) == "" {
			return domainerrors.ErrEntryValidationFailed.WithDetails("evening check-in needs a gratitude note")
		}
		if strings.TrimSpace(input.TomorrowGreat) == "" {
			return domainerrors.ErrEntryValidationFailed.WithDetails("evening check-in needs what would make tomorrow great")
		}
	default:
		return domainerrors.ErrEntryValidationFailed.WithDetails("unknown prompt type")
	}

	return nil
}

// FetchTodayEntry returns the caller's entry for today, or nil if none exists
// yet. Absence is a displayable state, not an error.
func (s *entryService) FetchTodayEntry(ctx context.Context, userID uuid.UUID) (*entity.DailyEntry, error) {
	id := entity.EntryID(time.Now(), userID)

	for _, realm := range repository.Realms {
		entry, err := s.entryRepo.FindEntryByID(ctx, id, realm, userID)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.Wrap(err, "failed to fetch today's entry")
		}
	}

	return nil, nil
}

// FetchEntriesForDay returns both members' entries for a day, partitioned by
// author. Entries are collected across both realms and deduplicated by id, so
// a record visible through both realms counts once.
func (s *entryService) FetchEntriesForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*usecase.DayEntries, error) {
	seen := make(map[string]struct{})
	result := &usecase.DayEntries{}

	for _, realm := range repository.Realms {
		entries, err := s.entryRepo.FindEntriesForDay(ctx, day, realm, userID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch entries from %s realm", realm)
		}

		for _, entry := range entries {
			if _, ok := seen[entry.ID]; ok {
				continue
			}
			seen[entry.ID] = struct{}{}

			if entry.AuthorUserID == userID {
				result.Mine = entry
			} else {
				result.Partner = entry
			}
		}
	}

	return result, nil
}

// publishPartnerCheckin hands the partner push to the worker. Best-effort: a
// failed publish never fails the save.
func (s *entryService) publishPartnerCheckin(ctx context.Context, coupleID, senderID, recipientID uuid.UUID, day time.Time, prompt entity.PromptType) {
	event := &service.CheckinEvent{
		RequestID:   deliverycontext.RequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Kind:        entity.NotificationKindPartnerCheckin,
		CoupleID:    coupleID.String(),
		SenderID:    senderID.String(),
		RecipientID: recipientID.String(),
		Day:         day.Format("2006-01-02"),
		Prompt:      string(prompt),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.eventPublisher.PublishCheckinEvent(publishCtx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish check-in event",
			slog.String("couple_id", coupleID.String()),
			slog.String("error", err.Error()),
		)
	}
}
