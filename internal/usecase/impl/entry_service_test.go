package impl

import (
	"context"
	"testing"
	"time"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"
	mockUsecase "checkin/internal/mocks/usecase"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// entryServiceFixtures holds all test dependencies for entry service tests.
type entryServiceFixtures struct {
	service   usecase.EntryUsecase
	entryRepo *mockRepo.MockEntryRepository
	pairing   *mockUsecase.MockPairingUsecase
	publisher *mockSvc.MockEventPublisher
}

func createTestEntryService(t *testing.T) entryServiceFixtures {
	entryRepo := mockRepo.NewMockEntryRepository(t)
	pairing := mockUsecase.NewMockPairingUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewEntryService(EntryServiceParams{
		EntryRepo:      entryRepo,
		PairingUsecase: pairing,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	return entryServiceFixtures{
		service:   svc,
		entryRepo: entryRepo,
		pairing:   pairing,
		publisher: publisher,
	}
}

func moodPtr(m entity.Mood) *entity.Mood {
	return &m
}

func TestEntryService_SaveEntry_ValidationBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SaveEntryInput
	}{
		{
			name:  "nil payload",
			input: nil,
		},
		{
			name:  "morning without need text",
			input: &usecase.SaveEntryInput{Prompt: entity.PromptMorning, MorningNeed: "   "},
		},
		{
			name: "evening without mood",
			input: &usecase.SaveEntryInput{
				Prompt:        entity.PromptEvening,
				Gratitude:     "coffee together",
				TomorrowGreat: "a long walk",
			},
		},
		{
			name: "evening with out-of-range mood",
			input: &usecase.SaveEntryInput{
				Prompt:        entity.PromptEvening,
				EveningMood:   moodPtr(entity.Mood(7)),
				Gratitude:     "coffee together",
				TomorrowGreat: "a long walk",
			},
		},
		{
			name: "evening without gratitude",
			input: &usecase.SaveEntryInput{
				Prompt:        entity.PromptEvening,
				EveningMood:   moodPtr(entity.MoodOkay),
				TomorrowGreat: "a long walk",
			},
		},
		{
			name: "evening without tomorrow note",
			input: &usecase.SaveEntryInput{
				Prompt:      entity.PromptEvening,
				EveningMood: moodPtr(entity.MoodOkay),
				Gratitude:   "coffee together",
			},
		},
		{
			name:  "unknown prompt",
			input: &usecase.SaveEntryInput{Prompt: entity.PromptType("afternoon")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEntryService(t)

			// No repo or pairing expectations: validation must reject the
			// input before anything else happens.
			entry, err := fx.service.SaveEntry(context.Background(), uuid.New(), tt.input)
			require.Error(t, err)
			assert.Nil(t, entry)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ENTRY_VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestEntryService_SaveEntry_MorningThroughSharedRealm(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()
	coupleID := uuid.New()
	entryID := entity.EntryID(time.Now(), userID)

	fx.pairing.EXPECT().
		EnsureCouple(ctx, userID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: userID, PartnerUserID: &partnerID}, nil)

	fx.entryRepo.EXPECT().
		UpsertEntry(ctx, mock.AnythingOfType("*entity.DailyEntry"), repository.RealmShared).
		Run(func(_ context.Context, entry *entity.DailyEntry, _ repository.Realm) {
			assert.Equal(t, entryID, entry.ID)
			assert.Equal(t, coupleID, entry.CoupleID)
			assert.Equal(t, userID, entry.AuthorUserID)
			require.NotNil(t, entry.MorningNeed)
			assert.Equal(t, "a quiet evening", *entry.MorningNeed)
			// Evening fields stay nil so the stored values survive the merge.
			assert.Nil(t, entry.EveningMood)
			assert.Nil(t, entry.Gratitude)
			assert.Nil(t, entry.TomorrowGreat)
		}).
		Return(nil)

	need := "a quiet evening"
	merged := &entity.DailyEntry{
		ID:           entryID,
		CoupleID:     coupleID,
		AuthorUserID: userID,
		MorningNeed:  &need,
	}
	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmShared, userID).
		Return(merged, nil)

	fx.publisher.EXPECT().
		PublishCheckinEvent(mock.Anything, mock.AnythingOfType("*service.CheckinEvent")).
		Return(nil)

	entry, err := fx.service.SaveEntry(ctx, userID, &usecase.SaveEntryInput{
		Prompt:      entity.PromptMorning,
		MorningNeed: "  a quiet evening  ",
	})
	require.NoError(t, err)
	assert.Equal(t, merged, entry)
}

func TestEntryService_SaveEntry_EveningFields(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()
	coupleID := uuid.New()
	entryID := entity.EntryID(time.Now(), userID)

	fx.pairing.EXPECT().
		EnsureCouple(ctx, userID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: userID, PartnerUserID: &partnerID}, nil)

	fx.entryRepo.EXPECT().
		UpsertEntry(ctx, mock.AnythingOfType("*entity.DailyEntry"), repository.RealmShared).
		Run(func(_ context.Context, entry *entity.DailyEntry, _ repository.Realm) {
			require.NotNil(t, entry.EveningMood)
			assert.Equal(t, entity.MoodGreat, *entry.EveningMood)
			require.NotNil(t, entry.Gratitude)
			assert.Equal(t, "the morning coffee", *entry.Gratitude)
			require.NotNil(t, entry.TomorrowGreat)
			assert.Equal(t, "sleeping in", *entry.TomorrowGreat)
			assert.Nil(t, entry.MorningNeed)
		}).
		Return(nil)

	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmShared, userID).
		Return(&entity.DailyEntry{ID: entryID, AuthorUserID: userID}, nil)

	fx.publisher.EXPECT().
		PublishCheckinEvent(mock.Anything, mock.AnythingOfType("*service.CheckinEvent")).
		Return(nil)

	_, err := fx.service.SaveEntry(ctx, userID, &usecase.SaveEntryInput{
		Prompt:        entity.PromptEvening,
		EveningMood:   moodPtr(entity.MoodGreat),
		Gratitude:     "the morning coffee",
		TomorrowGreat: "sleeping in",
	})
	require.NoError(t, err)
}

func TestEntryService_SaveEntry_FallsBackToOwnerRealmBeforePairing(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	coupleID := uuid.New()
	entryID := entity.EntryID(time.Now(), userID)

	fx.pairing.EXPECT().
		EnsureCouple(ctx, userID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: userID}, nil)

	fx.entryRepo.EXPECT().
		UpsertEntry(ctx, mock.AnythingOfType("*entity.DailyEntry"), repository.RealmShared).
		Return(repository.ErrRealmUnavailable)

	fx.entryRepo.EXPECT().
		UpsertEntry(ctx, mock.AnythingOfType("*entity.DailyEntry"), repository.RealmOwner).
		Return(nil)

	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmOwner, userID).
		Return(&entity.DailyEntry{ID: entryID, AuthorUserID: userID}, nil)

	// No partner yet, so no check-in event goes out.
	entry, err := fx.service.SaveEntry(ctx, userID, &usecase.SaveEntryInput{
		Prompt:      entity.PromptMorning,
		MorningNeed: "some patience",
	})
	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
}

func TestEntryService_FetchTodayEntry_NotWrittenYet(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	entryID := entity.EntryID(time.Now(), userID)

	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmShared, userID).
		Return(nil, repository.ErrEntryNotFound)
	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmOwner, userID).
		Return(nil, repository.ErrEntryNotFound)

	entry, err := fx.service.FetchTodayEntry(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestEntryService_FetchTodayEntry_FoundInSharedRealm(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	entryID := entity.EntryID(time.Now(), userID)
	stored := &entity.DailyEntry{ID: entryID, AuthorUserID: userID}

	fx.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID, repository.RealmShared, userID).
		Return(stored, nil)

	entry, err := fx.service.FetchTodayEntry(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, entry)
}

func TestEntryService_FetchEntriesForDay_PartitionsAndDeduplicates(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mine := &entity.DailyEntry{ID: entity.EntryID(day, userID), AuthorUserID: userID}
	partner := &entity.DailyEntry{ID: entity.EntryID(day, partnerID), AuthorUserID: partnerID}

	fx.entryRepo.EXPECT().
		FindEntriesForDay(ctx, day, repository.RealmShared, userID).
		Return([]*entity.DailyEntry{mine, partner}, nil)

	// The owner realm sees the caller's entry again; it must count once.
	fx.entryRepo.EXPECT().
		FindEntriesForDay(ctx, day, repository.RealmOwner, userID).
		Return([]*entity.DailyEntry{mine}, nil)

	entries, err := fx.service.FetchEntriesForDay(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, mine, entries.Mine)
	assert.Equal(t, partner, entries.Partner)
}

func TestEntryService_FetchEntriesForDay_PartnerNotCheckedIn(t *testing.T) {
	fx := createTestEntryService(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mine := &entity.DailyEntry{ID: entity.EntryID(day, userID), AuthorUserID: userID}

	fx.entryRepo.EXPECT().
		FindEntriesForDay(ctx, day, repository.RealmShared, userID).
		Return([]*entity.DailyEntry{mine}, nil)
	fx.entryRepo.EXPECT().
		FindEntriesForDay(ctx, day, repository.RealmOwner, userID).
		Return(nil, nil)

	entries, err := fx.service.FetchEntriesForDay(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, mine, entries.Mine)
	assert.Nil(t, entries.Partner)
}
