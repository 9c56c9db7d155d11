package usecase

import (
	"context"
	"time"

	"checkin/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveEntryInput carries the fields of one prompt submission. Fields outside
// the submitted prompt are ignored; merge-on-save preserves their stored values.
type SaveEntryInput struct {
	Prompt        entity.PromptType
	MorningNeed   string
	EveningMood   *entity.Mood
	Gratitude     string
	TomorrowGreat string
}

// DayEntries partitions a day's entries by author. Either side may be nil:
// "partner hasn't checked in" is a displayable state, not an error.
type DayEntries struct {
	Mine    *entity.DailyEntry `json:"mine"`
	Partner *entity.DailyEntry `json:"partner"`
}

// EntryUsecase defines the interface for daily-entry operations.
type EntryUsecase interface {
	// SaveEntry validates the prompt fields, merges with today's stored entry,
	// and upserts under the deterministic ID (shared realm first, owner realm
	// fallback). Validation failures happen before any write.
	SaveEntry(ctx context.Context, userID uuid.UUID, input *SaveEntryInput) (*entity.DailyEntry, error)

	// FetchTodayEntry returns the caller's entry for today, or nil if none exists yet.
	FetchTodayEntry(ctx context.Context, userID uuid.UUID) (*entity.DailyEntry, error)

	// FetchEntriesForDay returns both members' entries for a day, partitioned by author.
	FetchEntriesForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*DayEntries, error)
}
