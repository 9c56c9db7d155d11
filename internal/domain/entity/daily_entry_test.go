package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEntryID_Deterministic(t *testing.T) {
	authorID := uuid.New()
	day := time.Date(2026, 8, 30, 14, 25, 0, 0, time.UTC)

	first := EntryID(day, authorID)
	second := EntryID(day, authorID)
	assert.Equal(t, first, second)
	assert.Equal(t, fmt.Sprintf("2026-08-30_%s", authorID), first)
}

func TestEntryID_SameDayDifferentClockTimes(t *testing.T) {
	authorID := uuid.New()
	morning := time.Date(2026, 8, 30, 7, 5, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 30, 22, 40, 0, 0, time.UTC)

	assert.Equal(t, EntryID(morning, authorID), EntryID(evening, authorID))
}

func TestEntryID_TimezoneIndependent(t *testing.T) {
	authorID := uuid.New()

	// The same instant expressed in two zones must yield the same id: the id
	// is anchored to the UTC day, not the device's wall clock.
	taipei := time.FixedZone("UTC+8", 8*60*60)
	instant := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, EntryID(instant, authorID), EntryID(instant.In(taipei), authorID))
}

func TestEntryID_DifferentAuthorsOrDaysDiffer(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	authorA := uuid.New()
	authorB := uuid.New()

	assert.NotEqual(t, EntryID(day, authorA), EntryID(day, authorB))
	assert.NotEqual(t, EntryID(day, authorA), EntryID(day.AddDate(0, 0, 1), authorA))
}

func TestNormalizeDay(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "afternoon truncates to midnight",
			in:   time.Date(2026, 8, 30, 15, 4, 5, 123, time.UTC),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight is unchanged",
			in:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "local time past UTC midnight rolls to the next UTC day",
			in:   time.Date(2026, 8, 31, 7, 30, 0, 0, taipei),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDay(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMood_IsValid(t *testing.T) {
	assert.True(t, MoodGreat.IsValid())
	assert.True(t, MoodOkay.IsValid())
	assert.True(t, MoodDifficult.IsValid())
	assert.False(t, Mood(-1).IsValid())
	assert.False(t, Mood(3).IsValid())
}
