// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// entryDayLayout is the date-only form used in deterministic entry IDs.
const entryDayLayout = "2006-01-02"

// DailyEntry is one journaling record per (author, calendar day).
//
// Its ID is derived from the day and the author, never generated randomly, so
// repeated saves on the same day collapse into one logical record. Fields
// accumulate across the morning and evening prompts of the same day.
type DailyEntry struct {
	ID            string     `json:"id"`             // Deterministic, see EntryID.
	CoupleID      uuid.UUID  `json:"couple_id"`      // The couple scope this entry belongs to.
	AuthorUserID  uuid.UUID  `json:"author_user_id"` // The member who wrote this entry.
	Date          time.Time  `json:"date"`           // The calendar day, normalized to UTC midnight.
	MorningNeed   *string    `json:"morning_need"`   // Morning prompt: what the author needs today.
	EveningMood   *Mood      `json:"evening_mood"`   // Evening prompt: how the day felt.
	Gratitude     *string    `json:"gratitude"`      // Evening prompt: something the author is grateful for.
	TomorrowGreat *string    `json:"tomorrow_great"` // Evening prompt: what would make tomorrow great.
	CreatedAt     time.Time  `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time  `json:"updated_at"`     // Timestamp of the last modification.
}

// NormalizeDay truncates t to UTC midnight. Every id derivation, write, and
// day query goes through this one function; mixing reference points would
// split a single day's entries across two ids when a device changes timezone.
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EntryID derives the deterministic entry identifier for an author and a day.
// It is pure: the same (day, author) pair always yields the same id, and any
// other pair yields a different one.
func EntryID(day time.Time, authorUserID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", NormalizeDay(day).Format(entryDayLayout), authorUserID)
}
