package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyEntryModel is the GORM-specific struct for the 'daily_entries' table.
// The primary key is the deterministic "<yyyy-mm-dd>_<author-uuid>" identifier,
// so repeated saves on the same day target the same row. The unique index on
// (author, entry_date) backs the same guarantee at the column level.
type DailyEntryModel struct {
	ID            string     `gorm:"type:varchar(64);primary_key"`
	CoupleID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorUserID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_entry_author_day"`
	EntryDate     time.Time  `gorm:"type:date;not null;uniqueIndex:idx_entry_author_day;index"`
	MorningNeed   *string    `gorm:"type:text"`
	EveningMood   *int       `gorm:"type:smallint"`
	Gratitude     *string    `gorm:"type:text"`
	TomorrowGreat *string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyEntryModel) TableName() string {
	return "daily_entries"
}
