package repository

import (
	"context"
	"time"

	"checkin/internal/domain/entity"
	"checkin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for entry persistence.
var (
	// ErrEntryNotFound is returned when an entry is not found in the queried realm.
	ErrEntryNotFound = errors.New("daily entry not found")
	// ErrRealmUnavailable is returned when a write targets the shared realm of
	// an unpaired couple; the caller falls back to the owner realm.
	ErrRealmUnavailable = errors.New("shared realm not available before pairing")
)

// EntryRepository defines the interface for daily-entry database operations.
type EntryRepository interface {
	// UpsertEntry creates or merges the entry under its deterministic ID in a
	// single conditional statement, so two near-simultaneous saves from the
	// same author cannot lose each other's fields. Writing to RealmShared
	// requires the entry's couple to be paired; otherwise ErrRealmUnavailable.
	UpsertEntry(ctx context.Context, entry *entity.DailyEntry, realm Realm) error

	// FindEntryByID retrieves an entry by its deterministic ID as seen from the
	// given realm by the given viewer.
	FindEntryByID(ctx context.Context, id string, realm Realm, viewerID uuid.UUID) (*entity.DailyEntry, error)

	// FindEntriesForDay retrieves all entries for the given day visible to the
	// viewer through the given realm.
	FindEntriesForDay(ctx context.Context, day time.Time, realm Realm, viewerID uuid.UUID) ([]*entity.DailyEntry, error)
}
